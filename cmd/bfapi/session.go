package main

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/floegence/bfapi/bferrors"
	"github.com/floegence/bfapi/client"
	"github.com/floegence/bfapi/config"
	sportsv1 "github.com/floegence/bfapi/gen/sports/v1"
	"github.com/floegence/bfapi/internal/cmdutil"
	bfversion "github.com/floegence/bfapi/internal/version"
	"github.com/floegence/bfapi/logging"
	"github.com/floegence/bfapi/session"
)

const logoutTimeout = 10 * time.Second

type loggedIn struct {
	Authenticated bool      `json:"authenticated"`
	LastRefresh   time.Time `json:"last_refresh"`
	SessionToken  string    `json:"session_token,omitempty"`
}

// openClient loads settings from --config and the environment and applies the log overrides.
func openClient(c *cli.Context) (*client.Client, *zap.Logger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, &cmdutil.UsageError{Msg: err.Error()}
	}
	if v := c.String("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v := c.String("log-format"); v != "" {
		cfg.Log.Format = v
	}
	log, err := logging.New(c.App.ErrWriter, cfg.Log)
	if err != nil {
		return nil, nil, &cmdutil.UsageError{Msg: err.Error()}
	}
	cc := client.FromConfig(cfg)
	cc.Logger = log
	cc.UserAgent = bfversion.Get(version, commit, date).UserAgent()
	cl, err := client.New(cc)
	if err != nil {
		return nil, nil, &cmdutil.UsageError{Msg: err.Error()}
	}
	return cl, log, nil
}

func login(ctx context.Context, cl *client.Client, retries int) error {
	var err error
	if retries > 0 {
		b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(retries))
		_, err = session.LoginWithRetry(ctx, cl.Session, b)
	} else {
		err = cl.Login(ctx)
	}
	if bferrors.CodeOf(err) == bferrors.CodeMissingCredential {
		return &cmdutil.UsageError{Msg: err.Error()}
	}
	return err
}

func retriesFlag() cli.Flag {
	return &cli.IntFlag{Name: "retries", Usage: "retry transient login failures this many times with exponential backoff"}
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:      "login",
		Usage:     "log in with the configured certificate and print the session state",
		UsageText: "bfapi [--config FILE] login [--retries N] [--show-token]",
		Flags: []cli.Flag{
			retriesFlag(),
			&cli.BoolFlag{Name: "show-token", Usage: "include the session token in the output"},
		},
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.Int("retries") < 0 {
				return cmdutil.Usagef("--retries must be >= 0")
			}
			cl, log, err := openClient(c)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			if err := login(c.Context, cl, c.Int("retries")); err != nil {
				return err
			}
			st := cl.Session.State()
			out := loggedIn{Authenticated: st.Authenticated, LastRefresh: st.LastRefresh}
			if c.Bool("show-token") {
				out.SessionToken, _ = cl.Session.CurrentToken()
			}
			return cmdutil.WriteJSON(c.App.Writer, out, false)
		},
	}
}

func callCommand() *cli.Command {
	return &cli.Command{
		Name:      "call",
		Usage:     "log in, invoke one operation and print its result as JSON",
		UsageText: "bfapi [--config FILE] call --method NAME [--params JSON] [--pretty]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "method", Usage: "operation name, e.g. listEventTypes, or a full wire method (required)"},
			&cli.StringFlag{Name: "params", Usage: "JSON object of operation parameters", Value: "{}"},
			&cli.BoolFlag{Name: "pretty", Usage: "indent the output"},
			retriesFlag(),
		},
		OnUsageError: onUsageError,
		Action:       call,
	}
}

func call(c *cli.Context) error {
	method := strings.TrimSpace(c.String("method"))
	if method == "" {
		return cmdutil.Usagef("missing --method")
	}
	if !strings.Contains(method, "/") {
		method = sportsMethodPrefix + method
	}
	params := json.RawMessage(c.String("params"))
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(params, &obj); err != nil {
		return cmdutil.Usagef("--params must be a JSON object: %v", err)
	}

	cl, log, err := openClient(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if err := login(c.Context, cl, c.Int("retries")); err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), logoutTimeout)
		defer cancel()
		if err := cl.Close(ctx); err != nil {
			log.Warn("logout failed", zap.Error(err))
		}
	}()

	result, err := cl.Invoker.Invoke(c.Context, method, params, sportsv1.ExceptionTypes())
	if err != nil {
		return err
	}
	return cmdutil.WriteJSON(c.App.Writer, result, c.Bool("pretty"))
}

// sportsMethodPrefix is the wire namespace of the generated Sports operations.
var sportsMethodPrefix = strings.TrimSuffix(sportsv1.MethodListEventTypes, "listEventTypes")
