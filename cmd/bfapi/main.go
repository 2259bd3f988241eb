package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/floegence/bfapi/internal/cmdutil"
	bfversion "github.com/floegence/bfapi/internal/version"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const description = `Generates Go bindings from an API-NG interface document and drives the Sports API from the shell.

Examples:
  # Regenerate the committed bindings from the embedded interface document
  $ bfapi generate --out gen/sports/v1 --overwrite

  # Fail when committed bindings are out of date
  $ bfapi generate --out gen/sports/v1 --check

  # Print the resolved model
  $ bfapi inspect --in idl/SportsAPING.xml

  # Call an operation with credentials from bfapi.yaml and BFAPI_* variables
  $ bfapi --config bfapi.yaml call --method listEventTypes --params '{"filter":{}}'

Exit codes:
  0 on success
  1 on schema, session or call errors
  2 on usage errors`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	err := app.Run(append([]string{app.Name}, args...))
	if err != nil {
		fmt.Fprintln(stderr, err)
	}
	return cmdutil.ExitCode(err)
}

func newApp(stdout io.Writer, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:            "bfapi",
		Usage:           "Betfair API-NG code generator and client",
		Description:     description,
		Version:         bfversion.String(version, commit, date),
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML settings file; BFAPI_* variables override it",
				EnvVars: []string{"BFAPI_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override log.level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "override log.format (json, console)",
			},
		},
		Commands: []*cli.Command{
			generateCommand(),
			inspectCommand(),
			loginCommand(),
			callCommand(),
		},
		Action: func(c *cli.Context) error {
			if c.Args().Present() {
				return cmdutil.Usagef("unknown command %q", c.Args().First())
			}
			return cli.ShowAppHelp(c)
		},
		OnUsageError:   onUsageError,
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	if cmdutil.IsUsage(err) {
		return err
	}
	return &cmdutil.UsageError{Msg: err.Error()}
}

