package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/floegence/bfapi/codegen"
	"github.com/floegence/bfapi/idl"
	"github.com/floegence/bfapi/internal/cmdutil"
)

type generated struct {
	Out       string   `json:"out"`
	Written   []string `json:"written"`
	Unchanged []string `json:"unchanged"`
}

func inFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "in",
		Usage: "interface document (default: the embedded SportsAPING.xml)",
	}
}

func readDocument(path string) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return idl.SportsAPING, nil
	}
	return os.ReadFile(path)
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Usage:     "render Go bindings for an interface document",
		UsageText: "bfapi generate --out DIR [--in FILE] [--package NAME] [--overwrite | --check]",
		Flags: []cli.Flag{
			inFlag(),
			&cli.StringFlag{Name: "out", Usage: "output directory (required)"},
			&cli.StringFlag{Name: "package", Usage: "package clause of the generated files", Value: codegen.DefaultPackage},
			&cli.StringFlag{Name: "runtime", Usage: "import path of the jsonrpc runtime", Value: codegen.DefaultRuntime},
			&cli.BoolFlag{Name: "overwrite", Usage: "replace existing files whose content differs"},
			&cli.BoolFlag{Name: "check", Usage: "write nothing; fail when any file would change"},
		},
		OnUsageError: onUsageError,
		Action:       generate,
	}
}

func generate(c *cli.Context) error {
	out := strings.TrimSpace(c.String("out"))
	if out == "" {
		return cmdutil.Usagef("missing --out")
	}
	if c.Bool("check") && c.Bool("overwrite") {
		return cmdutil.Usagef("--check and --overwrite are mutually exclusive")
	}
	doc, err := readDocument(c.String("in"))
	if err != nil {
		return err
	}
	files, err := codegen.Generate(doc, codegen.Options{Package: c.String("package"), Runtime: c.String("runtime")})
	if err != nil {
		return err
	}

	var stale []string
	unchanged := []string{}
	for _, f := range files {
		path := filepath.Join(out, f.Name)
		same, err := cmdutil.Unchanged(path, f.Content)
		if err != nil {
			return err
		}
		if same {
			unchanged = append(unchanged, f.Name)
			continue
		}
		stale = append(stale, f.Name)
		if !c.Bool("check") {
			if err := cmdutil.RefuseOverwrite(path, f.Content, c.Bool("overwrite")); err != nil {
				return err
			}
		}
	}
	if c.Bool("check") {
		if len(stale) > 0 {
			return fmt.Errorf("generated files are out of date in %s: %s", out, strings.Join(stale, ", "))
		}
		return cmdutil.WriteJSON(c.App.Writer, generated{Out: absOr(out), Written: []string{}, Unchanged: unchanged}, false)
	}

	written, err := codegen.WriteFiles(out, files)
	if err != nil {
		return err
	}
	if written == nil {
		written = []string{}
	}
	return cmdutil.WriteJSON(c.App.Writer, generated{Out: absOr(out), Written: written, Unchanged: unchanged}, false)
}

func absOr(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
