// Command descript inspects, formats and indexes descript.txt files.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ukatools/descript"
)

// env is the state shared by all commands, set up in Before.
type env struct {
	log    *slog.Logger
	parser *descript.Parser
}

func newApp() *cli.App {
	e := &env{}
	return &cli.App{
		Name:  "descript",
		Usage: "inspect, format and index Ukagaka shell descriptor files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "charset",
				Usage:   "charset used when a file declares none",
				Value:   "Shift_JIS",
				EnvVars: []string{"DESCRIPT_CHARSET"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				Value:   "info",
				EnvVars: []string{"DESCRIPT_LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			return e.setup(c)
		},
		Commands: []*cli.Command{
			checkCommand(e),
			charsetCommand(e),
			dumpCommand(e),
			queryCommand(e),
			fmtCommand(e),
			indexCommand(e),
			findCommand(e),
		},
	}
}

func (e *env) setup(c *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	e.log = newLogger(c.App.ErrWriter, level)

	fallback, err := descript.ParseCharset(c.String("charset"))
	if err != nil {
		return fmt.Errorf("invalid --charset: %w", err)
	}
	e.parser = descript.NewParser().WithDefaultCharset(fallback)
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "descript:", strings.TrimPrefix(err.Error(), "descript: "))
		os.Exit(1)
	}
}
