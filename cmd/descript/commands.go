package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/urfave/cli/v2"

	"github.com/ukatools/descript"
	"github.com/ukatools/descript/internal/catalog"
	"github.com/ukatools/descript/internal/shelldir"
)

var errUsage = errors.New("missing file argument")

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "db",
		Usage:   "catalog database path",
		Value:   "descript.db",
		EnvVars: []string{"DESCRIPT_DB"},
	}
}

var jsonOptions = &oj.Options{Indent: 2, Sort: true}

func (e *env) load(path string) (*descript.Document, descript.Charset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, descript.CharsetDefault, err
	}
	text, charset, err := e.parser.DecodeBytes(b)
	if err != nil {
		return nil, charset, fmt.Errorf("%s: %w", path, err)
	}
	doc, err := descript.Parse(text)
	if err != nil {
		return nil, charset, fmt.Errorf("%s: %w", path, err)
	}
	e.log.Debug("parsed",
		slog.String("file", path),
		slog.String("charset", charset.String()),
		slog.Int("lines", doc.Len()))
	return doc, charset, nil
}

func fileArg(c *cli.Context) (string, error) {
	if c.NArg() < 1 {
		return "", errUsage
	}
	return c.Args().First(), nil
}

func checkCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "parse files and report the first error of each",
		ArgsUsage: "FILE...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errUsage
			}
			failed := 0
			for _, path := range c.Args().Slice() {
				doc, charset, err := e.load(path)
				if err != nil {
					failed++
					e.log.Error("check failed", slog.String("file", path), slog.Any("err", err))
					continue
				}
				fmt.Fprintf(c.App.Writer, "%s: ok (%d lines, %s)\n", path, doc.Len(), charset)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, c.NArg())
			}
			return nil
		},
	}
}

func charsetCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "charset",
		Usage:     "print the charset a file declares",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			path, err := fileArg(c)
			if err != nil {
				return err
			}
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			_, charset, err := e.parser.DecodeBytes(b)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, charset)
			return nil
		},
	}
}

func dumpCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "print the parsed lines of a file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "print the document as JSON"},
		},
		Action: func(c *cli.Context) error {
			path, err := fileArg(c)
			if err != nil {
				return err
			}
			doc, _, err := e.load(path)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				fmt.Fprintln(c.App.Writer, oj.JSON(doc.Generic(), jsonOptions))
				return nil
			}
			for i, l := range doc.Lines() {
				kind := l.Type.String()
				if l.Type == descript.LineDirective {
					kind = l.Directive.Kind().String()
				}
				fmt.Fprintf(c.App.Writer, "%4d  %-32s %s\n", i+1, kind, l)
			}
			return nil
		},
	}
}

func queryCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "evaluate a JSONPath expression against the JSON form of a file",
		ArgsUsage: "EXPR FILE",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("query takes EXPR and FILE")
			}
			x, err := jp.ParseString(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("invalid jsonpath '%s': %w", c.Args().Get(0), err)
			}
			doc, _, err := e.load(c.Args().Get(1))
			if err != nil {
				return err
			}
			for _, v := range x.Get(doc.Generic()) {
				if s, ok := v.(string); ok {
					fmt.Fprintln(c.App.Writer, s)
					continue
				}
				fmt.Fprintln(c.App.Writer, oj.JSON(v, &oj.Options{Sort: true}))
			}
			return nil
		},
	}
}

func fmtCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "print a file in canonical form",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "write", Aliases: []string{"w"}, Usage: "rewrite the file in its own charset"},
		},
		Action: func(c *cli.Context) error {
			path, err := fileArg(c)
			if err != nil {
				return err
			}
			doc, charset, err := e.load(path)
			if err != nil {
				return err
			}
			out := descript.Format(doc)
			if !c.Bool("write") {
				_, err := fmt.Fprint(c.App.Writer, out)
				return err
			}
			b, err := e.parser.EncodeText(out, charset)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			fi, err := os.Stat(path)
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, b, fi.Mode().Perm()); err != nil {
				return err
			}
			e.log.Info("formatted", slog.String("file", path), slog.String("charset", charset.String()))
			return nil
		},
	}
}

func indexCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "index",
		Usage:     "store the shells found under each directory in the catalog",
		ArgsUsage: "DIR...",
		Flags:     []cli.Flag{dbFlag()},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("index takes at least one DIR")
			}
			cat, err := catalog.Open(c.String("db"), e.log)
			if err != nil {
				return err
			}
			defer func() { _ = cat.Close() }()

			indexed, failed := 0, 0
			for _, root := range c.Args().Slice() {
				fs := osfs.New(root)
				entries, err := shelldir.Find(fs, ".")
				if err != nil {
					return err
				}
				for _, entry := range entries {
					doc, err := shelldir.Load(fs, entry, e.parser)
					if err != nil {
						failed++
						e.log.Warn("skipped shell", slog.String("root", root), slog.Any("err", err))
						continue
					}
					key := filepath.ToSlash(filepath.Join(root, entry.Dir))
					if _, err := cat.Put(c.Context, key, doc); err != nil {
						return err
					}
					indexed++
				}
			}
			e.log.Info("index complete", slog.Int("indexed", indexed), slog.Int("failed", failed))
			fmt.Fprintf(c.App.Writer, "indexed %d shells (%d failed)\n", indexed, failed)
			return nil
		},
	}
}

func findCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "find",
		Usage: "search the catalog",
		Flags: []cli.Flag{
			dbFlag(),
			&cli.StringFlag{Name: "name", Usage: "shells whose name contains this text"},
			&cli.UintFlag{Name: "animation", Usage: "shells whose bind groups reference this id"},
			&cli.StringFlag{Name: "kind", Usage: "directives of this kind, e.g. charN.bindgroupN.name"},
		},
		Action: func(c *cli.Context) error {
			cat, err := catalog.Open(c.String("db"), e.log)
			if err != nil {
				return err
			}
			defer func() { _ = cat.Close() }()

			if kind := c.String("kind"); kind != "" {
				ds, err := cat.FindByKind(c.Context, kind)
				if err != nil {
					return err
				}
				for _, d := range ds {
					fmt.Fprintf(c.App.Writer, "%s:%d: %s\n", d.Path, d.Line, d.Text)
				}
				return nil
			}

			var records []catalog.Record
			switch {
			case c.IsSet("animation"):
				id := c.Uint("animation")
				if uint64(id) > math.MaxUint32 {
					return fmt.Errorf("invalid --animation: %d is out of range", id)
				}
				records, err = cat.FindByAnimation(c.Context, descript.AnimationID(id))
			case c.IsSet("name"):
				records, err = cat.FindByName(c.Context, c.String("name"))
			default:
				records, err = cat.List(c.Context)
			}
			if err != nil {
				return err
			}
			for _, r := range records {
				fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\t%d ids\n", r.Path, r.Name, r.Charset, r.Animations.GetCardinality())
			}
			return nil
		},
	}
}
