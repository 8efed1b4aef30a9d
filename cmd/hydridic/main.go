// SPDX-License-Identifier: MIT

// Command hydridic imports an atomic structure into an in-memory scene and
// reports what a host renderer would have been asked to create.
//
// Usage:
//
//	hydridic [-config file.yaml] [-json] [-v] <structure.xyz>
//
// Without -json a one-line summary is printed; -json dumps every recorded
// renderer command.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/hydridic/config"
	"github.com/katalvlaran/hydridic/scene"
	"github.com/katalvlaran/hydridic/structure"
)

// cliOptions are the parsed command-line flags.
type cliOptions struct {
	configPath string
	json       bool
	verbose    bool
	input      string
}

var errUsage = errors.New("usage: hydridic [-config file.yaml] [-json] [-v] <structure.xyz>")

func parseFlags(args []string, stderr io.Writer) (cliOptions, error) {
	var o cliOptions
	fs := flag.NewFlagSet("hydridic", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "YAML configuration file")
	fs.BoolVar(&o.json, "json", false, "print recorded scene commands as JSON")
	fs.BoolVar(&o.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() != 1 {
		return o, errUsage
	}
	o.input = fs.Arg(0)

	return o, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run executes one import and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 2
	}
	logger := newLogger(stderr, o.verbose)

	cfg := config.Default()
	if o.configPath != "" {
		if cfg, err = config.Load(o.configPath); err != nil {
			logger.Error("load config", "error", err)

			return 1
		}
	}
	s, err := structure.ReadFile(o.input)
	if err != nil {
		logger.Error("read structure", "path", o.input, "error", err)

		return 1
	}

	rec := scene.NewRecorder()
	session, err := scene.NewSession(rec, append(cfg.SessionOptions(), scene.WithLogger(logger))...)
	if err != nil {
		logger.Error("start session", "error", err)

		return 1
	}
	defer session.Close()

	iopts, err := cfg.ImportOptions()
	if err != nil {
		logger.Error("configure import", "error", err)

		return 1
	}
	rep, err := scene.NewImporter(session, iopts...).Import(ctx, s)
	if err != nil {
		logger.Error("import", "path", o.input, "error", err)

		return 1
	}

	if o.json {
		out := struct {
			Report   *scene.Report   `json:"report"`
			Commands []scene.Command `json:"commands"`
		}{rep, rec.Commands()}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err = enc.Encode(out); err != nil {
			logger.Error("write json", "error", err)

			return 1
		}

		return 0
	}
	fmt.Fprintf(stdout, "%s: %d atoms, %d elements, %d bonds, %d fragments, %d objects\n",
		rep.Collection, rep.Atoms, len(rep.Elements), rep.Bonds, rep.Fragments, rep.Objects)

	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
