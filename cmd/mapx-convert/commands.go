package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"go.uber.org/zap"

	"mapx-converter/internal/common"
	"mapx-converter/internal/config"
	"mapx-converter/internal/diagnostic"
	"mapx-converter/internal/fromiso"
	"mapx-converter/internal/mapx"
	"mapx-converter/internal/toiso"
	"mapx-converter/internal/tree"
)

var errConversion = errors.New("conversion failed")

// env is what a command needs besides its input.
type env struct {
	cfg  *config.Config
	log  *zap.Logger
	sink diagnostic.Sink
	diag *diagnostic.Diagnostics
	// debug enables the dumps of parsed documents.
	debug bool
}

type command func(e *env, input []byte) ([]byte, error)

var commands = map[string]command{
	"iso2mapx": isoToMapx,
	"mapx2iso": mapxToISO,
	"repair":   repair,
}

func execute(cmd command, o options, stdin io.Reader, stdout, stderr io.Writer) int {
	if o.noColor {
		color.NoColor = true
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		errorf(stderr, "%v\n", err)
		return 1
	}

	if o.strictSet {
		cfg.Convert.Strict = o.strict
	}

	if o.indentSet {
		cfg.Output.Indent = o.indent
	}

	log := newLogger(stderr, cfg.Log.Level, o.verbose, o.debug)
	defer func() { _ = log.Sync() }()

	d := &diagnostic.Diagnostics{}
	e := &env{
		cfg:   cfg,
		log:   log,
		sink:  diagnostic.Tee(d, traceSink{log: log}),
		diag:  d,
		debug: o.debug,
	}

	input, err := readInput(o.in, stdin)
	if err != nil {
		errorf(stderr, "%v\n", err)
		return 1
	}

	log.Info("read input", zap.String("path", o.in), zap.Int("bytes", len(input)))

	output, err := cmd(e, input)

	report(stderr, d)

	if err != nil {
		errorf(stderr, "%v\n", err)
		return 1
	}

	if cfg.Convert.Strict && d.HasWarnings() {
		errorf(stderr, "%d warnings in strict mode, no output written\n", len(d.Warnings()))
		return 1
	}

	if err := writeOutput(o.out, output, stdout); err != nil {
		errorf(stderr, "%v\n", err)
		return 1
	}

	log.Info("wrote output", zap.String("path", o.out), zap.Int("bytes", len(output)))

	return 0
}

func isoToMapx(e *env, input []byte) ([]byte, error) {
	text := string(input)

	if e.debug {
		if doc, err := tree.ParseXML(text); err == nil {
			e.log.Debug("parsed ISO document", zap.String("tree", spew.Sdump(doc)))
		}
	}

	m := fromiso.ConvertXML(text, e.sink)
	if m == nil {
		return nil, errConversion
	}

	return encodeMapx(m, e.cfg.Output.Indent)
}

func mapxToISO(e *env, input []byte) ([]byte, error) {
	m, err := mapx.FromJSON(input, e.sink)
	if err != nil {
		return nil, err
	}

	if e.debug {
		e.log.Debug("parsed MapX document", zap.String("document", spew.Sdump(m.Document())))
	}

	text, err := toiso.ConvertXML(m, e.sink, toiso.Options{
		StripHTML: e.cfg.StripHTML(),
		Indent:    e.cfg.Output.Indent,
	})
	if err != nil {
		return nil, err
	}

	return []byte(text), nil
}

func repair(e *env, input []byte) ([]byte, error) {
	m, err := mapx.FromJSON(input, e.sink)
	if err != nil {
		return nil, err
	}

	return encodeMapx(m, e.cfg.Output.Indent)
}

func encodeMapx(m *mapx.MapX, indent int) ([]byte, error) {
	data, err := m.JSON(indent)
	if err != nil {
		return nil, fmt.Errorf("encoding mapx json: %w", err)
	}

	return append(data, '\n'), nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	return data, nil
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write standard output: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}

	return nil
}

// report prints the collected warnings.
func report(w io.Writer, d *diagnostic.Diagnostics) {
	warnings := d.Warnings()
	if common.IsEmpty(warnings) {
		return
	}

	label := color.New(color.FgYellow, color.Bold)

	for _, msg := range warnings {
		_, _ = label.Fprint(w, "warning: ")
		_, _ = fmt.Fprintln(w, msg)
	}

	_, _ = fmt.Fprintf(w, "%d warnings\n", len(warnings))
}

func errorf(w io.Writer, format string, args ...any) {
	_, _ = color.New(color.FgRed, color.Bold).Fprint(w, "error: ")
	_, _ = fmt.Fprintf(w, format, args...)
}
