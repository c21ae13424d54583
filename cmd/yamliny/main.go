package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/slarse/YAMLiny"
)

const usage = "usage: yamliny <parse|serialize|merge> [flags] [args...]"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "parse":
		err = cmdParse(args, os.Stdout)
	case "serialize":
		err = cmdSerialize(args, os.Stdin, os.Stdout)
	case "merge":
		err = cmdMerge(args, os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n%s\n", cmd, usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "yamliny %s: %v\n", cmd, err)
		os.Exit(1)
	}
}

// newFlagSet returns a flag set with the -v flag every subcommand shares.
func newFlagSet(name string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log debug output to stderr")
	return fs, verbose
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func cmdParse(args []string, out io.Writer) error {
	fs, verbose := newFlagSet("parse")
	format := fs.String("format", "json", "output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: yamliny parse [-format json|yaml] <file>")
	}
	log := newLogger(*verbose)

	path := fs.Arg(0)
	log.Debug("parsing file", "path", path)
	result, err := yamliny.LoadFile(path)
	if err != nil {
		return err
	}
	log.Debug("parsed file", "path", path, "keys", len(result))
	return write(out, result, *format)
}

func cmdSerialize(args []string, in io.Reader, out io.Writer) error {
	fs, verbose := newFlagSet("serialize")
	from := fs.String("from", "json", "input format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	log := newLogger(*verbose)

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}
	log.Debug("read input", "bytes", len(data), "format", *from)

	input, err := decode(data, *from)
	if err != nil {
		return err
	}
	text, err := yamliny.MarshalString(input)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, text)
	return err
}

func cmdMerge(args []string, out io.Writer) error {
	fs, verbose := newFlagSet("merge")
	format := fs.String("format", "json", "output format: json, yaml or yamliny")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: yamliny merge [-format json|yaml|yamliny] <file>...")
	}
	log := newLogger(*verbose)

	merged := map[string]any{}
	for _, path := range fs.Args() {
		doc, err := yamliny.LoadFile(path)
		var perr *yamliny.Error
		if errors.As(err, &perr) {
			return fmt.Errorf("%s: %w", path, err)
		} else if err != nil {
			return err
		}
		log.Debug("merging file", "path", path, "keys", len(doc))
		merged = yamliny.Merge(merged, doc)
	}
	return write(out, merged, *format)
}

func decode(data []byte, format string) (map[string]any, error) {
	switch format {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var input map[string]any
		if err := dec.Decode(&input); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		return yamliny.Normalize(input)
	case "yaml":
		return yamliny.FromYAML(data)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

func write(out io.Writer, v map[string]any, format string) error {
	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	case "yaml":
		data, err = yaml.Marshal(v)
	case "yamliny":
		data, err = yamliny.Marshal(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
