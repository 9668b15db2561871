package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/abhinav/huffcode/internal/log"
	"github.com/abhinav/huffcode/internal/paniclog"
	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
)

var _version = "dev"

var _main = mainCmd{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
	Getenv: os.Getenv,
	Clock:  clock.New(),
}

func main() {
	if err := run(&_main, os.Args[1:]); err != nil && !errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(_main.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *mainCmd, args []string) error {
	cfg, err := cmd.parseConfig(args)
	if err != nil {
		return err
	}

	if cfg.Version {
		fmt.Fprintf(cmd.Stdout, "huffcode version %v\n", _version)
		return nil
	}

	return cmd.Run(cfg)
}

type mainCmd struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Getenv func(string) string // == os.Getenv
	Clock  clock.Clock
}

const _name = "huffcode"

const _usage = `usage: %v [options] [FILE]

Compresses FILE with a Huffman code built from its byte frequencies.
Reads from stdin if FILE is absent or '-'.

The following flags are available:

	-mode MODE
		operation to perform: compress, decompress, or table.
		Defaults to compress.
	-d
		shorthand for -mode decompress.
	-table
		shorthand for -mode table.
		Prints the code table for FILE instead of compressing it.
		Each line holds a byte, its frequency, and its codeword.
	-o FILE
		file to write output to.
		Uses stdout by default.
	-log FILE
		file to write logs to.
		Uses stderr by default.
	-verbose
		log more output.
	-version
		display version information.

Default flags may be set in the HUFFCODE_OPTS environment variable.
They are parsed before the command line.

	HUFFCODE_OPTS='-verbose -log /tmp/huffcode.log'
`

func (cmd *mainCmd) init() {
	if cmd.Clock == nil {
		cmd.Clock = clock.New()
	}
	if cmd.Getenv == nil {
		cmd.Getenv = func(string) string { return "" }
	}
}

func (cmd *mainCmd) Run(cfg *config) (err error) {
	cmd.init()

	logW := cmd.Stderr
	if file := cfg.LogFile; len(file) > 0 {
		var f *os.File
		f, err = os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log %q: %v", file, err)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		logW = f
	}

	defer paniclog.Recover(&err, logW)

	lvl := log.Info
	if cfg.Verbose {
		lvl = log.Debug
	}
	logger := log.New(logW, lvl)

	data, err := cmd.readInput(cfg.Input)
	if err != nil {
		return err
	}

	out := cmd.Stdout
	if file := cfg.Output; len(file) > 0 {
		var f *os.File
		f, err = os.Create(file)
		if err != nil {
			return fmt.Errorf("create output: %v", err)
		}
		defer multierr.AppendInvoke(&err, multierr.Close(f))
		out = f
	}

	return (&app{
		Log:   logger,
		Clock: cmd.Clock,
	}).Run(cfg, data, out)
}

func (cmd *mainCmd) readInput(file string) (_ []byte, err error) {
	if len(file) == 0 || file == "-" {
		bs, err := io.ReadAll(cmd.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %v", err)
		}
		return bs, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	bs, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %q: %v", file, err)
	}
	return bs, nil
}
