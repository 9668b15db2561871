package main

import (
	"flag"
	"fmt"

	shellwords "github.com/mattn/go-shellwords"
)

// _optsEnv names the environment variable holding default flags.
const _optsEnv = "HUFFCODE_OPTS"

// mode is the operation requested on the command line.
type mode int

const (
	compressMode mode = iota
	decompressMode
	tableMode
)

var _ flag.Value = (*mode)(nil)

func (m mode) String() string {
	switch m {
	case compressMode:
		return "compress"
	case decompressMode:
		return "decompress"
	case tableMode:
		return "table"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func (m *mode) Set(s string) error {
	for _, v := range []mode{compressMode, decompressMode, tableMode} {
		if v.String() == s {
			*m = v
			return nil
		}
	}
	return fmt.Errorf("unknown mode %q", s)
}

type config struct {
	Mode    mode
	Input   string // empty or "-" for stdin
	Output  string
	LogFile string
	Verbose bool
	Version bool
}

func (c *config) RegisterFlags(flag *flag.FlagSet) {
	// No help here because we put it all in _usage.
	flag.Var(&c.Mode, "mode", "")
	flag.BoolFunc("d", "", c.setMode(decompressMode))
	flag.BoolFunc("table", "", c.setMode(tableMode))
	flag.StringVar(&c.Output, "o", "", "")
	flag.StringVar(&c.LogFile, "log", "", "")
	flag.BoolVar(&c.Verbose, "verbose", false, "")
	flag.BoolVar(&c.Version, "version", false, "")
}

// setMode builds a flag handler that switches to m,
// refusing to combine it with a different mode.
func (c *config) setMode(m mode) func(string) error {
	return func(string) error {
		if c.Mode != compressMode && c.Mode != m {
			return fmt.Errorf("conflicting modes: %v and %v", c.Mode, m)
		}
		c.Mode = m
		return nil
	}
}

// parseConfig parses default flags from the environment
// followed by the command line arguments.
func (cmd *mainCmd) parseConfig(args []string) (*config, error) {
	cmd.init()

	var cfg config
	flag := flag.NewFlagSet(_name, flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		name := flag.Name()
		fmt.Fprintf(flag.Output(), _usage, name)
	}
	cfg.RegisterFlags(flag)

	envArgs, err := shellwords.Parse(cmd.Getenv(_optsEnv))
	if err != nil {
		return nil, fmt.Errorf("parse $%v: %v", _optsEnv, err)
	}

	if err := flag.Parse(append(envArgs, args...)); err != nil {
		return nil, err
	}

	switch args := flag.Args(); len(args) {
	case 0:
	case 1:
		cfg.Input = args[0]
	default:
		return nil, fmt.Errorf("unexpected arguments %q", args[1:])
	}

	return &cfg, nil
}
