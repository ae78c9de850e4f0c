package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"stixgraph/internal/codec"
	"stixgraph/internal/config"
	"stixgraph/internal/ctxlog"
)

// ExitError is an error carrying the process exit code
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

const usageText = `stixgraph - convert STIX 2 objects into a labeled directed graph.

Usage:
  stixgraph [global options] <command> [options] LOCATION...

Commands:
  triples     Write sorted source, label, target records
  quads       Write sorted namespace, source, label, target records
  alias-map   Write the map from names, aliases and catalog IDs to object IDs
  dot         Write a Graphviz digraph
  graph       Write the node-link graph document as json or yaml
  summary     Write node and edge counts
  objects     Write the selected objects as a JSON array
  config      Write (init) or print (show) the configuration

LOCATION is a STIX directory store, a JSON file or an http(s) URL.
Run 'stixgraph <command> -h' for command options.

Global options:
`

// env is what every command runs against
type env struct {
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
}

// Run executes the command line args. It returns nil after printing help.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	global := flag.NewFlagSet("stixgraph", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() {
		fmt.Fprint(stderr, usageText)
		global.PrintDefaults()
	}

	configPath := global.String("config", "", "Path to a config file. Default: $STIXGRAPH_CONFIG, ./stixgraph.yaml, then the XDG locations.")
	indent := global.Int("indent", codec.DefaultIndent, "JSON indent width. 0 writes compact JSON.")
	logLevel := global.String("log-level", string(config.LogLevelInfo), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormat := global.String("log-format", string(config.LogFormatText), "Log output format. Options: 'text' or 'json'.")

	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return usageError("%s", err.Error())
	}

	if global.NArg() == 0 {
		global.Usage()
		return usageError("no command given")
	}

	cfg, cfgPath, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	// Explicit flags win over the file
	var flagErr error
	global.Visit(func(f *flag.Flag) {
		var err error
		switch f.Name {
		case "indent":
			cfg.Output.Indent = *indent
		case "log-level":
			cfg.Log.Level, err = config.ParseLogLevel(*logLevel)
		case "log-format":
			cfg.Log.Format, err = config.ParseLogFormat(*logFormat)
		}
		if flagErr == nil {
			flagErr = err
		}
	})
	if flagErr != nil {
		return usageError("%s", flagErr.Error())
	}
	if err := cfg.Validate(); err != nil {
		return usageError("%s", err.Error())
	}

	logger := newLogger(cfg.Log, stderr)
	ctx = ctxlog.WithLogger(ctx, logger)
	if cfgPath != "" {
		logger.Debug("loaded config", "path", cfgPath)
	}

	e := &env{cfg: cfg, stdout: stdout, stderr: stderr}
	name, rest := global.Arg(0), global.Args()[1:]

	switch name {
	case "triples":
		return runTriples(ctx, e, rest, false)
	case "quads":
		return runTriples(ctx, e, rest, true)
	case "alias-map":
		return runAliasMap(ctx, e, rest)
	case "dot":
		return runDOT(ctx, e, rest)
	case "graph":
		return runGraph(ctx, e, rest)
	case "summary":
		return runSummary(ctx, e, rest)
	case "objects":
		return runObjects(ctx, e, rest)
	case "config":
		return runConfig(ctx, e, rest)
	}

	return usageError("unknown command %q", name)
}

func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}
