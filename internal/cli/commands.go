package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"stixgraph/internal/codec"
	"stixgraph/internal/config"
	"stixgraph/internal/ctxlog"
	"stixgraph/internal/domain"
	"stixgraph/internal/service"
	"stixgraph/internal/source"
)

const locationOperands = "LOCATION..."

func serviceOptions(cfg *config.Config) service.Options {
	return service.Options{
		Lifecycle:  cfg.Filter.LifecyclePolicy,
		Build:      cfg.Graph.BuildOptions,
		Aliases:    cfg.Aliases.AliasOptions,
		Predicates: cfg.Filter.Predicates,
	}
}

// openService opens the locations and wraps them in a GraphService. The
// caller closes the returned source.
func (e *env) openService(ctx context.Context, locations []string) (*service.GraphService, source.Source, error) {
	if len(locations) == 0 {
		return nil, nil, usageError("at least one LOCATION is required")
	}

	src, err := source.Open(ctx, locations, e.cfg.SourceOptions())
	if err != nil {
		return nil, nil, err
	}
	ctxlog.FromContext(ctx).Debug("opened sources", "locations", len(locations))

	return service.NewGraphService(src, serviceOptions(e.cfg)), src, nil
}

// loadGraph builds the graph from the locations or reads -from-graph
func (e *env) loadGraph(ctx context.Context, sel *selectionFlags, gf *graphFlags, locations []string) (*domain.Graph, error) {
	if gf.fromGraph != "" {
		if len(locations) > 0 {
			return nil, usageError("-from-graph does not take LOCATION arguments")
		}
		return service.LoadGraph(ctx, gf.fromGraph)
	}

	svc, src, err := e.openService(ctx, locations)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return svc.Graph(ctx, sel.filters)
}

// withOutput runs write against stdout, or against path when one is given
func (e *env) withOutput(path string, write func(io.Writer) error) error {
	if path == "" || path == "-" {
		return write(e.stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (e *env) exportGraph(ctx context.Context, fs *flag.FlagSet, args []string, sel *selectionFlags, gf *graphFlags, exporter func() (codec.Exporter, error)) error {
	done, err := parseFlags(fs, args)
	if err != nil || done {
		return err
	}
	if err := gf.checkFromGraph(fs); err != nil {
		return err
	}
	sel.apply(e.cfg)
	gf.apply(e.cfg)

	exp, err := exporter()
	if err != nil {
		return err
	}

	g, err := e.loadGraph(ctx, sel, gf, fs.Args())
	if err != nil {
		return err
	}

	return e.withOutput(sel.output, func(w io.Writer) error {
		return exp.Export(g, w)
	})
}

func runTriples(ctx context.Context, e *env, args []string, quads bool) error {
	name := "triples"
	if quads {
		name = "quads"
	}
	fs := e.newFlagSet(name, locationOperands)

	var (
		sel selectionFlags
		gf  graphFlags
	)
	sel.register(fs, e.cfg)
	gf.register(fs, e.cfg)
	separator := fs.String("sep", e.cfg.Output.Separator, "Field separator.")
	tabs := fs.Bool("tabs", e.cfg.Output.Tabs, "Separate fields with tabs, overriding -sep.")
	var namespace *string
	if quads {
		namespace = fs.String("namespace", e.cfg.Output.Namespace, "Namespace written as the first field of each quad.")
	}

	return e.exportGraph(ctx, fs, args, &sel, &gf, func() (codec.Exporter, error) {
		e.cfg.Output.Separator = *separator
		e.cfg.Output.Tabs = *tabs

		if quads {
			e.cfg.Output.Namespace = *namespace
			if e.cfg.Output.Namespace == "" {
				return nil, usageError("quads requires -namespace")
			}
			return codec.NewQuadCodec(e.cfg.CodecOptions()), nil
		}
		return codec.NewTripleCodec(e.cfg.CodecOptions()), nil
	})
}

func runDOT(ctx context.Context, e *env, args []string) error {
	fs := e.newFlagSet("dot", locationOperands)

	var (
		sel selectionFlags
		gf  graphFlags
	)
	sel.register(fs, e.cfg)
	gf.register(fs, e.cfg)

	return e.exportGraph(ctx, fs, args, &sel, &gf, func() (codec.Exporter, error) {
		return codec.NewDOTCodec(), nil
	})
}

func runGraph(ctx context.Context, e *env, args []string) error {
	fs := e.newFlagSet("graph", locationOperands)

	var (
		sel selectionFlags
		gf  graphFlags
	)
	sel.register(fs, e.cfg)
	gf.register(fs, e.cfg)
	format := fs.String("format", codec.FormatJSON, "Document format. Options: 'json' or 'yaml'.")

	return e.exportGraph(ctx, fs, args, &sel, &gf, func() (codec.Exporter, error) {
		if *format != codec.FormatJSON && *format != codec.FormatYAML {
			return nil, usageError("invalid -format %q: must be json or yaml", *format)
		}
		return codec.Lookup(*format, e.cfg.CodecOptions())
	})
}

func runSummary(ctx context.Context, e *env, args []string) error {
	fs := e.newFlagSet("summary", locationOperands)

	var (
		sel selectionFlags
		gf  graphFlags
	)
	sel.register(fs, e.cfg)
	gf.register(fs, e.cfg)
	format := fs.String("format", codec.FormatJSON, "Summary format. Options: 'json' or 'yaml'.")

	return e.exportGraph(ctx, fs, args, &sel, &gf, func() (codec.Exporter, error) {
		exp, err := codec.NewSummaryCodec(*format, e.cfg.CodecOptions())
		if errors.Is(err, domain.ErrUnsupportedFormat) {
			return nil, usageError("%s", err.Error())
		}
		return exp, err
	})
}

func runAliasMap(ctx context.Context, e *env, args []string) error {
	fs := e.newFlagSet("alias-map", locationOperands)

	var sel selectionFlags
	sel.register(fs, e.cfg)
	includeNames := fs.Bool("include-names", e.cfg.Aliases.IncludeNames, "Map names and x_mitre_aliases, not only catalog IDs.")
	lowercase := fs.Bool("lowercase", e.cfg.Aliases.Lowercase, "Lowercase every alias.")
	format := fs.String("format", string(e.cfg.Aliases.Format), "Output format. Options: 'json', 'csv', 'tsv'.")

	done, err := parseFlags(fs, args)
	if err != nil || done {
		return err
	}
	sel.apply(e.cfg)
	e.cfg.Aliases.IncludeNames = *includeNames
	e.cfg.Aliases.Lowercase = *lowercase

	aliasFormat, err := config.ParseAliasFormat(*format)
	if err != nil {
		return usageError("%s", err.Error())
	}
	e.cfg.Aliases.Format = aliasFormat

	exporter, err := codec.LookupAlias(string(aliasFormat), e.cfg.CodecOptions())
	if err != nil {
		return usageError("%s", err.Error())
	}

	svc, src, err := e.openService(ctx, fs.Args())
	if err != nil {
		return err
	}
	defer src.Close()

	return e.withOutput(sel.output, func(w io.Writer) error {
		return svc.ExportAliases(ctx, sel.filters, exporter, w)
	})
}

func runObjects(ctx context.Context, e *env, args []string) error {
	fs := e.newFlagSet("objects", locationOperands)

	var sel selectionFlags
	sel.register(fs, e.cfg)

	done, err := parseFlags(fs, args)
	if err != nil || done {
		return err
	}
	sel.apply(e.cfg)

	svc, src, err := e.openService(ctx, fs.Args())
	if err != nil {
		return err
	}
	defer src.Close()

	return e.withOutput(sel.output, func(w io.Writer) error {
		return svc.ExportObjects(ctx, sel.filters, e.cfg.CodecOptions(), w)
	})
}

func runConfig(ctx context.Context, e *env, args []string) error {
	if len(args) == 0 {
		return usageError("config requires a subcommand: init or show")
	}

	switch args[0] {
	case "show":
		data, err := e.cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = e.stdout.Write(data)
		return err

	case "init":
		fs := e.newFlagSet("config init", "")
		path := fs.String("o", config.DefaultConfigPath(), "Where to write the config file.")
		force := fs.Bool("force", false, "Overwrite an existing file.")

		done, err := parseFlags(fs, args[1:])
		if err != nil || done {
			return err
		}

		if _, err := os.Stat(*path); err == nil && !*force {
			return fmt.Errorf("%s already exists; use -force to overwrite", *path)
		}
		if err := config.DefaultConfig().Save(*path); err != nil {
			return err
		}
		ctxlog.FromContext(ctx).Info("wrote config", "path", *path)
		return nil
	}

	return usageError("unknown config subcommand %q", args[0])
}
