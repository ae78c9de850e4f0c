package cli

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"

	"stixgraph/internal/config"
	"stixgraph/internal/domain"
)

// stringList is a repeatable string flag
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ", ")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func (e *env) newFlagSet(name, operands string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.Usage = func() {
		fmt.Fprintf(e.stderr, "Usage:\n  stixgraph %s [options] %s\n\nOptions:\n", name, operands)
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags reports help as done without an error
func parseFlags(fs *flag.FlagSet, args []string) (done bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, usageError("%s", err.Error())
	}
	return false, nil
}

// selectionFlags choose which objects a command sees. Defaults come from
// the config so an explicit flag overrides the file.
type selectionFlags struct {
	filters         stringList
	allowDeprecated bool
	allowRevoked    bool
	output          string
}

func (s *selectionFlags) register(fs *flag.FlagSet, cfg *config.Config) {
	fs.Var(&s.filters, "filter", "Filter predicate such as 'type = attack-pattern'. Repeat to AND several.")
	fs.BoolVar(&s.allowDeprecated, "allow-deprecated", !cfg.Filter.IgnoreDeprecated, "Keep deprecated objects.")
	fs.BoolVar(&s.allowRevoked, "allow-revoked", !cfg.Filter.IgnoreRevoked, "Keep revoked objects.")
	fs.StringVar(&s.output, "o", "", "Write output to this file instead of stdout.")
}

func (s *selectionFlags) apply(cfg *config.Config) {
	cfg.Filter.IgnoreDeprecated = !s.allowDeprecated
	cfg.Filter.IgnoreRevoked = !s.allowRevoked
}

// graphFlags toggle the optional edge rules, or replace the sources with a
// previously exported graph
type graphFlags struct {
	build     domain.BuildOptions
	fromGraph string
}

func (g *graphFlags) register(fs *flag.FlagSet, cfg *config.Config) {
	fs.BoolVar(&g.build.CreatedBy, "created-by", cfg.Graph.CreatedBy, "Add created-by edges from created_by_ref.")
	fs.BoolVar(&g.build.ModifiedBy, "modified-by", cfg.Graph.ModifiedBy, "Add modified-by edges from x_mitre_modified_by_ref.")
	fs.BoolVar(&g.build.Markings, "markings", cfg.Graph.Markings, "Add applies-to edges from object_marking_refs.")
	fs.BoolVar(&g.build.SkipMalformed, "skip-malformed", cfg.Graph.SkipMalformed, "Skip malformed objects with a warning instead of failing.")
	fs.StringVar(&g.fromGraph, "from-graph", "", "Read a graph exported by 'graph' (.json or .yaml) instead of STIX locations.")
}

func (g *graphFlags) apply(cfg *config.Config) {
	cfg.Graph.BuildOptions = g.build
}

// locationOnlyFlags shape a graph built from STIX locations and mean nothing
// for a graph read with -from-graph
var locationOnlyFlags = []string{
	"allow-deprecated", "allow-revoked", "created-by", "filter",
	"markings", "modified-by", "skip-malformed",
}

// checkFromGraph rejects -from-graph combined with an explicit
// location-only flag
func (g *graphFlags) checkFromGraph(fs *flag.FlagSet) error {
	if g.fromGraph == "" {
		return nil
	}

	var conflict string
	fs.Visit(func(f *flag.Flag) {
		if conflict == "" && slices.Contains(locationOnlyFlags, f.Name) {
			conflict = f.Name
		}
	})
	if conflict != "" {
		return usageError("-from-graph cannot be combined with -%s", conflict)
	}
	return nil
}
