package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"dbgraph/core/bcalm2"
	"dbgraph/core/dbg"
	"dbgraph/internal/cmdutil"
	"dbgraph/internal/config"
	"dbgraph/internal/writers"
)

// globals are the persistent flags plus the resolved config.
type globals struct {
	stderr io.Writer

	configPath string
	kmerSize   int
	strategy   string
	logLevel   string
	logFormat  string
	quiet      bool

	cfg config.Config
	log *slog.Logger
}

func (g *globals) bind(root *cobra.Command) {
	def := config.Default()
	f := root.PersistentFlags()
	f.StringVar(&g.configPath, "config", "", "YAML config file")
	f.IntVarP(&g.kmerSize, "kmer-size", "k", def.KmerSize, "k-mer size the unitigs were built with")
	f.StringVar(&g.strategy, "strategy", string(def.Strategy), "node identity strategy (propagate|content)")
	f.StringVar(&g.logLevel, "log-level", def.Log.Level, "log level (debug|info|warn|error)")
	f.StringVar(&g.logFormat, "log-format", def.Log.Format, "log format (text|json)")
	f.BoolVarP(&g.quiet, "quiet", "q", false, "only log errors")
}

// load reads the config file and lets explicitly set flags override it.
func (g *globals) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("kmer-size") {
		cfg.KmerSize = g.kmerSize
	}
	if f.Changed("strategy") {
		cfg.Strategy = dbg.Strategy(g.strategy)
	}
	if f.Changed("log-level") {
		cfg.Log.Level = g.logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = g.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	g.log = cmdutil.NewLogger(cfg.Log.Level, cfg.Log.Format, g.quiet, g.stderr)
	return nil
}

func (g *globals) buildOptions(extra ...dbg.Option) []dbg.Option {
	opts := append(g.cfg.BuildOptions(), dbg.WithLogger(g.log))
	return append(opts, extra...)
}

func (g *globals) readEdge(ctx context.Context, path string, extra ...dbg.Option) (*bcalm2.EdgeGraph, dbg.Stats, error) {
	return bcalm2.ReadEdgeCentricFile(ctx, path, g.cfg.KmerSize, g.cfg.Strategy, g.buildOptions(extra...)...)
}

func (g *globals) readNode(ctx context.Context, path string) (*bcalm2.NodeGraph, error) {
	return bcalm2.ReadNodeCentricFile(ctx, path)
}

func layout(nodeCentric bool) string {
	if nodeCentric {
		return "node"
	}
	return "edge"
}

func checkFormat(format string) error {
	if _, ok := writers.GraphWriters[format]; !ok {
		return fmt.Errorf("unknown format %q (want one of %v)", format, writers.GraphFormats())
	}
	return nil
}
