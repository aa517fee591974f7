// Command influence analyzes how content travels through a trust graph:
// trust paths, spread estimates, seed selection and day-by-day cascades.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/influence/builder"
	"github.com/katalvlaran/influence/config"
	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/metrics"
	"github.com/katalvlaran/influence/trust"
)

var errNoGraph = errors.New("influence: no graph: pass --graph FILE or --random N")

// app carries the state shared by every subcommand.
type app struct {
	cfgPath   string
	graphPath string
	format    string
	random    int
	density   float64
	dump      bool

	cfg     *config.Config
	log     *zap.Logger
	reg     *prometheus.Registry
	metrics *metrics.Metrics
	graph   *trust.Graph
	item    meme.Content
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "influence",
		Short:        "Trust-graph paths, spread estimates and seed selection",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.finish(cmd.OutOrStdout())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML config file (env: INFLUENCE_*)")
	pf.StringVar(&a.graphPath, "graph", "", "YAML graph file with nodes, edges and content")
	pf.IntVar(&a.random, "random", 0, "generate a random graph with N nodes instead of --graph")
	pf.Float64Var(&a.density, "density", 0.1, "edge probability for --random")
	pf.StringVar(&a.format, "format", "table", "output format: table|json")
	pf.BoolVar(&a.dump, "metrics", false, "print collected metrics in text exposition format")

	root.AddCommand(newPathCmd(a))
	root.AddCommand(newSeedsCmd(a))
	root.AddCommand(newSpreadCmd(a))
	root.AddCommand(newSimulateCmd(a))

	return root
}

func (a *app) setup() error {
	if a.format != "table" && a.format != "json" {
		return fmt.Errorf("influence: unknown format %q", a.format)
	}
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.log, err = cfg.Logger(); err != nil {
		return err
	}
	a.reg = prometheus.NewRegistry()
	a.metrics = metrics.New(a.reg)

	switch {
	case a.graphPath != "":
		a.graph, a.item, err = loadGraphFile(a.graphPath)
	case a.random > 0:
		a.graph, a.item, err = a.randomGraph()
	default:
		err = errNoGraph
	}
	if err != nil {
		return err
	}
	a.log.Debug("influence: graph loaded",
		zap.Int("nodes", a.graph.Len()),
		zap.Int("edges", a.graph.EdgeCount()),
		zap.String("item", a.item.ID),
	)

	return nil
}

// randomGraph builds a seeded random community labeled p0, p1, ... and a
// neutral content item.
func (a *app) randomGraph() (*trust.Graph, meme.Content, error) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(a.cfg.Simulation.Seed),
		builder.WithSymbNumb("p"),
		builder.WithTrustFn(builder.UniformTrustFn(0.2, 1)),
		builder.WithAttributeFn(builder.RandomAttributes),
		builder.WithIdentityFn(builder.CyclicIdentity("left", "center", "right")),
	}, builder.RandomSparse(a.random, a.density))
	if err != nil {
		return nil, meme.Content{}, err
	}
	item, err := meme.New(meme.Attributes{
		EmotionalIntensity: 0.5,
		FactualAccuracy:    0.8,
		Complexity:         0.5,
		Virality:           0.5,
		SourceCredibility:  0.5,
	}, meme.WithName("random"))
	if err != nil {
		return nil, meme.Content{}, err
	}

	return g, item, nil
}

func (a *app) finish(w io.Writer) error {
	defer func() { _ = a.log.Sync() }()
	if !a.dump {
		return nil
	}
	mfs, err := a.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}

// node resolves a label, falling back to a numeric NodeID.
func (a *app) node(ref string) (trust.NodeID, error) {
	id, err := a.graph.Lookup(ref)
	if err == nil {
		return id, nil
	}
	if n, convErr := strconv.Atoi(ref); convErr == nil && a.graph.Has(trust.NodeID(n)) {
		return trust.NodeID(n), nil
	}

	return -1, err
}

func (a *app) nodes(refs []string) ([]trust.NodeID, error) {
	out := make([]trust.NodeID, 0, len(refs))
	for _, r := range refs {
		for _, part := range strings.Split(r, ",") {
			if part = strings.TrimSpace(part); part == "" {
				continue
			}
			id, err := a.node(part)
			if err != nil {
				return nil, err
			}
			out = append(out, id)
		}
	}

	return out, nil
}

func (a *app) labels(ids []trust.NodeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = a.graph.Label(id)
	}
	return out
}
