package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type spreadOutput struct {
	Seeds  []string `json:"seeds"`
	Runs   int      `json:"runs"`
	Spread float64  `json:"spread"`
}

func newSpreadCmd(a *app) *cobra.Command {
	var refs []string
	var runs int
	cmd := &cobra.Command{
		Use:   "spread --seed A [--seed B ...]",
		Short: "Estimate the expected number of people a seed set convinces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if runs > 0 {
				a.cfg.Simulation.Runs = runs
			}
			ids, err := a.nodes(refs)
			if err != nil {
				return err
			}
			est, err := a.cfg.Estimator(a.log, a.metrics)
			if err != nil {
				return err
			}
			sigma, err := est.Estimate(context.Background(), a.graph, ids, a.item, a.cfg.Simulation.Runs)
			if err != nil {
				return err
			}

			out := spreadOutput{Seeds: a.labels(ids), Runs: a.cfg.Simulation.Runs, Spread: sigma}
			w := cmd.OutOrStdout()
			if a.format == "json" {
				return writeJSON(w, out)
			}
			fmt.Fprintf(w, "spread=%.3f runs=%d seeds=%v\n", out.Spread, out.Runs, out.Seeds)

			return nil
		},
	}
	cmd.Flags().StringSliceVar(&refs, "seed", nil, "seed labels or ids")
	cmd.Flags().IntVar(&runs, "runs", 0, "simulation runs (default from config)")
	_ = cmd.MarkFlagRequired("seed")

	return cmd
}
