package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/influence/seeds"
)

type seedRow struct {
	Label string  `json:"label"`
	ID    int     `json:"id"`
	Gain  float64 `json:"gain"`
}

type seedsOutput struct {
	Algorithm string      `json:"algorithm"`
	Seeds     []seedRow   `json:"seeds"`
	Spread    float64     `json:"spread"`
	Stats     seeds.Stats `json:"stats"`
}

func newSeedsCmd(a *app) *cobra.Command {
	var budget, runs int
	var algorithm string
	var pool []string
	cmd := &cobra.Command{
		Use:   "seeds",
		Short: "Choose the seed set that maximizes expected spread",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if budget > 0 {
				a.cfg.Selection.Budget = budget
			}
			if runs > 0 {
				a.cfg.Simulation.Runs = runs
			}
			if algorithm != "" {
				a.cfg.Selection.Algorithm = algorithm
			}
			est, err := a.cfg.Estimator(a.log, a.metrics)
			if err != nil {
				return err
			}
			opts, err := a.cfg.SelectOptions(est, a.log, a.metrics)
			if err != nil {
				return err
			}
			if len(pool) > 0 {
				ids, err := a.nodes(pool)
				if err != nil {
					return err
				}
				opts = append(opts, seeds.WithCandidates(ids...))
			}

			res, err := seeds.Select(context.Background(), a.graph, a.item, a.cfg.Selection.Budget, opts...)
			if err != nil {
				return err
			}

			out := seedsOutput{
				Algorithm: a.cfg.Selection.Algorithm,
				Seeds:     make([]seedRow, len(res.Seeds)),
				Spread:    res.Spread,
				Stats:     res.Stats,
			}
			for i, id := range res.Seeds {
				out.Seeds[i] = seedRow{Label: a.graph.Label(id), ID: int(id), Gain: res.Gains[i]}
			}
			w := cmd.OutOrStdout()
			if a.format == "json" {
				return writeJSON(w, out)
			}
			rows := make([][]string, len(out.Seeds))
			for i, s := range out.Seeds {
				rows[i] = []string{fmt.Sprint(i + 1), s.Label, fmt.Sprint(s.ID), ff(s.Gain)}
			}
			writeTable(w, []string{"RANK", "LABEL", "ID", "GAIN"}, rows)
			fmt.Fprintf(w, "spread=%.3f spread_calls=%d lookahead_hits=%d\n",
				res.Spread, res.Stats.SpreadCalls, res.Stats.LookaheadHits)

			return nil
		},
	}
	cmd.Flags().IntVar(&budget, "budget", 0, "number of seeds (default from config)")
	cmd.Flags().IntVar(&runs, "runs", 0, "simulations per estimate (default from config)")
	cmd.Flags().StringVar(&algorithm, "algorithm", "", "celf|celfpp|greedy (default from config)")
	cmd.Flags().StringSliceVar(&pool, "candidate", nil, "restrict the pool to these labels or ids")

	return cmd
}
