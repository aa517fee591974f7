package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/influence/pathfind"
)

type pathOutput struct {
	Success  bool     `json:"success"`
	Path     []string `json:"path"`
	Cost     float64  `json:"cost"`
	Explored int      `json:"explored"`
	Mode     string   `json:"mode"`
}

func newPathCmd(a *app) *cobra.Command {
	var from, to, mode, heuristic string
	var explain bool
	cmd := &cobra.Command{
		Use:   "path --from A --to B",
		Short: "Find the cheapest trust or content path between two people",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if mode != "" {
				a.cfg.Path.Mode = mode
			}
			if heuristic != "" {
				a.cfg.Path.Heuristic = heuristic
			}
			opts, err := a.cfg.PathOptions(a.log, a.metrics)
			if err != nil {
				return err
			}
			opts = append(opts, pathfind.WithContent(a.item))

			src, err := a.node(from)
			if err != nil {
				return err
			}
			dst, err := a.node(to)
			if err != nil {
				return err
			}
			res, err := pathfind.Find(a.graph, src, dst, opts...)
			if err != nil && !errors.Is(err, pathfind.ErrNoPath) {
				return err
			}

			out := cmd.OutOrStdout()
			if a.format == "json" {
				return writeJSON(out, pathOutput{
					Success:  res.Success,
					Path:     a.labels(res.Path),
					Cost:     res.Cost,
					Explored: res.Explored,
					Mode:     a.cfg.Path.Mode,
				})
			}
			rows := make([][]string, 0, len(res.Path))
			for i, id := range res.Path {
				rows = append(rows, []string{fmt.Sprint(i), a.graph.Label(id), fmt.Sprint(int(id))})
			}
			writeTable(out, []string{"HOP", "LABEL", "ID"}, rows)
			fmt.Fprintf(out, "cost=%.4f explored=%d\n", res.Cost, res.Explored)
			if explain && res.Success {
				text, err := pathfind.Breakdown(a.graph, res.Path, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, text)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source label or id")
	cmd.Flags().StringVar(&to, "to", "", "target label or id")
	cmd.Flags().StringVar(&mode, "mode", "", "cost mode: trust|content (default from config)")
	cmd.Flags().StringVar(&heuristic, "heuristic", "", "heuristic policy: bounded|raw (default from config)")
	cmd.Flags().BoolVar(&explain, "explain", false, "print the per-edge cost breakdown")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
