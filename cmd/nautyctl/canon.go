package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nauty/graph6"
	"github.com/katalvlaran/nauty/nauty"
)

func newCanonCmd() *cobra.Command {
	var schreier bool
	cmd := &cobra.Command{
		Use:   "canon [file]",
		Short: "Print a graph's canonical form (graph6) and group order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			cfg := configFromContext(ctx)

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			g, err := readGraph(path)
			if err != nil {
				return err
			}
			logger.Debugf("loaded graph on %d vertices", g.N)

			opts := []nauty.Option{nauty.WithCanonical()}
			if schreier || cfg.Schreier {
				opts = append(opts, nauty.WithSchreierSims())
			}
			res, err := nauty.Dense(ctx, g, opts...)
			if err != nil {
				return err
			}
			logger.Debugf("run %s finished: status=%s", res.RunID, res.Status)

			fmt.Fprintln(cmd.OutOrStdout(), string(graph6.EncodeGraph6(res.CanonicalForm)))
			printGroupOrder(cmd, res.GroupOrderMantissa, res.GroupOrderExponent, res.GroupOrderExact)
			return nil
		},
	}
	cmd.Flags().BoolVar(&schreier, "schreier", false, "also compute the exact group order via Schreier-Sims")
	return cmd
}
