package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nauty/nauty"
	"github.com/katalvlaran/nauty/permutation"
)

func newAutoCmd() *cobra.Command {
	var schreier bool
	cmd := &cobra.Command{
		Use:   "auto [file]",
		Short: "Print automorphism generators and group order",
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

			var opts []nauty.Option
			if schreier || cfg.Schreier {
				opts = append(opts, nauty.WithSchreierSims())
			}
			res, err := nauty.Dense(ctx, g, opts...)
			if err != nil {
				return err
			}
			logger.Debugf("run %s finished: status=%s", res.RunID, res.Status)

			out := cmd.OutOrStdout()
			for _, gen := range res.Generators {
				fmt.Fprintln(out, cycleNotation(gen))
			}
			printGroupOrder(cmd, res.GroupOrderMantissa, res.GroupOrderExponent, res.GroupOrderExact)
			return nil
		},
	}
	cmd.Flags().BoolVar(&schreier, "schreier", false, "also compute the exact group order via Schreier-Sims")
	return cmd
}

// cycleNotation renders a permutation as disjoint-cycle notation, omitting
// fixed points, e.g. "(0 3)(1 2)"; the identity renders as "()".
func cycleNotation(p permutation.Permutation) string {
	var b strings.Builder
	for _, cyc := range p.Cycles() {
		if len(cyc) < 2 {
			continue
		}
		b.WriteByte('(')
		for i, v := range cyc {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", v)
		}
		b.WriteByte(')')
	}
	if b.Len() == 0 {
		return "()"
	}
	return b.String()
}

func printGroupOrder(cmd *cobra.Command, mantissa float64, exponent int, exact *big.Int) {
	out := cmd.OutOrStdout()
	if exact != nil {
		fmt.Fprintf(out, "order: %s\n", exact.String())
		return
	}
	fmt.Fprintf(out, "order: %gE%d\n", mantissa, exponent)
}
