package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nauty/nauty"
)

func newOrbitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orbits [file]",
		Short: "Print the vertex orbit partition under the automorphism group",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			g, err := readGraph(path)
			if err != nil {
				return err
			}

			res, err := nauty.Dense(ctx, g)
			if err != nil {
				return err
			}

			classes := res.Orbits.Classes()
			reps := make([]int, 0, len(classes))
			for rep := range classes {
				reps = append(reps, rep)
			}
			sort.Ints(reps)

			out := cmd.OutOrStdout()
			for _, rep := range reps {
				members := classes[rep]
				sort.Ints(members)
				strs := make([]string, len(members))
				for i, v := range members {
					strs[i] = fmt.Sprintf("%d", v)
				}
				fmt.Fprintf(out, "{%s}\n", strings.Join(strs, ","))
			}
			return nil
		},
	}
	return cmd
}
