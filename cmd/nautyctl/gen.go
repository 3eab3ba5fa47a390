package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nauty/nauty"
	"github.com/katalvlaran/nauty/permutation"
)

func newGenCmd() *cobra.Command {
	var bound uint64
	cmd := &cobra.Command{
		Use:   "gen [file]",
		Short: "Generate the full group from a list of permutation generators",
		Long:  "Reads one permutation per line as comma-separated images (e.g. \"1,0,2,3\") from file or stdin, and prints every element of the group they generate. If the group has more than --bound elements, it prints nothing and fails with an error.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			if bound == 0 {
				bound = cfg.Bound
			}
			if bound == 0 {
				bound = 1_000_000
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			gens, err := readGenerators(path)
			if err != nil {
				return err
			}

			elems, err := nauty.GenerateGroup(gens, bound)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range elems {
				fmt.Fprintln(out, cycleNotation(e))
			}
			fmt.Fprintf(out, "order: %d\n", len(elems))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&bound, "bound", 0, "stop once the generated group would exceed this many elements (default 1000000, or config bound)")
	return cmd
}

func readGenerators(path string) ([]permutation.Permutation, error) {
	var r io.Reader = os.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return readGeneratorsFromReader(r)
}

func readGeneratorsFromReader(r io.Reader) ([]permutation.Permutation, error) {
	var gens []permutation.Permutation
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		images := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("nautyctl: gen: %q: %w", line, err)
			}
			images[i] = v
		}
		p, err := permutation.FromArray(images)
		if err != nil {
			return nil, err
		}
		gens = append(gens, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(gens) == 0 {
		return nil, fmt.Errorf("nautyctl: gen: no generators given")
	}
	return gens, nil
}
