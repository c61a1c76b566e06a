// cmd_match.go — `praxis match`: rank the pattern library against a
// problem file and print the scored results.

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/praxis/store"
)

func newMatchCmd() *cobra.Command {
	var (
		threshold float64
		domain    string
		storePath string
	)

	cmd := &cobra.Command{
		Use:   "match <problem-file>",
		Short: "Rank stored patterns against a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := loadProblem(args[0], domain)
			if err != nil {
				return err
			}
			st, err := loadStore(storePath)
			if err != nil {
				return err
			}

			results := st.Match(&problem, threshold)
			if len(results) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(),
					"no patterns matched %q at threshold %.2f\n", problem.Name, threshold)
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SCORE\tPATTERN\tMATCHED\tMISSING\tDOMAINS")
			for _, r := range results {
				fmt.Fprintf(w, "%.0f%%\t%s\t%s\t%s\t%s\n",
					r.Score*100,
					r.Pattern.Name,
					strings.Join(r.Matched, ","),
					strings.Join(r.Unmatched, ","),
					strings.Join(r.Pattern.DomainsCovered(), ","),
				)
			}

			return w.Flush()
		},
	}

	cmd.Flags().Float64VarP(&threshold, "threshold", "t", store.DefaultThreshold,
		"minimum match score to include a pattern")
	cmd.Flags().StringVarP(&domain, "domain", "d", "",
		"treat the input as a concrete problem in this domain and abstract it first")
	cmd.Flags().StringVarP(&storePath, "store", "s", "",
		"pattern library file merged over the stock catalog")

	return cmd
}
