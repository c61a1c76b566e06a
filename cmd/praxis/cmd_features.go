// cmd_features.go — `praxis features`: report the structural features
// detected in a problem's entity/relation structure.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/praxis/feature"
)

func newFeaturesCmd() *cobra.Command {
	var domain string

	cmd := &cobra.Command{
		Use:   "features <problem-file>",
		Short: "Detect structural features of a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problem, err := loadProblem(args[0], domain)
			if err != nil {
				return err
			}

			detected := feature.Detect(&problem.Structure)
			if len(detected) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no structural features detected in %q\n", problem.Name)
				return nil
			}
			for _, f := range detected {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", "",
		"treat the input as a concrete problem in this domain and abstract it first")

	return cmd
}
