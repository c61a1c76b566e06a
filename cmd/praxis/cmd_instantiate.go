// cmd_instantiate.go — `praxis instantiate`: render a pattern's abstract
// solution into a concrete domain using the stock mapping for that domain.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/praxis/catalog"
	"github.com/katalvlaran/praxis/mapping"
)

func newInstantiateCmd() *cobra.Command {
	var (
		domain    string
		storePath string
	)

	cmd := &cobra.Command{
		Use:   "instantiate <pattern-id>",
		Short: "Render a pattern's solution steps in a concrete domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := catalog.Mappings()[domain]
			if !ok {
				return fmt.Errorf("unknown domain %q", domain)
			}
			st, err := loadStore(storePath)
			if err != nil {
				return err
			}
			p, ok := st.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown pattern %q", args[0])
			}

			steps := mapping.Instantiate(p.Solution, m)
			fmt.Fprintf(cmd.OutOrStdout(), "%s in %s:\n", p.Name, domain)
			for i, s := range steps {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s(%v)", i+1, s.Op, s.Args)
				if s.Rationale != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "  # %s", s.Rationale)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&domain, "domain", "d", "", "target domain for the rendered steps")
	cmd.Flags().StringVarP(&storePath, "store", "s", "",
		"pattern library file merged over the stock catalog")
	_ = cmd.MarkFlagRequired("domain")

	return cmd
}
