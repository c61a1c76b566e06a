// cmd_catalog.go — `praxis catalog`: list the stock pattern library or
// export it to a file for editing and later use with --store.

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/praxis/catalog"
	"github.com/katalvlaran/praxis/store"
)

func newCatalogCmd() *cobra.Command {
	var (
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List or export the stock pattern library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.New()
			catalog.Seed(st)

			if out == "" {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tTAGS\tDOMAINS")
				for _, p := range st.Patterns() {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						p.ID, p.Name,
						strings.Join(p.Tags, ","),
						strings.Join(p.DomainsCovered(), ","),
					)
				}
				return w.Flush()
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			switch format {
			case "json":
				err = st.Save(f)
			case "yaml":
				err = st.SaveYAML(f)
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d patterns to %s\n", st.Len(), out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the library to this file instead of listing")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "export format: json or yaml")

	return cmd
}
