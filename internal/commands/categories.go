package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCategoriesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the known expense categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := a.registry()
			reg.Load(cmd.Context())

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOLOR")
			for _, c := range reg.Categories() {
				fmt.Fprintf(w, "%s %s\t%s\n", colorDot(c.Color), c.Name, c.Color)
			}
			return w.Flush()
		},
	}
}
