package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"spend/internal/core"
)

func newListCommand(a *app) *cobra.Command {
	var f core.Filter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := a.session()
			reg := a.registry()

			// Categories and expenses are independent fetches.
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				reg.Load(ctx)
				return nil
			})
			g.Go(func() error {
				return sess.Refresh(ctx, f)
			})
			if err := g.Wait(); err != nil {
				return err
			}

			expenses := sess.Expenses()
			if len(expenses) == 0 {
				fmt.Println("No expenses found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tCATEGORY\tAMOUNT\tNOTE")
			for _, e := range expenses {
				fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\t%s\n",
					e.ID, e.Date.String(), colorDot(reg.ResolveColor(e.Category)), e.Category,
					e.Amount.String(), e.Note)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&f.Category, "category", "", "only expenses in this category")
	cmd.Flags().StringVar(&f.StartDate, "from", "", "only expenses on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.EndDate, "to", "", "only expenses on or before this date (YYYY-MM-DD)")

	return cmd
}

// colorDot renders a category marker in the registry's hex color. Unparseable
// colors fall back to a plain dot.
func colorDot(hex string) string {
	if len(hex) != 7 || hex[0] != '#' {
		return "●"
	}
	var r, g, b int
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return "●"
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm●\x1b[0m", r, g, b)
}
