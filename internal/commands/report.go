package commands

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"spend/internal/core"
)

func newReportCommand(a *app) *cobra.Command {
	var (
		f  core.Filter
		by string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize spending, optionally broken down by category or month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			groupBy := core.GroupBy(by)
			if !groupBy.IsValid() {
				return fmt.Errorf("invalid --by value %q (want total, category or month)", by)
			}

			summary, err := a.client().ReadSummary(cmd.Context(), groupBy, f.Normalize())
			if err != nil {
				return fmt.Errorf("fetching summary: %w", err)
			}

			fmt.Printf("Total: %s (%d expenses)\n", summary.Total.String(), summary.Count)
			switch groupBy {
			case core.GroupCategory:
				printBuckets("CATEGORY", summary.ByCategory)
			case core.GroupMonth:
				printBuckets("MONTH", summary.ByMonth)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", string(core.GroupTotal), "breakdown: total, category or month")
	cmd.Flags().StringVar(&f.Category, "category", "", "only expenses in this category")
	cmd.Flags().StringVar(&f.StartDate, "from", "", "only expenses on or after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.EndDate, "to", "", "only expenses on or before this date (YYYY-MM-DD)")

	return cmd
}

func printBuckets(header string, buckets map[string]core.Bucket) {
	if len(buckets) == 0 {
		return
	}
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tAMOUNT\tCOUNT\n", header)
	for _, k := range keys {
		b := buckets[k]
		fmt.Fprintf(w, "%s\t%s\t%d\n", k, b.Total.String(), b.Count)
	}
	w.Flush()
}
