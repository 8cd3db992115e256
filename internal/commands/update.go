package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"spend/internal/core"
)

func newUpdateCommand(a *app) *cobra.Command {
	var d core.Draft

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace an existing expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id %q", args[0])
			}
			if err := a.session().Update(cmd.Context(), id, d); err != nil {
				return describeDraftError(err)
			}
			fmt.Println("Expense updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&d.Amount, "amount", "", "amount spent, e.g. 12.50 (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&d.Date, "date", "", "expense date (YYYY-MM-DD, required)")
	_ = cmd.MarkFlagRequired("date")
	cmd.Flags().StringVar(&d.Category, "category", core.DefaultCategoryName, "expense category")
	cmd.Flags().StringVar(&d.Note, "note", "", "free-form note")

	return cmd
}
