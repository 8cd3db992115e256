package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"spend/internal/core"
)

func newAddCommand(a *app) *cobra.Command {
	var d core.Draft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if d.Date == "" {
				d.Date = time.Now().Format(core.DateLayout)
			}
			if err := a.session().Create(cmd.Context(), d); err != nil {
				return describeDraftError(err)
			}
			fmt.Println("Expense added.")
			return nil
		},
	}

	cmd.Flags().StringVar(&d.Amount, "amount", "", "amount spent, e.g. 12.50 (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&d.Date, "date", "", "expense date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&d.Category, "category", core.DefaultCategoryName, "expense category")
	cmd.Flags().StringVar(&d.Note, "note", "", "free-form note")

	return cmd
}

// describeDraftError flattens validation failures into one message per line
// so the user sees every problem at once.
func describeDraftError(err error) error {
	var verrs core.ValidationErrors
	if errors.As(err, &verrs) {
		msg := "invalid expense:"
		for _, v := range verrs {
			msg += "\n  " + v
		}
		return errors.New(msg)
	}
	return fmt.Errorf("saving expense: %w", err)
}
