package commands

import (
	"os"

	"github.com/spf13/cobra"

	"spend/internal/registry"
	"spend/internal/session"
	"spend/internal/store/api"
)

const defaultAPIURL = "http://localhost:5000"

// app carries the flags shared by every subcommand and builds the
// client-side pieces on demand.
type app struct {
	apiURL string
}

func (a *app) client() *api.Client {
	return api.NewClient(a.apiURL, nil)
}

func (a *app) session() *session.Session {
	return session.New(a.client())
}

func (a *app) registry() *registry.Registry {
	return registry.New(a.client())
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "spend",
		Short: "Track expenses against a spend server",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	apiURL := os.Getenv("SPEND_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	rootCmd.PersistentFlags().StringVar(&a.apiURL, "api-url", apiURL, "base URL of the spend server")

	rootCmd.AddCommand(newListCommand(a))
	rootCmd.AddCommand(newAddCommand(a))
	rootCmd.AddCommand(newUpdateCommand(a))
	rootCmd.AddCommand(newDeleteCommand(a))
	rootCmd.AddCommand(newReportCommand(a))
	rootCmd.AddCommand(newCategoriesCommand(a))

	return rootCmd
}
