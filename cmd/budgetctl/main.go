// Command budgetctl is the operator CLI: it inspects budget periods and
// reconciles a user's ledger by re-running the daily log refresh.
package main

import (
	"os"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var flagLocale string

var rootCmd = &cobra.Command{
	Use:          "budgetctl",
	Short:        "Daily Budget operator tool",
	Long:         "Inspect budget periods and reconcile daily ledgers.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "en", "Locale for period labels")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
