package cmd

import (
	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/ledger"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A single-user trade ledger with derived analytics",
	Long: `Tradebook keeps a ledger of trading records in a local SQLite
database and derives analytics from it.

It provides tools for:
  - Recording position entries/exits with computed P/L and ROI
  - Filtering, sorting and paginating the ledger
  - Portfolio statistics and a per-day performance timeline
  - CSV export and database backups`,
}

var cfgFile string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (built-in defaults if unset)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(cfgFile)
}

// openStore loads configuration and opens the ledger database. The caller
// owns the returned store and must Close it.
func openStore() (*ledger.Store, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	st, err := ledger.Open(cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	return st, cfg, nil
}
