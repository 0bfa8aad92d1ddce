package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rustyeddy/tradebook/ledger"
	"github.com/rustyeddy/tradebook/pkg/id"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to CSV",
	Long: `Write every trade to a CSV file, in ledger (id) order.

Without -o the file lands in the configured export directory under a
ULID name, so successive exports sort by creation time.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ListAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	out := exportOut
	if out == "" {
		out = filepath.Join(cfg.Export.Dir, "tradebook-"+id.New()+".csv")
	}

	csv := ledger.ExportCSV(records)
	if err := os.WriteFile(out, []byte(csv), 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	fmt.Printf("exported %d trades to %s\n", len(records), out)
	return nil
}
