package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rustyeddy/tradebook/ledger"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Portfolio statistics",
	Long:  `Summary statistics and a per-day profit timeline over the whole ledger.`,
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ListAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	printStats(os.Stdout, ledger.ComputeStats(records))
	return nil
}

func printStats(w io.Writer, s ledger.Stats) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Portfolio Statistics")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Trades:        %d\n", s.TotalTrades)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", s.WinRate)
	fmt.Fprintf(w, "Total P/L:     %.2f\n", s.TotalPL)
	fmt.Fprintf(w, "Avg ROI:       %.2f%%\n", s.AvgROI)

	if s.BestPair != "" {
		fmt.Fprintf(w, "Best Pair:     %s\n", s.BestPair)
	}
	if s.WorstPair != "" {
		fmt.Fprintf(w, "Worst Pair:    %s\n", s.WorstPair)
	}

	if len(s.Timeline) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Daily P/L")
		fmt.Fprintln(w, "--------------------------------------------------")
		for _, day := range s.Timeline {
			fmt.Fprintf(w, "%s  %10.2f\n", day.Date, day.Profit)
		}
	}
}
