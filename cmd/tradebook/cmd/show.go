package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rustyeddy/tradebook/ledger"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one trade in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid trade id %q", arg)
	}
	return id, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	t, ok, err := st.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}
	if !ok {
		return fmt.Errorf("trade %d not found", id)
	}

	printTrade(t)
	return nil
}

func printTrade(t ledger.Trade) {
	fmt.Printf("Trade:         %d\n", t.ID)
	fmt.Printf("Date:          %s\n", t.Date)
	fmt.Printf("Pair:          %s\n", t.Pair)
	fmt.Printf("Side:          %s\n", t.Side)
	fmt.Printf("Entry:         %g\n", t.Entry)
	fmt.Printf("Exit:          %g\n", t.Exit)
	fmt.Printf("Size:          %g\n", t.Size)
	fmt.Printf("Leverage:      %g\n", t.Leverage)
	if t.TakeProfit.Valid {
		fmt.Printf("Take Profit:   %g\n", t.TakeProfit.Float64)
	}
	if t.StopLoss.Valid {
		fmt.Printf("Stop Loss:     %g\n", t.StopLoss.Float64)
	}
	fmt.Printf("P/L:           %.2f\n", t.Profit)
	fmt.Printf("ROI:           %.2f%%\n", t.ROI)
	if t.Notes != "" {
		fmt.Printf("Notes:         %s\n", t.Notes)
	}
	if t.Screenshot != "" {
		fmt.Printf("Screenshot:    %s\n", t.Screenshot)
	}
	fmt.Printf("Created:       %s\n", t.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Updated:       %s\n", t.UpdatedAt.Format(time.RFC3339))
}
