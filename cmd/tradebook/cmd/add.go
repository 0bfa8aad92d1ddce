package cmd

import (
	"database/sql"
	"fmt"

	"github.com/rustyeddy/tradebook/ledger"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new trade",
	Long: `Record a closed position in the ledger.

Profit and ROI are computed here, at write time, from entry/exit/size/
leverage/side and stored with the record.

Example:
  tradebook add --date 2024-01-15T14:30 --pair BTC/USDT --side Long \
    --entry 42000 --exit 43000 --size 0.5 --leverage 2 --notes "breakout retest"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addDate       string
	addPair       string
	addSide       string
	addEntry      float64
	addExit       float64
	addSize       float64
	addLeverage   float64
	addTakeProfit float64
	addStopLoss   float64
	addNotes      string
	addScreenshot string
)

func init() {
	rootCmd.AddCommand(addCmd)

	f := addCmd.Flags()
	f.StringVar(&addDate, "date", "", "execution time, e.g. 2024-01-15T14:30")
	f.StringVar(&addPair, "pair", "", "instrument pair, e.g. BTC/USDT")
	f.StringVar(&addSide, "side", "Long", "position side: Long or Short")
	f.Float64Var(&addEntry, "entry", 0, "entry price")
	f.Float64Var(&addExit, "exit", 0, "exit price")
	f.Float64Var(&addSize, "size", 0, "position size")
	f.Float64Var(&addLeverage, "leverage", 1, "leverage multiple")
	f.Float64Var(&addTakeProfit, "take-profit", 0, "take-profit price (optional)")
	f.Float64Var(&addStopLoss, "stop-loss", 0, "stop-loss price (optional)")
	f.StringVar(&addNotes, "notes", "", "free-text notes")
	f.StringVar(&addScreenshot, "screenshot", "", "screenshot path or URI (optional)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	in := ledger.TradeInput{
		Date:       addDate,
		Pair:       addPair,
		Side:       ledger.Side(addSide),
		Entry:      addEntry,
		Exit:       addExit,
		Size:       addSize,
		Leverage:   addLeverage,
		Notes:      addNotes,
		Screenshot: addScreenshot,
	}
	if cmd.Flags().Changed("take-profit") {
		in.TakeProfit = sql.NullFloat64{Float64: addTakeProfit, Valid: true}
	}
	if cmd.Flags().Changed("stop-loss") {
		in.StopLoss = sql.NullFloat64{Float64: addStopLoss, Valid: true}
	}
	in.Profit, in.ROI = ledger.ComputePL(in.Side, in.Entry, in.Exit, in.Size, in.Leverage)

	t, err := st.Create(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("create trade: %w", err)
	}

	fmt.Printf("recorded trade %d: %s %s, P/L %.2f, ROI %.2f%%\n",
		t.ID, t.Pair, t.Side, t.Profit, t.ROI)
	return nil
}
