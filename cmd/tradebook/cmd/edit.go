package cmd

import (
	"database/sql"
	"fmt"

	"github.com/rustyeddy/tradebook/ledger"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Modify a recorded trade",
	Long: `Patch fields of an existing trade. Only flags you pass are applied;
everything else keeps its stored value.

When any of entry/exit/size/leverage/side changes, P/L and ROI are
recomputed from the merged values and written as part of the same patch.
Pass --take-profit 0 or --stop-loss 0 to clear those fields.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var (
	editDate       string
	editPair       string
	editSide       string
	editEntry      float64
	editExit       float64
	editSize       float64
	editLeverage   float64
	editTakeProfit float64
	editStopLoss   float64
	editNotes      string
	editScreenshot string
)

func init() {
	rootCmd.AddCommand(editCmd)

	f := editCmd.Flags()
	f.StringVar(&editDate, "date", "", "execution time")
	f.StringVar(&editPair, "pair", "", "instrument pair")
	f.StringVar(&editSide, "side", "", "position side: Long or Short")
	f.Float64Var(&editEntry, "entry", 0, "entry price")
	f.Float64Var(&editExit, "exit", 0, "exit price")
	f.Float64Var(&editSize, "size", 0, "position size")
	f.Float64Var(&editLeverage, "leverage", 0, "leverage multiple")
	f.Float64Var(&editTakeProfit, "take-profit", 0, "take-profit price, 0 clears")
	f.Float64Var(&editStopLoss, "stop-loss", 0, "stop-loss price, 0 clears")
	f.StringVar(&editNotes, "notes", "", "free-text notes")
	f.StringVar(&editScreenshot, "screenshot", "", "screenshot path or URI")
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	current, ok, err := st.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}
	if !ok {
		return fmt.Errorf("trade %d not found", id)
	}

	var patch ledger.TradePatch
	recompute := false

	flags := cmd.Flags()
	if flags.Changed("date") {
		patch.Date = &editDate
	}
	if flags.Changed("pair") {
		patch.Pair = &editPair
	}
	if flags.Changed("side") {
		side := ledger.Side(editSide)
		patch.Side = &side
		current.Side = side
		recompute = true
	}
	if flags.Changed("entry") {
		patch.Entry = &editEntry
		current.Entry = editEntry
		recompute = true
	}
	if flags.Changed("exit") {
		patch.Exit = &editExit
		current.Exit = editExit
		recompute = true
	}
	if flags.Changed("size") {
		patch.Size = &editSize
		current.Size = editSize
		recompute = true
	}
	if flags.Changed("leverage") {
		patch.Leverage = &editLeverage
		current.Leverage = editLeverage
		recompute = true
	}
	if flags.Changed("take-profit") {
		patch.TakeProfit = &sql.NullFloat64{Float64: editTakeProfit, Valid: editTakeProfit != 0}
	}
	if flags.Changed("stop-loss") {
		patch.StopLoss = &sql.NullFloat64{Float64: editStopLoss, Valid: editStopLoss != 0}
	}
	if flags.Changed("notes") {
		patch.Notes = &editNotes
	}
	if flags.Changed("screenshot") {
		patch.Screenshot = &editScreenshot
	}

	if recompute {
		profit, roi := ledger.ComputePL(current.Side, current.Entry, current.Exit,
			current.Size, current.Leverage)
		patch.Profit = &profit
		patch.ROI = &roi
	}

	updated, err := st.Update(cmd.Context(), id, patch)
	if err != nil {
		return fmt.Errorf("update trade: %w", err)
	}

	fmt.Printf("updated trade %d: %s %s, P/L %.2f, ROI %.2f%%\n",
		updated.ID, updated.Pair, updated.Side, updated.Profit, updated.ROI)
	return nil
}
