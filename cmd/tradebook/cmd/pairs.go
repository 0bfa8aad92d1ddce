package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "List known instrument pairs",
	Long:  `List the distinct pairs observed across all trades, oldest first.`,
	Args:  cobra.NoArgs,
	RunE:  runPairs,
}

func init() {
	rootCmd.AddCommand(pairsCmd)
}

func runPairs(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	pairs, err := st.Pairs(cmd.Context())
	if err != nil {
		return fmt.Errorf("list pairs: %w", err)
	}

	for _, p := range pairs {
		fmt.Println(p)
	}
	return nil
}
