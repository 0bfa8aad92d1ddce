package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a trade",
	Long:  `Delete a trade by id. Deleting an id that does not exist is not an error.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Delete(cmd.Context(), id); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	fmt.Printf("deleted trade %d\n", id)
	return nil
}
