package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Inspect and edit metadata entries",
	Long: `Read and write the metadata key-value store.

The engine imposes no semantics on these entries; clients (such as the
UI's session/lockout state) own their own keys.

Examples:
  tradebook meta get session_role
  tradebook meta set login_attempts 5
  tradebook meta del session_role`,
}

var metaGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value stored under a key",
	Args:  cobra.ExactArgs(1),
	RunE:  runMetaGet,
}

var metaSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a value under a key",
	Long:  `Store a value under a key. The value is parsed as JSON when possible and kept as a plain string otherwise.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runMetaSet,
}

var metaDelCmd = &cobra.Command{
	Use:   "del <key>",
	Short: "Clear a key",
	Args:  cobra.ExactArgs(1),
	RunE:  runMetaDel,
}

func init() {
	rootCmd.AddCommand(metaCmd)
	metaCmd.AddCommand(metaGetCmd)
	metaCmd.AddCommand(metaSetCmd)
	metaCmd.AddCommand(metaDelCmd)
}

func runMetaGet(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	v, ok, err := st.MetaGet(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("meta get: %w", err)
	}
	if !ok {
		return fmt.Errorf("meta key %q not set", args[0])
	}

	fmt.Printf("%v\n", v)
	return nil
}

func runMetaSet(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	key, raw := args[0], args[1]

	// numbers, booleans and JSON structures pass through as themselves;
	// anything else is a string
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}

	if err := st.MetaSet(cmd.Context(), key, value); err != nil {
		return fmt.Errorf("meta set: %w", err)
	}

	fmt.Printf("set %s\n", key)
	return nil
}

func runMetaDel(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.MetaSet(cmd.Context(), args[0], nil); err != nil {
		return fmt.Errorf("meta del: %w", err)
	}

	fmt.Printf("cleared %s\n", args[0])
	return nil
}
