package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rustyeddy/tradebook/pkg/id"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Copy the ledger database",
	Long: `Copy the database file to the backup directory under a ULID name.
Backups taken over time sort lexically by creation time.`,
	Args: cobra.NoArgs,
	RunE: runBackup,
}

var backupDir string

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.Flags().StringVarP(&backupDir, "dir", "d", "", "backup directory (config default if unset)")
}

func runBackup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := backupDir
	if dir == "" {
		dir = cfg.Backup.Dir
	}
	dst := filepath.Join(dir, "tradebook-"+id.New()+".db")

	src, err := os.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create backup: %w", err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("copy database: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close backup: %w", err)
	}

	fmt.Printf("backed up %s to %s\n", cfg.Database.Path, dst)
	return nil
}
