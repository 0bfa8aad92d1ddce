package cmd

import (
	"fmt"

	"github.com/rustyeddy/tradebook/ledger"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse the ledger",
	Long: `Filter, sort and page through recorded trades.

Examples:
  tradebook list --pair BTC/USDT --status win
  tradebook list --search breakout --sort profit --dir asc
  tradebook list --start 2024-01-01 --end 2024-01-31 --page 2`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listSearch   string
	listPair     string
	listStatus   string
	listStart    string
	listEnd      string
	listSort     string
	listDir      string
	listPage     int
	listPageSize int
)

func init() {
	rootCmd.AddCommand(listCmd)

	f := listCmd.Flags()
	f.StringVar(&listSearch, "search", "", "substring match on pair, notes and side")
	f.StringVar(&listPair, "pair", "all", "exact pair, or 'all'")
	f.StringVar(&listStatus, "status", "all", "all, win or loss")
	f.StringVar(&listStart, "start", "", "inclusive start date")
	f.StringVar(&listEnd, "end", "", "inclusive end date")
	f.StringVar(&listSort, "sort", "date", "sort key: date, pair or profit")
	f.StringVar(&listDir, "dir", "desc", "sort direction: asc or desc")
	f.IntVar(&listPage, "page", 1, "page number (1-based)")
	f.IntVar(&listPageSize, "page-size", 0, "records per page (config default if unset)")
}

func runList(cmd *cobra.Command, args []string) error {
	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.ListAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	size := listPageSize
	if !cmd.Flags().Changed("page-size") {
		size = cfg.Query.PageSize
	}

	res, err := ledger.Query(records, ledger.Criteria{
		Search:    listSearch,
		Pair:      listPair,
		Status:    listStatus,
		StartDate: listStart,
		EndDate:   listEnd,
		SortBy:    listSort,
		SortDir:   listDir,
		Page:      listPage,
		PageSize:  size,
	})
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}

	fmt.Printf("%-6s %-18s %-12s %-6s %12s %9s %10s\n",
		"ID", "DATE", "PAIR", "SIDE", "P/L", "ROI%", "SIZE")
	for _, t := range res.Items {
		fmt.Printf("%-6d %-18s %-12s %-6s %12.2f %9.2f %10g\n",
			t.ID, t.Date, t.Pair, t.Side, t.Profit, t.ROI, t.Size)
	}
	fmt.Printf("\npage %d: %d of %d trades\n", listPage, len(res.Items), res.Total)
	return nil
}
