package ledger

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// csvHeader fixes the export column order. Screenshot is deliberately
// absent: it is an opaque blob reference, not tabular data.
var csvHeader = []string{
	"id", "date", "pair", "side", "entry", "exit", "size", "leverage",
	"takeProfit", "stopLoss", "notes", "profit", "roi", "createdAt", "updatedAt",
}

// ExportCSV serializes a snapshot: header row, then one row per record in
// input order. Callers wanting a deterministic export order sort first.
//
// String fields are always double-quoted with internal quotes doubled;
// numeric fields are bare and NULLs are empty. encoding/csv quotes only
// when forced to, which would leave plain strings bare, so the quoting is
// done here.
func ExportCSV(records []Trade) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))

	for _, t := range records {
		row := []string{
			strconv.FormatInt(t.ID, 10),
			csvQuote(t.Date),
			csvQuote(t.Pair),
			csvQuote(string(t.Side)),
			csvNum(t.Entry),
			csvNum(t.Exit),
			csvNum(t.Size),
			csvNum(t.Leverage),
			csvNullable(t.TakeProfit),
			csvNullable(t.StopLoss),
			csvQuote(t.Notes),
			csvNum(t.Profit),
			csvNum(t.ROI),
			csvQuote(t.CreatedAt.UTC().Format(time.RFC3339)),
			csvQuote(t.UpdatedAt.UTC().Format(time.RFC3339)),
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, ","))
	}
	return b.String()
}

func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func csvNum(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func csvNullable(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return csvNum(v.Float64)
}
