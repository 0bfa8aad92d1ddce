package ledger

import (
	"database/sql"
	"math"
	"time"
)

// Side of a position.
type Side string

const (
	Long  Side = "Long"
	Short Side = "Short"
)

// Trade is one recorded position entry/exit with its caller-derived P/L.
//
// Date is kept as the caller-supplied text and parsed lazily: historical
// records may carry malformed timestamps, and those must not break
// browsing or aggregation. Profit and ROI are computed by the caller at
// write time and stored as given; the store never recomputes them, so a
// record keeps the value produced by whatever formula was current when it
// was written.
type Trade struct {
	ID         int64
	Date       string
	Pair       string
	Side       Side
	Entry      float64
	Exit       float64
	Size       float64
	Leverage   float64
	TakeProfit sql.NullFloat64
	StopLoss   sql.NullFloat64
	Notes      string
	Screenshot string
	Profit     float64
	ROI        float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Win reports the win/loss classification. Zero profit is a loss.
func (t Trade) Win() bool { return t.Profit > 0 }

// TradeInput is a Trade before the store has assigned identity and
// timestamps.
type TradeInput struct {
	Date       string
	Pair       string
	Side       Side
	Entry      float64
	Exit       float64
	Size       float64
	Leverage   float64
	TakeProfit sql.NullFloat64
	StopLoss   sql.NullFloat64
	Notes      string
	Screenshot string
	Profit     float64
	ROI        float64
}

func (in TradeInput) validate() error {
	if in.Date == "" {
		return &ValidationError{Field: "date", Reason: "required"}
	}
	if in.Pair == "" {
		return &ValidationError{Field: "pair", Reason: "required"}
	}
	switch in.Side {
	case "", Long, Short:
	default:
		return &ValidationError{Field: "side", Reason: "must be Long or Short"}
	}
	return nil
}

// TradePatch is a partial update. A nil field leaves the stored value
// unchanged. For the nullable columns a present NullFloat64 with
// Valid=false writes NULL, so clearing is expressible. There are no ID or
// CreatedAt fields: those cannot be patched.
type TradePatch struct {
	Date       *string
	Pair       *string
	Side       *Side
	Entry      *float64
	Exit       *float64
	Size       *float64
	Leverage   *float64
	TakeProfit *sql.NullFloat64
	StopLoss   *sql.NullFloat64
	Notes      *string
	Screenshot *string
	Profit     *float64
	ROI        *float64
}

func (p TradePatch) apply(t *Trade) {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Pair != nil {
		t.Pair = *p.Pair
	}
	if p.Side != nil {
		t.Side = *p.Side
	}
	if p.Entry != nil {
		t.Entry = *p.Entry
	}
	if p.Exit != nil {
		t.Exit = *p.Exit
	}
	if p.Size != nil {
		t.Size = *p.Size
	}
	if p.Leverage != nil {
		t.Leverage = *p.Leverage
	}
	if p.TakeProfit != nil {
		t.TakeProfit = *p.TakeProfit
	}
	if p.StopLoss != nil {
		t.StopLoss = *p.StopLoss
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Screenshot != nil {
		t.Screenshot = *p.Screenshot
	}
	if p.Profit != nil {
		t.Profit = *p.Profit
	}
	if p.ROI != nil {
		t.ROI = *p.ROI
	}
}

// dateLayouts are the timestamp forms observed in ledger data: RFC3339
// from programmatic writers, the two datetime-local shapes from form
// input, and bare dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate parses a ledger timestamp. ok is false for malformed values;
// callers decide whether that excludes the record or merely leaves its
// order untouched.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ComputePL derives profit and ROI (percent) for a closed position. It is
// a convenience for callers of Create/Update; the store itself persists
// whatever profit/roi it is handed.
func ComputePL(side Side, entry, exit, size, leverage float64) (profit, roi float64) {
	if leverage <= 0 {
		leverage = 1
	}
	dir := 1.0
	if side == Short {
		dir = -1
	}
	profit = (exit - entry) * size * leverage * dir
	if entry*size != 0 {
		roi = profit / (entry * size) * 100
	}
	return round2(profit), round2(roi)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
