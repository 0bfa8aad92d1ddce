package ledger

import (
	"sort"
	"strings"
)

// Criteria selects, orders and pages a ledger snapshot. Zero values mean
// "inactive": an empty Search matches everything, an empty or "all" Pair
// matches every pair, empty date bounds are unbounded. SortBy defaults to
// "date", SortDir to "desc", Page below 1 is treated as page 1. PageSize
// must be positive.
type Criteria struct {
	Search    string
	Pair      string
	Status    string // "all", "win" or "loss"
	StartDate string // inclusive
	EndDate   string // inclusive
	SortBy    string // "date", "pair" or "profit"
	SortDir   string // "asc" or "desc"
	Page      int    // 1-based
	PageSize  int
}

// QueryResult is one page of a filtered, sorted snapshot. Total counts the
// whole filtered sequence, not just this page.
type QueryResult struct {
	Items []Trade
	Total int
}

// Query applies filter, stable sort and pagination to a snapshot. It is a
// pure function: the input slice is never modified and no I/O happens
// here. A page past the end yields empty Items, not an error.
func Query(records []Trade, c Criteria) (QueryResult, error) {
	if c.PageSize <= 0 {
		return QueryResult{}, &ValidationError{Field: "pageSize", Reason: "must be positive"}
	}
	page := c.Page
	if page < 1 {
		page = 1
	}

	filtered := filterTrades(records, c)
	sortTrades(filtered, c.SortBy, c.SortDir)

	total := len(filtered)
	start := (page - 1) * c.PageSize
	if start > total {
		start = total
	}
	end := start + c.PageSize
	if end > total {
		end = total
	}
	return QueryResult{Items: filtered[start:end], Total: total}, nil
}

// filterTrades keeps records satisfying every active predicate. Date
// handling is deliberately lenient: a record whose date does not parse
// fails any active bound, and a bound that itself does not parse fails
// everything. Malformed data narrows results, it never raises.
func filterTrades(records []Trade, c Criteria) []Trade {
	q := strings.ToLower(strings.TrimSpace(c.Search))
	wantPair := c.Pair != "" && c.Pair != "all"

	hasStart := c.StartDate != ""
	hasEnd := c.EndDate != ""
	start, startOK := ParseDate(c.StartDate)
	end, endOK := ParseDate(c.EndDate)

	out := make([]Trade, 0, len(records))
	for _, t := range records {
		if q != "" {
			hay := strings.ToLower(t.Pair + " " + t.Notes + " " + string(t.Side))
			if !strings.Contains(hay, q) {
				continue
			}
		}
		if wantPair && t.Pair != c.Pair {
			continue
		}
		switch c.Status {
		case "", "all":
		case "win":
			if !t.Win() {
				continue
			}
		default: // "loss"
			if t.Win() {
				continue
			}
		}
		if hasStart || hasEnd {
			when, ok := ParseDate(t.Date)
			if hasStart && (!ok || !startOK || when.Before(start)) {
				continue
			}
			if hasEnd && (!ok || !endOK || when.After(end)) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func sortTrades(list []Trade, by, dir string) {
	var less func(a, b Trade) bool
	switch by {
	case "pair":
		less = func(a, b Trade) bool { return a.Pair < b.Pair }
	case "profit":
		less = func(a, b Trade) bool { return a.Profit < b.Profit }
	default: // "date", compared as timestamps, not text
		less = func(a, b Trade) bool {
			at, aok := ParseDate(a.Date)
			bt, bok := ParseDate(b.Date)
			if !aok || !bok {
				// unparseable dates compare equal to everything;
				// the stable sort keeps their filtered position
				return false
			}
			return at.Before(bt)
		}
	}

	desc := dir != "asc"
	sort.SliceStable(list, func(i, j int) bool {
		if desc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
}
