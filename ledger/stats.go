package ledger

import (
	"math"
	"sort"
)

// Stats is the portfolio-level summary over a full snapshot.
type Stats struct {
	TotalTrades int
	WinRate     float64 // percent, 2 decimals; 0 when empty
	TotalPL     float64 // 2 decimals
	AvgROI      float64 // 2 decimals; 0 when empty
	BestPair    string  // "" when no record has a pair
	WorstPair   string
	Timeline    []DayProfit
}

// DayProfit is one calendar day (UTC) of aggregated profit.
type DayProfit struct {
	Date   string // YYYY-MM-DD
	Profit float64
}

// ComputeStats aggregates a snapshot in two passes: global sums, then
// pair and per-day grouping. It recomputes from scratch on every call; at
// ledger scale (thousands of records) a full pass costs nothing worth
// caching.
//
// Records with an unparseable date are excluded from the timeline only;
// they still count toward every other aggregate. Ties for best/worst pair
// go to the pair encountered first in input order.
func ComputeStats(records []Trade) Stats {
	st := Stats{
		TotalTrades: len(records),
		Timeline:    []DayProfit{},
	}

	wins := 0
	var totalPL, totalROI float64
	for _, t := range records {
		if t.Win() {
			wins++
		}
		totalPL += t.Profit
		totalROI += t.ROI
	}
	st.TotalPL = round2(totalPL)
	if st.TotalTrades > 0 {
		st.WinRate = round2(float64(wins) / float64(st.TotalTrades) * 100)
		st.AvgROI = round2(totalROI / float64(st.TotalTrades))
	}

	// Group by pair and by day. pairOrder fixes the iteration order so
	// tie-breaks stay deterministic; raw map order would not.
	pairSum := make(map[string]float64)
	var pairOrder []string
	daySum := make(map[string]float64)
	for _, t := range records {
		if t.Pair != "" {
			if _, seen := pairSum[t.Pair]; !seen {
				pairOrder = append(pairOrder, t.Pair)
			}
			pairSum[t.Pair] += t.Profit
		}
		if when, ok := ParseDate(t.Date); ok {
			daySum[when.UTC().Format("2006-01-02")] += t.Profit
		}
	}

	best, worst := math.Inf(-1), math.Inf(1)
	for _, p := range pairOrder {
		v := pairSum[p]
		if v > best {
			best, st.BestPair = v, p
		}
		if v < worst {
			worst, st.WorstPair = v, p
		}
	}

	days := make([]string, 0, len(daySum))
	for d := range daySum {
		days = append(days, d)
	}
	sort.Strings(days)
	for _, d := range days {
		st.Timeline = append(st.Timeline, DayProfit{Date: d, Profit: daySum[d]})
	}

	return st
}
