package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture returns an unsorted snapshot with deliberate variety: mixed
// pairs, sides, profit signs, a zero-profit record and one malformed date.
func fixture() []Trade {
	return []Trade{
		{ID: 1, Date: "2024-01-10T09:00", Pair: "BTC/USDT", Side: Long, Profit: 100, Notes: "breakout"},
		{ID: 2, Date: "2024-01-12T15:30", Pair: "ETH/USDT", Side: Short, Profit: -20, Notes: "fakeout"},
		{ID: 3, Date: "2024-01-11T11:00", Pair: "BTC/USDT", Side: Long, Profit: 0, Notes: "scratch"},
		{ID: 4, Date: "not-a-date", Pair: "SOL/USDT", Side: Short, Profit: 35, Notes: "rotation"},
		{ID: 5, Date: "2024-01-14T08:45", Pair: "ETH/USDT", Side: Long, Profit: 60, Notes: "trend day"},
	}
}

func ids(list []Trade) []int64 {
	out := make([]int64, 0, len(list))
	for _, t := range list {
		out = append(out, t.ID)
	}
	return out
}

func TestQueryDefaultSortDateDesc(t *testing.T) {
	t.Parallel()

	records := []Trade{
		{ID: 1, Date: "2024-01-10T09:00", Profit: 100},
		{ID: 2, Date: "2024-01-12T15:30", Profit: -20},
		{ID: 3, Date: "2024-01-11T11:00", Profit: 0},
		{ID: 5, Date: "2024-01-14T08:45", Profit: 60},
	}

	// no SortBy/SortDir: newest first
	res, err := Query(records, Criteria{PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 4, res.Total)
	assert.Equal(t, []int64{5, 2, 3, 1}, ids(res.Items))
}

func TestQueryUnparseableDateStillListed(t *testing.T) {
	t.Parallel()

	// with no date bound active, a malformed date never hides a record
	res, err := Query(fixture(), Criteria{PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, 5, res.Total)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5}, ids(res.Items))
}

func TestQuerySearchIsCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		search string
		want   []int64
	}{
		{"matches pair", "btc", []int64{1, 3}},
		{"matches notes", "TREND", []int64{5}},
		{"matches side", "short", []int64{2, 4}},
		{"empty matches everything", "", []int64{1, 2, 3, 4, 5}},
		{"no hit", "xrp", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Query(fixture(), Criteria{Search: tt.search, PageSize: 10})
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, res.Items)
			} else {
				assert.ElementsMatch(t, tt.want, ids(res.Items))
			}
		})
	}
}

func TestQueryPairFilter(t *testing.T) {
	t.Parallel()

	res, err := Query(fixture(), Criteria{Pair: "ETH/USDT", PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 2}, ids(res.Items))

	res, err = Query(fixture(), Criteria{Pair: "all", PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
}

func TestQueryStatusZeroProfitIsLoss(t *testing.T) {
	t.Parallel()

	wins, err := Query(fixture(), Criteria{Status: "win", SortBy: "profit", SortDir: "asc", PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 5, 1}, ids(wins.Items))

	losses, err := Query(fixture(), Criteria{Status: "loss", SortBy: "profit", SortDir: "asc", PageSize: 10})
	require.NoError(t, err)
	// id 3 has profit 0: a loss, never a win
	assert.Equal(t, []int64{2, 3}, ids(losses.Items))
}

func TestQueryDateBounds(t *testing.T) {
	t.Parallel()

	// inclusive bounds; the record with the malformed date fails any
	// active bound
	res, err := Query(fixture(), Criteria{
		StartDate: "2024-01-11",
		EndDate:   "2024-01-12T15:30",
		PageSize:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, ids(res.Items))

	// open-ended start
	res, err = Query(fixture(), Criteria{StartDate: "2024-01-12", PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 2}, ids(res.Items))

	// a bound that does not parse fails everything, silently
	res, err = Query(fixture(), Criteria{StartDate: "soon", PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 0, res.Total)
}

func TestQuerySortProfitReversal(t *testing.T) {
	t.Parallel()

	// drop the zero-profit tie candidate so the sequences are strict
	records := []Trade{
		{ID: 1, Date: "2024-01-10", Profit: 100},
		{ID: 2, Date: "2024-01-11", Profit: -20},
		{ID: 3, Date: "2024-01-12", Profit: 35},
	}

	asc, err := Query(records, Criteria{SortBy: "profit", SortDir: "asc", PageSize: 10})
	require.NoError(t, err)
	desc, err := Query(records, Criteria{SortBy: "profit", SortDir: "desc", PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 3, 1}, ids(asc.Items))
	assert.Equal(t, []int64{1, 3, 2}, ids(desc.Items))
}

func TestQuerySortIsStable(t *testing.T) {
	t.Parallel()

	records := []Trade{
		{ID: 1, Date: "2024-01-10", Pair: "BTC/USDT", Profit: 50},
		{ID: 2, Date: "2024-01-10", Pair: "ETH/USDT", Profit: 50},
		{ID: 3, Date: "2024-01-10", Pair: "SOL/USDT", Profit: 50},
	}

	for _, dir := range []string{"asc", "desc"} {
		res, err := Query(records, Criteria{SortBy: "profit", SortDir: dir, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2, 3}, ids(res.Items), "equal keys must keep input order (%s)", dir)
	}
}

func TestQuerySortByPair(t *testing.T) {
	t.Parallel()

	res, err := Query(fixture(), Criteria{SortBy: "pair", SortDir: "asc", PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 2, 5, 4}, ids(res.Items))
}

func TestQueryPaginationPartition(t *testing.T) {
	t.Parallel()

	records := fixture()
	full, err := Query(records, Criteria{SortBy: "profit", SortDir: "asc", PageSize: 100})
	require.NoError(t, err)

	var stitched []int64
	for page := 1; ; page++ {
		res, err := Query(records, Criteria{SortBy: "profit", SortDir: "asc", Page: page, PageSize: 2})
		require.NoError(t, err)
		if len(res.Items) == 0 {
			break
		}
		assert.Equal(t, full.Total, res.Total)
		stitched = append(stitched, ids(res.Items)...)
	}
	assert.Equal(t, ids(full.Items), stitched)
}

func TestQueryPageBeyondEnd(t *testing.T) {
	t.Parallel()

	res, err := Query(fixture(), Criteria{Page: 42, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, res.Items)
	assert.Equal(t, 5, res.Total)
}

func TestQueryPageSizeMustBePositive(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1} {
		_, err := Query(fixture(), Criteria{PageSize: size})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "pageSize", verr.Field)
	}
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	records := fixture()
	_, err := Query(records, Criteria{SortBy: "profit", SortDir: "asc", PageSize: 10})
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(records))
}
