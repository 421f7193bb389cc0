package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outlay/internal/model"
)

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }

func day(d int) time.Time {
	return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
}

// Fixture: four transactions spanning categories, amounts, and dates.
func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{ID: "t0", Date: day(1), Note: "Farmers market", Category: "groceries", Amount: 23.40},
		{ID: "t1", Date: day(5), Note: "Monthly metro pass", Category: "transport", Amount: 62.00},
		{ID: "t2", Date: day(9), Note: "corner market run", Category: "groceries", Amount: 8.75},
		{ID: "t3", Date: day(20), Note: "Birthday dinner", Category: "dining", Amount: 84.10},
	}
}

func TestMatchingIndices(t *testing.T) {
	txns := sampleTransactions()

	tests := []struct {
		filter Filter
		name   string
		want   []int
	}{
		{
			name:   "category match is case-insensitive",
			filter: Category{Name: "Groceries"},
			want:   []int{0, 2},
		},
		{
			name:   "amount range with both bounds",
			filter: AmountRange{Min: floatPtr(10), Max: floatPtr(70)},
			want:   []int{0, 1},
		},
		{
			name:   "amount range open below",
			filter: AmountRange{Max: floatPtr(9)},
			want:   []int{2},
		},
		{
			name:   "amount range open above",
			filter: AmountRange{Min: floatPtr(60)},
			want:   []int{1, 3},
		},
		{
			name:   "amount bounds are inclusive",
			filter: AmountRange{Min: floatPtr(8.75), Max: floatPtr(8.75)},
			want:   []int{2},
		},
		{
			name:   "date range keeps inside days",
			filter: DateRange{From: timePtr(day(2)), To: timePtr(day(10))},
			want:   []int{1, 2},
		},
		{
			name:   "date range open-ended from",
			filter: DateRange{From: timePtr(day(9))},
			want:   []int{2, 3},
		},
		{
			name:   "text match ignores case",
			filter: Text{Contains: "MARKET"},
			want:   []int{0, 2},
		},
		{
			name:   "conjunction narrows",
			filter: All(Category{Name: "groceries"}, AmountRange{Min: floatPtr(10)}),
			want:   []int{0},
		},
		{
			name:   "empty conjunction matches everything",
			filter: All(),
			want:   []int{0, 1, 2, 3},
		},
		{
			name:   "nil filter matches everything",
			filter: nil,
			want:   []int{0, 1, 2, 3},
		},
		{
			name:   "no matches yields empty, not nil",
			filter: Category{Name: "utilities"},
			want:   []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchingIndices(txns, tt.filter)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The whole point of the package: its output is always accepted by the
// ledger the snapshot came from.
func TestMatchingIndices_FeedsLedger(t *testing.T) {
	ledger := model.NewLedger()
	for _, txn := range sampleTransactions() {
		require.NoError(t, ledger.AddTransaction(&txn))
	}

	indices := MatchingIndices(ledger.Transactions(), Category{Name: "groceries"})
	require.NoError(t, ledger.SetMatchedFilterIndices(indices))
	assert.Equal(t, []int{0, 2}, ledger.MatchedFilterIndices())

	// Even an empty result is a valid filter state.
	indices = MatchingIndices(ledger.Transactions(), Category{Name: "utilities"})
	require.NoError(t, ledger.SetMatchedFilterIndices(indices))
	assert.Empty(t, ledger.MatchedFilterIndices())
}

func TestMatchingIndices_EmptySequence(t *testing.T) {
	got := MatchingIndices(nil, Category{Name: "groceries"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}
