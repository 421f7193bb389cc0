// Package filter computes which positions of a transaction sequence match a
// set of criteria. It is the ledger's external filtering collaborator: it
// never mutates the ledger, it only produces index sets that callers hand to
// Ledger.SetMatchedFilterIndices.
package filter

import (
	"strings"
	"time"

	"outlay/internal/model"
)

// Filter decides whether a single transaction matches.
type Filter interface {
	Matches(t model.Transaction) bool
}

// Category matches transactions whose category equals Name, ignoring case.
type Category struct {
	Name string
}

// Matches implements Filter.
func (c Category) Matches(t model.Transaction) bool {
	return strings.EqualFold(t.Category, c.Name)
}

// AmountRange matches transactions whose amount lies inside the inclusive
// [Min, Max] bounds. A nil bound leaves that side open.
type AmountRange struct {
	Min *float64
	Max *float64
}

// Matches implements Filter.
func (r AmountRange) Matches(t model.Transaction) bool {
	if r.Min != nil && t.Amount < *r.Min {
		return false
	}
	if r.Max != nil && t.Amount > *r.Max {
		return false
	}
	return true
}

// DateRange matches transactions dated inside the inclusive [From, To]
// bounds. A nil bound leaves that side open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Matches implements Filter.
func (r DateRange) Matches(t model.Transaction) bool {
	if r.From != nil && t.Date.Before(*r.From) {
		return false
	}
	if r.To != nil && t.Date.After(*r.To) {
		return false
	}
	return true
}

// Text matches transactions whose note contains Contains, ignoring case.
type Text struct {
	Contains string
}

// Matches implements Filter.
func (x Text) Matches(t model.Transaction) bool {
	return strings.Contains(strings.ToLower(t.Note), strings.ToLower(x.Contains))
}

// All returns the conjunction of filters: a transaction matches when every
// filter matches it. With no filters, everything matches.
func All(filters ...Filter) Filter {
	return conjunction(filters)
}

type conjunction []Filter

func (c conjunction) Matches(t model.Transaction) bool {
	for _, f := range c {
		if !f.Matches(t) {
			return false
		}
	}
	return true
}

// MatchingIndices returns the positions in txns matched by f, in ascending
// order. A nil filter matches every transaction. The result is never nil,
// so it is always a legal argument to Ledger.SetMatchedFilterIndices.
func MatchingIndices(txns []model.Transaction, f Filter) []int {
	indices := make([]int, 0, len(txns))
	for i, txn := range txns {
		if f != nil && !f.Matches(txn) {
			continue
		}
		indices = append(indices, i)
	}
	return indices
}
