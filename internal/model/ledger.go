// Package model implements the observable expense ledger at the core of
// outlay: an ordered transaction sequence, the positions most recently
// matched by an external filter, and the listeners notified on every state
// change.
package model

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the failure kind for every rejected input. A
// rejected call never mutates the ledger, so there are no partial updates
// to recover from.
var ErrInvalidArgument = errors.New("invalid argument")

// Listener is notified synchronously whenever the ledger's state changes.
//
// Update runs inline on the goroutine performing the mutation, in
// registration order. The ledger does not guard against panics raised by a
// listener; each listener owns its own failure policy.
type Listener interface {
	Update(l *Ledger)
}

// Ledger is the observable expense model. It owns the transaction sequence
// and the matched filter positions; both are reachable from outside only as
// copies, so no caller can mutate internal state behind the ledger's back.
//
// Matched filter positions are transient: they are validated against the
// transaction sequence when set and cleared by any change to that sequence,
// because positions computed against the old sequence may no longer point
// at the transactions they matched.
//
// A Ledger is not safe for concurrent use. All methods are expected to run
// on a single goroutine; callers sharing a Ledger across goroutines must
// synchronize externally.
type Ledger struct {
	transactions   []Transaction
	matchedIndices []int
	listeners      []Listener
}

// NewLedger returns an empty ledger: no transactions, no matched filter
// positions, no listeners.
func NewLedger() *Ledger {
	return &Ledger{
		transactions:   make([]Transaction, 0),
		matchedIndices: make([]int, 0),
		listeners:      make([]Listener, 0),
	}
}

// AddTransaction appends a copy of t to the ledger, clears the matched
// filter positions, and notifies listeners.
//
// Returns ErrInvalidArgument when t is nil; the ledger is left unchanged.
func (l *Ledger) AddTransaction(t *Transaction) error {
	if t == nil {
		return fmt.Errorf("%w: transaction must be non-nil", ErrInvalidArgument)
	}
	l.transactions = append(l.transactions, *t)
	// The previous filter was computed against the old sequence.
	l.matchedIndices = l.matchedIndices[:0]
	l.stateChanged()
	return nil
}

// RemoveTransaction removes the first transaction equal to t, going by
// Transaction.Equal. When t is nil or no entry matches, the sequence is
// untouched, but the matched filter positions are still cleared and
// listeners still notified, exactly as for a successful removal.
func (l *Ledger) RemoveTransaction(t *Transaction) {
	if t != nil {
		for i, txn := range l.transactions {
			if txn.Equal(*t) {
				l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
				break
			}
		}
	}
	// The previous filter was computed against the old sequence.
	l.matchedIndices = l.matchedIndices[:0]
	l.stateChanged()
}

// Transactions returns an independent copy of the transaction sequence in
// insertion order. Mutating the returned slice does not affect the ledger.
func (l *Ledger) Transactions() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// SetMatchedFilterIndices replaces the matched filter positions with an
// independent copy of indices, preserving order and duplicates, and
// notifies listeners.
//
// Returns ErrInvalidArgument when indices is nil, or when any element lies
// outside [0, n) for the current transaction count n. Validation runs
// against the whole input before anything is stored, so a rejected call
// leaves the previous positions in place. An empty non-nil slice is valid
// and clears the positions.
func (l *Ledger) SetMatchedFilterIndices(indices []int) error {
	if indices == nil {
		return fmt.Errorf("%w: matched filter indices must be non-nil", ErrInvalidArgument)
	}
	for _, idx := range indices {
		if idx < 0 || idx > len(l.transactions)-1 {
			return fmt.Errorf("%w: matched filter index %d out of range [0, %d)",
				ErrInvalidArgument, idx, len(l.transactions))
		}
	}
	l.matchedIndices = make([]int, len(indices))
	copy(l.matchedIndices, indices)
	l.stateChanged()
	return nil
}

// MatchedFilterIndices returns an independent copy of the matched filter
// positions in the order they were set.
func (l *Ledger) MatchedFilterIndices() []int {
	out := make([]int, len(l.matchedIndices))
	copy(out, l.matchedIndices)
	return out
}

// Register adds listener to the notification list. It reports false without
// effect when listener is nil or already registered; otherwise the listener
// is appended and true is returned. Notification happens in registration
// order.
//
// Listeners are compared by interface equality, so registered values must
// be comparable; in practice, pointers.
func (l *Ledger) Register(listener Listener) bool {
	if listener == nil {
		return false
	}
	if l.ContainsListener(listener) {
		return false
	}
	l.listeners = append(l.listeners, listener)
	return true
}

// ListenerCount returns the number of registered listeners.
func (l *Ledger) ListenerCount() int {
	return len(l.listeners)
}

// ContainsListener reports whether listener is currently registered. A nil
// listener is never registered.
func (l *Ledger) ContainsListener(listener Listener) bool {
	if listener == nil {
		return false
	}
	for _, registered := range l.listeners {
		if registered == listener {
			return true
		}
	}
	return false
}

// stateChanged pushes the current state to every listener, in registration
// order, on the calling goroutine.
func (l *Ledger) stateChanged() {
	for _, listener := range l.listeners {
		listener.Update(l)
	}
}
