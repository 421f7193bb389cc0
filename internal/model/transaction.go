package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Transaction is a single expense entry. The ledger treats transactions as
// opaque values: nothing in this package interprets the fields beyond Equal,
// which removal uses to locate an entry.
type Transaction struct {
	Date     time.Time
	ID       string // caller-assigned; the CLI mints UUIDs
	Note     string // free-text description of the expense
	Category string
	Amount   float64
}

// Equal reports whether two transactions carry the same entry. This is the
// equality removal goes by.
func (t Transaction) Equal(other Transaction) bool {
	return t.ID == other.ID &&
		t.Date.Equal(other.Date) &&
		t.Note == other.Note &&
		t.Category == other.Category &&
		t.Amount == other.Amount
}

// Validate checks that a transaction is well-formed input. Callers run this
// before handing a transaction to the ledger; the ledger itself only rejects
// nil.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: transaction ID is required", ErrInvalidArgument)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: transaction date is required", ErrInvalidArgument)
	}
	if strings.TrimSpace(t.Category) == "" {
		return fmt.Errorf("%w: transaction category is required", ErrInvalidArgument)
	}
	if math.IsNaN(t.Amount) || math.IsInf(t.Amount, 0) {
		return fmt.Errorf("%w: transaction amount must be a finite number", ErrInvalidArgument)
	}
	if t.Amount <= 0 {
		return fmt.Errorf("%w: transaction amount must be positive, got %.2f", ErrInvalidArgument, t.Amount)
	}
	return nil
}
