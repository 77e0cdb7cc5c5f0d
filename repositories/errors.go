package repositories

import "errors"

var (
	// ErrNotFound is returned by lookups with no matching record.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyUsed is returned by ConsumeCode when the compare-and-set on
	// the code's used flag loses to a concurrent redemption.
	ErrAlreadyUsed = errors.New("pairing code already used")
)
