package repositories

import "errors"

// Store-level sentinel errors. Services wrap these with caller-facing detail;
// implementations must return them (possibly wrapped) so errors.Is works
// across drivers.
var (
	// ErrInsufficientFunds is returned by Debit when the balance is lower
	// than the requested amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNoTickets is returned by ConsumeOne when the account has no spins
	// remaining.
	ErrNoTickets = errors.New("no tickets available")

	// ErrDuplicateClaim is returned by the daily-claim insert when a record
	// for the same (account, claimDate) already exists.
	ErrDuplicateClaim = errors.New("daily claim already recorded")

	// ErrAccountNotFound is returned when an operation requires an existing
	// account row and none exists.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNotFound is returned for missing documents (prizes, grants, admins).
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an insert collides with an existing
	// unique document, e.g. a duplicate admin email.
	ErrConflict = errors.New("already exists")

	// ErrUnavailable wraps transient infrastructure failures. Callers may
	// retry reads; orchestrators must not retry non-idempotent writes.
	ErrUnavailable = errors.New("store unavailable")
)
