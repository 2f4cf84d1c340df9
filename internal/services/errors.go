package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/luxemods/economy-backend/internal/repositories"
)

// Service-level sentinel errors. Store sentinels (insufficient funds, no
// tickets, unavailable) pass through from the repositories package; these
// cover outcomes only the orchestration layer can decide.
var (
	// ErrNoPrizesAvailable means the active catalog is empty, so a spin
	// cannot even start.
	ErrNoPrizesAvailable = errors.New("no prizes available")

	// ErrSpinsDisabled means an admin has switched the wheel off.
	ErrSpinsDisabled = errors.New("spin wheel is disabled")

	// ErrInvalidInput covers rejected request parameters (non-positive
	// amounts, unknown kinds, bad prize definitions).
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned on failed admin login.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// InsufficientFundsError carries the numbers the caller needs to render an
// actionable message. errors.Is matches repositories.ErrInsufficientFunds.
type InsufficientFundsError struct {
	Required  int64
	Available int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: required %d, available %d", e.Required, e.Available)
}

func (e *InsufficientFundsError) Unwrap() error {
	return repositories.ErrInsufficientFunds
}

// AlreadyClaimedError reports a duplicate daily claim together with the next
// UTC midnight at which the account becomes eligible again. errors.Is matches
// repositories.ErrDuplicateClaim.
type AlreadyClaimedError struct {
	NextEligibleAt time.Time
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("daily reward already claimed, next eligible at %s", e.NextEligibleAt.Format(time.RFC3339))
}

func (e *AlreadyClaimedError) Unwrap() error {
	return repositories.ErrDuplicateClaim
}
