package repositories

import (
	"context"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WalletRepository is the ledger store: an append-only log of coin movements
// plus the materialized balance. Credit and Debit append an entry and adjust
// the balance as one atomic unit; the balance is never written without a
// matching entry.
type WalletRepository interface {
	// Credit appends a positive entry and increases the balance. Amount must
	// be > 0 (validated by the service layer).
	Credit(ctx context.Context, account string, amount int64, kind models.LedgerKind, description string) (*models.LedgerEntry, error)

	// Debit appends a negative entry and decreases the balance. The balance
	// check and decrement are one conditional operation; under concurrent
	// debits the balance can never go below zero. Returns
	// ErrInsufficientFunds or ErrAccountNotFound.
	Debit(ctx context.Context, account string, amount int64, kind models.LedgerKind, description string) (*models.LedgerEntry, error)

	// GetBalance returns the current balance, 0 for unknown accounts.
	GetBalance(ctx context.Context, account string) (int64, error)

	// FindEntriesByAccount returns ledger entries newest first.
	FindEntriesByAccount(ctx context.Context, account string, page, limit int) ([]*models.LedgerEntry, error)
}

// TicketRepository is the durable spins-remaining counter per account.
type TicketRepository interface {
	// Grant atomically adds count tickets and returns the new remaining total.
	Grant(ctx context.Context, account string, count int64, source models.TicketSource) (int64, error)

	// ConsumeOne atomically decrements remaining by 1 only if remaining >= 1.
	// Returns ErrNoTickets otherwise; two concurrent calls against a count of
	// 1 yield exactly one success.
	ConsumeOne(ctx context.Context, account string) error

	// GetRemaining returns the spins remaining, 0 for unknown accounts.
	GetRemaining(ctx context.Context, account string) (int64, error)
}

// DailyClaimRepository stores one claim record per account per UTC day.
type DailyClaimRepository interface {
	// Create inserts the record. The store enforces uniqueness on
	// (account, claimDate) and returns ErrDuplicateClaim on conflict; this is
	// the concurrency gate for the daily claim.
	Create(ctx context.Context, record *models.DailyClaimRecord) error

	// FindByAccountAndDate returns the record for that day, or ErrNotFound.
	FindByAccountAndDate(ctx context.Context, account, claimDate string) (*models.DailyClaimRecord, error)
}

// PrizeRepository manages the wheel's prize catalog.
type PrizeRepository interface {
	Create(ctx context.Context, prize *models.Prize) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Prize, error)
	// FindActive returns active prizes in stable catalog order (insertion
	// order), so a given random draw always lands on the same prize.
	FindActive(ctx context.Context) ([]*models.Prize, error)
	FindAll(ctx context.Context) ([]*models.Prize, error)
	Update(ctx context.Context, prize *models.Prize) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// WheelSettingsRepository holds the singleton wheel settings document.
type WheelSettingsRepository interface {
	GetSettings(ctx context.Context) (*models.WheelSettings, error)
	UpdateSettings(ctx context.Context, settings *models.WheelSettings) error
}

// SpinHistoryRepository is the append-only spin audit log.
type SpinHistoryRepository interface {
	Create(ctx context.Context, record *models.SpinHistoryRecord) error
	FindByAccount(ctx context.Context, account string, page, limit int) ([]*models.SpinHistoryRecord, error)
	CountByAccount(ctx context.Context, account string) (int64, error)
}

// EligibilityRepository stores admin bonus-spin grants and single-use forced
// wins.
type EligibilityRepository interface {
	// UpsertGrant adds count to the account's outstanding grant (creating the
	// row if absent) and refreshes reason/expiry. Returns the updated grant.
	UpsertGrant(ctx context.Context, account string, count int64, reason string, expiresAt *time.Time, grantedBy string) (*models.EligibilityGrant, error)

	FindGrant(ctx context.Context, account string) (*models.EligibilityGrant, error)

	// DeleteGrant removes the account's grant row. Deleting a missing row is
	// not an error.
	DeleteGrant(ctx context.Context, account string) error

	// DeleteExpiredGrants removes grant rows whose expiry is before now and
	// returns how many were removed.
	DeleteExpiredGrants(ctx context.Context, now time.Time) (int64, error)

	// SetForcedWin records the prize the account's next spin must land on,
	// replacing any previous override for that account.
	SetForcedWin(ctx context.Context, account string, prizeID primitive.ObjectID, setBy string) error

	// PopForcedWin atomically fetches and deletes the account's forced win so
	// it applies to exactly one spin. Returns ErrNotFound when none is set.
	PopForcedWin(ctx context.Context, account string) (*models.ForcedWin, error)
}

// AdminUserRepository stores operators of the admin surface.
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
}
