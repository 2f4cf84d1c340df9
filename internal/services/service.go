package services

import (
	"context"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WalletService defines the interface for coin balance and ledger operations
type WalletService interface {
	// Credit adds coins to an account, appending a ledger entry
	Credit(ctx context.Context, account string, amount int64, kind models.LedgerKind, description string) (*models.LedgerEntry, error)

	// Debit removes coins from an account, failing when the balance is short
	Debit(ctx context.Context, account string, amount int64, kind models.LedgerKind, description string) (*models.LedgerEntry, error)

	// GetBalance retrieves the account's current coin balance
	GetBalance(ctx context.Context, account string) (int64, error)

	// GetLedger retrieves the account's coin movements, newest first
	GetLedger(ctx context.Context, account string, page, limit int) ([]*models.LedgerEntry, error)
}

// SpinService defines the interface for spin-wheel operations
type SpinService interface {
	// Spin consumes one ticket, draws a prize, records history, and credits
	// the reward
	Spin(ctx context.Context, account string) (*models.SpinResult, error)

	// ListActivePrizes retrieves the prizes currently on the wheel
	ListActivePrizes(ctx context.Context) ([]*models.Prize, error)

	// GetHistory retrieves the account's spin history, newest first
	GetHistory(ctx context.Context, account string, page, limit int) ([]*models.SpinHistoryRecord, error)

	// GetRemaining retrieves the account's spins remaining
	GetRemaining(ctx context.Context, account string) (int64, error)
}

// DailyRewardService defines the interface for the daily claim flow
type DailyRewardService interface {
	// Claim performs the idempotent daily claim for the UTC day of `now`
	Claim(ctx context.Context, account string, now time.Time) (*models.ClaimResult, error)
}

// EligibilityService defines the interface for the admin override layer
type EligibilityService interface {
	// GrantBonusSpins adds bonus spins to an account and records the grant
	GrantBonusSpins(ctx context.Context, account string, count int64, reason string, expiresAt *time.Time, grantedBy string) (*models.EligibilityGrant, error)

	// RevokeEligibility deletes the account's grant record
	RevokeEligibility(ctx context.Context, account string) error

	// ForceNextWin rigs the account's next spin to the given prize
	ForceNextWin(ctx context.Context, account string, prizeID primitive.ObjectID, setBy string) error

	// SweepExpiredGrants removes grants whose expiry has passed
	SweepExpiredGrants(ctx context.Context) (int64, error)
}

// PrizeService defines the interface for catalog and settings management
type PrizeService interface {
	CreatePrize(ctx context.Context, prize *models.Prize) error
	UpdatePrize(ctx context.Context, prize *models.Prize) error
	DeletePrize(ctx context.Context, id primitive.ObjectID) error
	ListPrizes(ctx context.Context) ([]*models.Prize, error)
	GetSettings(ctx context.Context) (*models.WheelSettings, error)
	UpdateSettings(ctx context.Context, settings *models.WheelSettings) error
}

// AuthService defines the interface for admin authentication
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AdminUser, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, error) // Returns JWT token
}
