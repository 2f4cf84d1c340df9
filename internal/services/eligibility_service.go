package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure EligibilityServiceImpl implements EligibilityService
var _ EligibilityService = (*EligibilityServiceImpl)(nil)

// EligibilityServiceImpl is the admin override layer: bonus-spin grants and
// single-use forced wins.
type EligibilityServiceImpl struct {
	eligibilityRepo repositories.EligibilityRepository
	ticketRepo      repositories.TicketRepository
	prizeRepo       repositories.PrizeRepository
}

// NewEligibilityService creates a new EligibilityServiceImpl
func NewEligibilityService(
	eligibilityRepo repositories.EligibilityRepository,
	ticketRepo repositories.TicketRepository,
	prizeRepo repositories.PrizeRepository,
) *EligibilityServiceImpl {
	return &EligibilityServiceImpl{
		eligibilityRepo: eligibilityRepo,
		ticketRepo:      ticketRepo,
		prizeRepo:       prizeRepo,
	}
}

// GrantBonusSpins records the grant and credits the tickets. Repeated grants
// accumulate on the existing record instead of overwriting it.
func (s *EligibilityServiceImpl) GrantBonusSpins(ctx context.Context, account string, count int64, reason string, expiresAt *time.Time, grantedBy string) (*models.EligibilityGrant, error) {
	if account == "" {
		return nil, fmt.Errorf("%w: account is required", ErrInvalidInput)
	}
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive", ErrInvalidInput)
	}
	if expiresAt != nil && expiresAt.Before(time.Now().UTC()) {
		return nil, fmt.Errorf("%w: expiry is in the past", ErrInvalidInput)
	}

	grant, err := s.eligibilityRepo.UpsertGrant(ctx, account, count, reason, expiresAt, grantedBy)
	if err != nil {
		return nil, fmt.Errorf("failed to record eligibility grant: %w", err)
	}

	if _, err := s.ticketRepo.Grant(ctx, account, count, models.TicketSourceAdminGrant); err != nil {
		slog.Error("Grant recorded but ticket credit failed, manual reconciliation needed",
			"error", err, "account", account, "count", count)
		return nil, fmt.Errorf("grant recorded but ticket credit failed: %w", err)
	}

	slog.Info("Bonus spins granted", "account", account, "count", count, "grantedBy", grantedBy, "reason", reason)
	return grant, nil
}

// RevokeEligibility deletes the account's grant record. Tickets already
// credited stay with the account.
func (s *EligibilityServiceImpl) RevokeEligibility(ctx context.Context, account string) error {
	if err := s.eligibilityRepo.DeleteGrant(ctx, account); err != nil {
		return fmt.Errorf("failed to revoke eligibility: %w", err)
	}
	slog.Info("Eligibility revoked", "account", account)
	return nil
}

// ForceNextWin rigs the account's next spin to the given prize. The stored
// override is single-use; the spin that applies it also clears it.
func (s *EligibilityServiceImpl) ForceNextWin(ctx context.Context, account string, prizeID primitive.ObjectID, setBy string) error {
	if account == "" {
		return fmt.Errorf("%w: account is required", ErrInvalidInput)
	}

	if _, err := s.prizeRepo.FindByID(ctx, prizeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("%w: prize %s does not exist", ErrInvalidInput, prizeID.Hex())
		}
		return fmt.Errorf("failed to verify prize: %w", err)
	}

	if err := s.eligibilityRepo.SetForcedWin(ctx, account, prizeID, setBy); err != nil {
		return fmt.Errorf("failed to set forced win: %w", err)
	}
	slog.Warn("Forced win set", "account", account, "prizeId", prizeID.Hex(), "setBy", setBy)
	return nil
}

// SweepExpiredGrants removes grants whose expiry has passed. Run periodically
// from the scheduler; tickets already credited are not clawed back.
func (s *EligibilityServiceImpl) SweepExpiredGrants(ctx context.Context) (int64, error) {
	removed, err := s.eligibilityRepo.DeleteExpiredGrants(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired grants: %w", err)
	}
	if removed > 0 {
		slog.Info("Swept expired eligibility grants", "removed", removed)
	}
	return removed, nil
}
