package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"github.com/luxemods/economy-backend/internal/utils"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure DailyRewardServiceImpl implements DailyRewardService
var _ DailyRewardService = (*DailyRewardServiceImpl)(nil)

// DailyRewardServiceImpl handles the once-per-day claim with streak bonuses.
// The claim-record insert, not a lock, is what makes the flow idempotent: the
// store refuses a second record for the same (account, day).
type DailyRewardServiceImpl struct {
	claimRepo       repositories.DailyClaimRepository
	ticketRepo      repositories.TicketRepository
	walletRepo      repositories.WalletRepository
	dailyCoinReward int64
}

// NewDailyRewardService creates a new DailyRewardServiceImpl
func NewDailyRewardService(
	claimRepo repositories.DailyClaimRepository,
	ticketRepo repositories.TicketRepository,
	walletRepo repositories.WalletRepository,
	dailyCoinReward int64,
) *DailyRewardServiceImpl {
	return &DailyRewardServiceImpl{
		claimRepo:       claimRepo,
		ticketRepo:      ticketRepo,
		walletRepo:      walletRepo,
		dailyCoinReward: dailyCoinReward,
	}
}

// Claim performs the daily claim for the UTC calendar day of `now`. The
// caller threads the clock in explicitly so the whole flow sees one
// consistent day.
func (s *DailyRewardServiceImpl) Claim(ctx context.Context, account string, now time.Time) (*models.ClaimResult, error) {
	if account == "" {
		return nil, fmt.Errorf("%w: account is required", ErrInvalidInput)
	}

	today := utils.UTCDateString(now)

	if _, err := s.claimRepo.FindByAccountAndDate(ctx, account, today); err == nil {
		return nil, &AlreadyClaimedError{NextEligibleAt: utils.NextUTCMidnight(now)}
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check today's claim: %w", err)
	}

	streak := 1
	previous, err := s.claimRepo.FindByAccountAndDate(ctx, account, utils.PreviousUTCDateString(now))
	if err == nil {
		streak = previous.Streak + 1
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check yesterday's claim: %w", err)
	}

	tickets := TicketsForStreak(streak)
	record := &models.DailyClaimRecord{
		Account:        account,
		ClaimDate:      today,
		Streak:         streak,
		TicketsGranted: tickets,
		CoinsGranted:   s.dailyCoinReward,
	}

	// The insert is the concurrency gate: of two simultaneous claims exactly
	// one passes the unique constraint.
	if err := s.claimRepo.Create(ctx, record); err != nil {
		if errors.Is(err, repositories.ErrDuplicateClaim) {
			return nil, &AlreadyClaimedError{NextEligibleAt: utils.NextUTCMidnight(now)}
		}
		return nil, fmt.Errorf("failed to record daily claim: %w", err)
	}

	remaining, err := s.ticketRepo.Grant(ctx, account, int64(tickets), models.TicketSourceDailyClaim)
	if err != nil {
		// The claim is recorded but the tickets were not granted; report with
		// the recorded streak so support can reconcile, never auto-delete the
		// record.
		slog.Error("Daily claim recorded but ticket grant failed, manual reconciliation needed",
			"error", err, "account", account, "date", today, "streak", streak, "tickets", tickets)
		return nil, fmt.Errorf("claim recorded but ticket grant failed: %w", err)
	}

	if s.dailyCoinReward > 0 {
		if _, err := s.walletRepo.Credit(ctx, account, s.dailyCoinReward, models.LedgerKindDailyClaim,
			fmt.Sprintf("Daily reward, streak %d", streak)); err != nil {
			slog.Error("Daily claim recorded but coin credit failed, manual reconciliation needed",
				"error", err, "account", account, "date", today, "streak", streak)
			return nil, fmt.Errorf("claim recorded but coin credit failed: %w", err)
		}
	}

	slog.Info("Daily reward claimed", "account", account, "date", today, "streak", streak, "tickets", tickets)
	return &models.ClaimResult{
		Streak:           streak,
		TicketsGranted:   tickets,
		CoinsGranted:     s.dailyCoinReward,
		TicketsRemaining: remaining,
		NextEligibleAt:   utils.NextUTCMidnight(now),
	}, nil
}

// TicketsForStreak maps a streak length to the bonus tickets granted that
// day. The table is monotonic: a longer streak never grants fewer tickets.
func TicketsForStreak(streak int) int {
	switch {
	case streak >= 7:
		return 3
	case streak >= 3:
		return 2
	default:
		return 1
	}
}
