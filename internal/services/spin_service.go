package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"github.com/luxemods/economy-backend/internal/wheel"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure SpinServiceImpl implements SpinService
var _ SpinService = (*SpinServiceImpl)(nil)

// SpinServiceImpl orchestrates one spin: ticket consumption, the weighted
// draw, history recording, and reward crediting.
type SpinServiceImpl struct {
	prizeRepo       repositories.PrizeRepository
	settingsRepo    repositories.WheelSettingsRepository
	ticketRepo      repositories.TicketRepository
	walletRepo      repositories.WalletRepository
	historyRepo     repositories.SpinHistoryRepository
	eligibilityRepo repositories.EligibilityRepository
	random          wheel.RandFunc
}

// NewSpinService creates a new SpinServiceImpl using the default random source
func NewSpinService(
	prizeRepo repositories.PrizeRepository,
	settingsRepo repositories.WheelSettingsRepository,
	ticketRepo repositories.TicketRepository,
	walletRepo repositories.WalletRepository,
	historyRepo repositories.SpinHistoryRepository,
	eligibilityRepo repositories.EligibilityRepository,
) *SpinServiceImpl {
	source := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &SpinServiceImpl{
		prizeRepo:       prizeRepo,
		settingsRepo:    settingsRepo,
		ticketRepo:      ticketRepo,
		walletRepo:      walletRepo,
		historyRepo:     historyRepo,
		eligibilityRepo: eligibilityRepo,
		random:          source.Float64,
	}
}

// SetRandom swaps the random source, used to pin draws in tests
func (s *SpinServiceImpl) SetRandom(random wheel.RandFunc) {
	s.random = random
}

// Spin runs the spin state machine. The ticket consumption is the first
// mutation: when it fails nothing else has happened. After it succeeds the
// ticket is spent regardless of later failures; a reward-crediting failure is
// reported for manual reconciliation, never retried, since retrying a
// non-idempotent credit risks paying a prize twice.
func (s *SpinServiceImpl) Spin(ctx context.Context, account string) (*models.SpinResult, error) {
	if account == "" {
		return nil, fmt.Errorf("%w: account is required", ErrInvalidInput)
	}

	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load wheel settings: %w", err)
	}
	if !settings.Enabled {
		return nil, ErrSpinsDisabled
	}

	prizes, err := s.prizeRepo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load prize catalog: %w", err)
	}
	if len(prizes) == 0 {
		return nil, ErrNoPrizesAvailable
	}

	if err := s.ticketRepo.ConsumeOne(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrNoTickets) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to consume ticket: %w", err)
	}

	forcedID, forced := s.popForcedWin(ctx, account)

	prize, err := wheel.Draw(prizes, forcedID, s.random)
	if err != nil {
		// Ticket already spent; surface the gap instead of guessing at a refund.
		slog.Error("Draw failed after ticket consumption, manual reconciliation needed",
			"error", err, "account", account)
		return nil, fmt.Errorf("draw failed after ticket was consumed: %w", err)
	}

	// The override only counts as applied when the drawn prize is the one it
	// named; a stale override pointing at a deactivated prize falls back to a
	// normal weighted draw.
	forced = forced && prize.ID == forcedID

	record := &models.SpinHistoryRecord{
		Account:    account,
		PrizeID:    prize.ID,
		PrizeName:  prize.Name,
		PrizeType:  prize.Type,
		PrizeValue: prize.Value,
		Forced:     forced,
	}
	if err := s.historyRepo.Create(ctx, record); err != nil {
		slog.Error("Failed to record spin history, manual reconciliation needed",
			"error", err, "account", account, "prize", prize.Name)
		return nil, fmt.Errorf("failed to record spin: %w", err)
	}

	if err := s.creditReward(ctx, account, prize); err != nil {
		slog.Error("Ticket spent but reward crediting failed, manual reconciliation needed",
			"error", err, "account", account, "prize", prize.Name, "prizeType", prize.Type)
		return nil, fmt.Errorf("reward crediting failed after ticket was consumed: %w", err)
	}

	balance, err := s.walletRepo.GetBalance(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}
	remaining, err := s.ticketRepo.GetRemaining(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to read tickets: %w", err)
	}

	slog.Info("Spin completed", "account", account, "prize", prize.Name, "prizeType", prize.Type, "forced", forced)
	return &models.SpinResult{
		Prize:            *prize,
		Balance:          balance,
		TicketsRemaining: remaining,
	}, nil
}

// creditReward applies the prize payout. The switch is exhaustive over the
// prize types; cosmetic prizes only exist in the history record.
func (s *SpinServiceImpl) creditReward(ctx context.Context, account string, prize *models.Prize) error {
	switch prize.Type {
	case models.PrizeTypeCoins:
		_, err := s.walletRepo.Credit(ctx, account, prize.Value, models.LedgerKindSpinWheel,
			fmt.Sprintf("Spin wheel prize: %s", prize.Name))
		return err
	case models.PrizeTypeTicket:
		_, err := s.ticketRepo.Grant(ctx, account, 1, models.TicketSourceReward)
		return err
	case models.PrizeTypeCosmetic:
		return nil
	default:
		return fmt.Errorf("%w: unknown prize type %q", ErrInvalidInput, prize.Type)
	}
}

// popForcedWin consumes a pending forced-win override, if any. A store error
// here downgrades to a normal weighted spin rather than blocking the player.
func (s *SpinServiceImpl) popForcedWin(ctx context.Context, account string) (primitive.ObjectID, bool) {
	forcedWin, err := s.eligibilityRepo.PopForcedWin(ctx, account)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			slog.Warn("Failed to check forced win, continuing unforced", "error", err, "account", account)
		}
		return primitive.NilObjectID, false
	}
	return forcedWin.PrizeID, true
}

// ListActivePrizes retrieves the prizes currently on the wheel
func (s *SpinServiceImpl) ListActivePrizes(ctx context.Context) ([]*models.Prize, error) {
	return s.prizeRepo.FindActive(ctx)
}

// GetHistory retrieves the account's spin history, newest first
func (s *SpinServiceImpl) GetHistory(ctx context.Context, account string, page, limit int) ([]*models.SpinHistoryRecord, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.historyRepo.FindByAccount(ctx, account, page, limit)
}

// GetRemaining retrieves the account's spins remaining
func (s *SpinServiceImpl) GetRemaining(ctx context.Context, account string) (int64, error) {
	return s.ticketRepo.GetRemaining(ctx, account)
}
