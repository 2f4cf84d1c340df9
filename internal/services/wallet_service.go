package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// Compile-time check to ensure WalletServiceImpl implements WalletService
var _ WalletService = (*WalletServiceImpl)(nil)

// WalletServiceImpl handles coin balance and ledger business logic
type WalletServiceImpl struct {
	walletRepo repositories.WalletRepository
}

// NewWalletService creates a new WalletServiceImpl
func NewWalletService(walletRepo repositories.WalletRepository) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
	}
}

// Credit adds coins to an account
func (s *WalletServiceImpl) Credit(ctx context.Context, account string, amount int64, kind models.LedgerKind, description string) (*models.LedgerEntry, error) {
	if err := validateMovement(account, amount, kind); err != nil {
		return nil, err
	}

	entry, err := s.walletRepo.Credit(ctx, account, amount, kind, description)
	if err != nil {
		slog.Error("Failed to credit account", "error", err, "account", account, "amount", amount, "kind", kind)
		return nil, fmt.Errorf("failed to credit account: %w", err)
	}
	slog.Info("Credited account", "account", account, "amount", amount, "kind", kind)
	return entry, nil
}

// Debit removes coins from an account. On a short balance it returns an
// InsufficientFundsError carrying the required and available amounts.
func (s *WalletServiceImpl) Debit(ctx context.Context, account string, amount int64, kind models.LedgerKind, description string) (*models.LedgerEntry, error) {
	if err := validateMovement(account, amount, kind); err != nil {
		return nil, err
	}

	entry, err := s.walletRepo.Debit(ctx, account, amount, kind, description)
	if err != nil {
		if errors.Is(err, repositories.ErrInsufficientFunds) {
			available, balErr := s.walletRepo.GetBalance(ctx, account)
			if balErr != nil {
				slog.Warn("Failed to read balance for insufficient-funds detail", "error", balErr, "account", account)
			}
			return nil, &InsufficientFundsError{Required: amount, Available: available}
		}
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, err
		}
		slog.Error("Failed to debit account", "error", err, "account", account, "amount", amount, "kind", kind)
		return nil, fmt.Errorf("failed to debit account: %w", err)
	}
	slog.Info("Debited account", "account", account, "amount", amount, "kind", kind)
	return entry, nil
}

// GetBalance retrieves the account's current coin balance
func (s *WalletServiceImpl) GetBalance(ctx context.Context, account string) (int64, error) {
	return s.walletRepo.GetBalance(ctx, account)
}

// GetLedger retrieves the account's coin movements, newest first
func (s *WalletServiceImpl) GetLedger(ctx context.Context, account string, page, limit int) ([]*models.LedgerEntry, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.walletRepo.FindEntriesByAccount(ctx, account, page, limit)
}

func validateMovement(account string, amount int64, kind models.LedgerKind) error {
	if account == "" {
		return fmt.Errorf("%w: account is required", ErrInvalidInput)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if !models.ValidLedgerKind(kind) {
		return fmt.Errorf("%w: unknown ledger kind %q", ErrInvalidInput, kind)
	}
	return nil
}
