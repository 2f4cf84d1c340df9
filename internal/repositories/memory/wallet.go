package memory

import (
	"context"
	"sync"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure WalletRepository implements the interface
var _ repositories.WalletRepository = (*WalletRepository)(nil)

// WalletRepository is the in-memory ledger store. The mutex plays the role of
// the database's conditional update: balance check, decrement, and entry
// append happen under one lock.
type WalletRepository struct {
	mu       sync.Mutex
	balances map[string]int64
	entries  []*models.LedgerEntry
}

// NewWalletRepository creates an empty in-memory wallet store
func NewWalletRepository() *WalletRepository {
	return &WalletRepository{
		balances: make(map[string]int64),
	}
}

// Credit appends a positive entry and increases the balance
func (r *WalletRepository) Credit(_ context.Context, account string, amount int64, kind models.LedgerKind, description string) (*models.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := newEntry(account, amount, kind, description)
	r.balances[account] += amount
	r.entries = append(r.entries, entry)
	return entry, nil
}

// Debit appends a negative entry and decreases the balance, refusing to go
// below zero.
func (r *WalletRepository) Debit(_ context.Context, account string, amount int64, kind models.LedgerKind, description string) (*models.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balance, ok := r.balances[account]
	if !ok {
		return nil, repositories.ErrAccountNotFound
	}
	if balance < amount {
		return nil, repositories.ErrInsufficientFunds
	}

	entry := newEntry(account, -amount, kind, description)
	r.balances[account] = balance - amount
	r.entries = append(r.entries, entry)
	return entry, nil
}

// GetBalance returns the current balance, 0 for unknown accounts
func (r *WalletRepository) GetBalance(_ context.Context, account string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.balances[account], nil
}

// FindEntriesByAccount returns ledger entries newest first
func (r *WalletRepository) FindEntriesByAccount(_ context.Context, account string, page, limit int) ([]*models.LedgerEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*models.LedgerEntry
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].Account == account {
			matched = append(matched, r.entries[i])
		}
	}
	return paginate(matched, page, limit), nil
}

func newEntry(account string, amount int64, kind models.LedgerKind, description string) *models.LedgerEntry {
	return &models.LedgerEntry{
		ID:          primitive.NewObjectID(),
		Account:     account,
		Amount:      amount,
		Kind:        kind,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
