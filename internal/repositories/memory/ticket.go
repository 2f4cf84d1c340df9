package memory

import (
	"context"
	"sync"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
)

// Compile-time check to ensure TicketRepository implements the interface
var _ repositories.TicketRepository = (*TicketRepository)(nil)

// TicketRepository is the in-memory spins-remaining counter
type TicketRepository struct {
	mu        sync.Mutex
	remaining map[string]int64
}

// NewTicketRepository creates an empty in-memory ticket store
func NewTicketRepository() *TicketRepository {
	return &TicketRepository{
		remaining: make(map[string]int64),
	}
}

// Grant atomically adds count tickets and returns the new remaining total
func (r *TicketRepository) Grant(_ context.Context, account string, count int64, _ models.TicketSource) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.remaining[account] += count
	return r.remaining[account], nil
}

// ConsumeOne decrements remaining by 1 only when at least one ticket is left
func (r *TicketRepository) ConsumeOne(_ context.Context, account string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.remaining[account] < 1 {
		return repositories.ErrNoTickets
	}
	r.remaining[account]--
	return nil
}

// GetRemaining returns the spins remaining, 0 for unknown accounts
func (r *TicketRepository) GetRemaining(_ context.Context, account string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining[account], nil
}
