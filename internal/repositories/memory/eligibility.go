package memory

import (
	"context"
	"sync"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure EligibilityRepository implements the interface
var _ repositories.EligibilityRepository = (*EligibilityRepository)(nil)

// EligibilityRepository is the in-memory store for bonus-spin grants and
// forced-win overrides.
type EligibilityRepository struct {
	mu     sync.Mutex
	grants map[string]*models.EligibilityGrant
	forced map[string]*models.ForcedWin
}

// NewEligibilityRepository creates an empty in-memory eligibility store
func NewEligibilityRepository() *EligibilityRepository {
	return &EligibilityRepository{
		grants: make(map[string]*models.EligibilityGrant),
		forced: make(map[string]*models.ForcedWin),
	}
}

// UpsertGrant adds count to the account's outstanding spins, creating the
// grant when absent. Repeated grants accumulate.
func (r *EligibilityRepository) UpsertGrant(_ context.Context, account string, count int64, reason string, expiresAt *time.Time, grantedBy string) (*models.EligibilityGrant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	grant, ok := r.grants[account]
	if !ok {
		grant = &models.EligibilityGrant{
			ID:        primitive.NewObjectID(),
			Account:   account,
			CreatedAt: now,
		}
		r.grants[account] = grant
	}
	grant.SpinsRemaining += count
	grant.Reason = reason
	grant.GrantedBy = grantedBy
	grant.UpdatedAt = now
	if expiresAt != nil {
		grant.ExpiresAt = expiresAt
	}
	found := *grant
	return &found, nil
}

// FindGrant returns the account's grant, or ErrNotFound
func (r *EligibilityRepository) FindGrant(_ context.Context, account string) (*models.EligibilityGrant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	grant, ok := r.grants[account]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	found := *grant
	return &found, nil
}

// DeleteGrant removes the account's grant row
func (r *EligibilityRepository) DeleteGrant(_ context.Context, account string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.grants, account)
	return nil
}

// DeleteExpiredGrants removes grants whose expiry has passed
func (r *EligibilityRepository) DeleteExpiredGrants(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for account, grant := range r.grants {
		if grant.ExpiresAt != nil && grant.ExpiresAt.Before(now) {
			delete(r.grants, account)
			removed++
		}
	}
	return removed, nil
}

// SetForcedWin replaces the account's pending forced win
func (r *EligibilityRepository) SetForcedWin(_ context.Context, account string, prizeID primitive.ObjectID, setBy string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.forced[account] = &models.ForcedWin{
		ID:        primitive.NewObjectID(),
		Account:   account,
		PrizeID:   prizeID,
		SetBy:     setBy,
		CreatedAt: time.Now().UTC(),
	}
	return nil
}

// PopForcedWin fetches and removes the pending forced win in one step
func (r *EligibilityRepository) PopForcedWin(_ context.Context, account string) (*models.ForcedWin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	forced, ok := r.forced[account]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	delete(r.forced, account)
	found := *forced
	return &found, nil
}
