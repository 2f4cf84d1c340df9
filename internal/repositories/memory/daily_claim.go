package memory

import (
	"context"
	"sync"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure DailyClaimRepository implements the interface
var _ repositories.DailyClaimRepository = (*DailyClaimRepository)(nil)

// DailyClaimRepository is the in-memory daily-claim store. The map keyed by
// (account, claimDate) stands in for the unique index: the presence check and
// the insert happen under one lock, so concurrent claims for the same day
// collapse to a single success.
type DailyClaimRepository struct {
	mu      sync.Mutex
	records map[string]*models.DailyClaimRecord
}

// NewDailyClaimRepository creates an empty in-memory daily-claim store
func NewDailyClaimRepository() *DailyClaimRepository {
	return &DailyClaimRepository{
		records: make(map[string]*models.DailyClaimRecord),
	}
}

// Create inserts the record, failing with ErrDuplicateClaim when the account
// already claimed that day.
func (r *DailyClaimRepository) Create(_ context.Context, record *models.DailyClaimRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := claimKey(record.Account, record.ClaimDate)
	if _, exists := r.records[key]; exists {
		return repositories.ErrDuplicateClaim
	}
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now().UTC()
	stored := *record
	r.records[key] = &stored
	return nil
}

// FindByAccountAndDate returns the claim record for one UTC day
func (r *DailyClaimRepository) FindByAccountAndDate(_ context.Context, account, claimDate string) (*models.DailyClaimRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.records[claimKey(account, claimDate)]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	found := *record
	return &found, nil
}

func claimKey(account, claimDate string) string {
	return account + "|" + claimDate
}
