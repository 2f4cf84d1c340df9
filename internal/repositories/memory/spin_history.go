package memory

import (
	"context"
	"sync"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure SpinHistoryRepository implements the interface
var _ repositories.SpinHistoryRepository = (*SpinHistoryRepository)(nil)

// SpinHistoryRepository is the in-memory spin audit log
type SpinHistoryRepository struct {
	mu      sync.Mutex
	records []*models.SpinHistoryRecord
}

// NewSpinHistoryRepository creates an empty in-memory spin history store
func NewSpinHistoryRepository() *SpinHistoryRepository {
	return &SpinHistoryRepository{}
}

// Create appends a spin history record
func (r *SpinHistoryRepository) Create(_ context.Context, record *models.SpinHistoryRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now().UTC()
	stored := *record
	r.records = append(r.records, &stored)
	return nil
}

// FindByAccount returns spin history newest first
func (r *SpinHistoryRepository) FindByAccount(_ context.Context, account string, page, limit int) ([]*models.SpinHistoryRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*models.SpinHistoryRecord
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].Account == account {
			found := *r.records[i]
			matched = append(matched, &found)
		}
	}
	return paginate(matched, page, limit), nil
}

// CountByAccount returns the number of spins recorded for an account
func (r *SpinHistoryRepository) CountByAccount(_ context.Context, account string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, rec := range r.records {
		if rec.Account == account {
			count++
		}
	}
	return count, nil
}
