package memory

import (
	"context"
	"sync"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Compile-time check to ensure PrizeRepository implements the interface
var _ repositories.PrizeRepository = (*PrizeRepository)(nil)

// PrizeRepository is the in-memory prize catalog. Prizes keep insertion
// order, which is the stable order the draw walks.
type PrizeRepository struct {
	mu     sync.Mutex
	prizes []*models.Prize
}

// NewPrizeRepository creates an empty in-memory prize catalog
func NewPrizeRepository() *PrizeRepository {
	return &PrizeRepository{}
}

// Create inserts a new prize at the end of the catalog
func (r *PrizeRepository) Create(_ context.Context, prize *models.Prize) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	prize.ID = primitive.NewObjectID()
	prize.CreatedAt = time.Now().UTC()
	prize.UpdatedAt = prize.CreatedAt
	stored := *prize
	r.prizes = append(r.prizes, &stored)
	return nil
}

// FindByID finds a prize by ID
func (r *PrizeRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.Prize, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.prizes {
		if p.ID == id {
			found := *p
			return &found, nil
		}
	}
	return nil, repositories.ErrNotFound
}

// FindActive returns active prizes in catalog order
func (r *PrizeRepository) FindActive(_ context.Context) ([]*models.Prize, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := []*models.Prize{}
	for _, p := range r.prizes {
		if p.Active {
			found := *p
			active = append(active, &found)
		}
	}
	return active, nil
}

// FindAll returns every prize in catalog order
func (r *PrizeRepository) FindAll(_ context.Context) ([]*models.Prize, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*models.Prize, 0, len(r.prizes))
	for _, p := range r.prizes {
		found := *p
		all = append(all, &found)
	}
	return all, nil
}

// Update replaces an existing prize in place
func (r *PrizeRepository) Update(_ context.Context, prize *models.Prize) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.prizes {
		if p.ID == prize.ID {
			prize.CreatedAt = p.CreatedAt
			prize.UpdatedAt = time.Now().UTC()
			stored := *prize
			r.prizes[i] = &stored
			return nil
		}
	}
	return repositories.ErrNotFound
}

// Delete removes a prize by ID
func (r *PrizeRepository) Delete(_ context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.prizes {
		if p.ID == id {
			r.prizes = append(r.prizes[:i], r.prizes[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}
