package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Compile-time check to ensure DailyClaimRepository implements the interface
var _ repositories.DailyClaimRepository = (*DailyClaimRepository)(nil)

// DailyClaimRepository handles MongoDB operations for daily claim records.
// The collection carries a unique index on (account, claimDate); the insert
// below is the concurrency gate for the whole daily-claim flow.
type DailyClaimRepository struct {
	collection *mongo.Collection
}

// NewDailyClaimRepository creates a new DailyClaimRepository
func NewDailyClaimRepository(db *mongo.Database) *DailyClaimRepository {
	return &DailyClaimRepository{
		collection: db.Collection("daily_claims"),
	}
}

// Create inserts the claim record, mapping a unique-index violation to
// ErrDuplicateClaim.
func (r *DailyClaimRepository) Create(ctx context.Context, record *models.DailyClaimRecord) error {
	record.ID = primitive.NewObjectID()
	record.CreatedAt = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repositories.ErrDuplicateClaim
		}
		return wrapErr(err)
	}
	return nil
}

// FindByAccountAndDate returns the claim record for one UTC day.
func (r *DailyClaimRepository) FindByAccountAndDate(ctx context.Context, account, claimDate string) (*models.DailyClaimRecord, error) {
	var record models.DailyClaimRecord
	filter := bson.M{"account": account, "claimDate": claimDate}
	err := r.collection.FindOne(ctx, filter).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &record, nil
}
