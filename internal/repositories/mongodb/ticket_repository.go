package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/luxemods/economy-backend/internal/models"
	"github.com/luxemods/economy-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure TicketRepository implements the interface
var _ repositories.TicketRepository = (*TicketRepository)(nil)

// TicketRepository handles MongoDB operations for ticket counts
type TicketRepository struct {
	collection *mongo.Collection
}

// NewTicketRepository creates a new TicketRepository
func NewTicketRepository(db *mongo.Database) *TicketRepository {
	return &TicketRepository{
		collection: db.Collection("tickets"),
	}
}

// Grant atomically adds count tickets and returns the new remaining total.
func (r *TicketRepository) Grant(ctx context.Context, account string, count int64, source models.TicketSource) (int64, error) {
	filter := bson.M{"account": account}
	update := bson.M{
		"$inc": bson.M{"remaining": count},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
		"$setOnInsert": bson.M{"account": account},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var ticket models.TicketCount
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&ticket); err != nil {
		return 0, wrapErr(err)
	}
	return ticket.Remaining, nil
}

// ConsumeOne decrements remaining by 1 only when remaining >= 1. The filter
// and the $inc run as one conditional update, so two concurrent spins against
// a count of 1 cannot both succeed.
func (r *TicketRepository) ConsumeOne(ctx context.Context, account string) error {
	filter := bson.M{"account": account, "remaining": bson.M{"$gte": int64(1)}}
	update := bson.M{
		"$inc": bson.M{"remaining": int64(-1)},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}
	res := r.collection.FindOneAndUpdate(ctx, filter, update)
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return repositories.ErrNoTickets
		}
		return wrapErr(err)
	}
	return nil
}

// GetRemaining returns the spins remaining, 0 for unknown accounts.
func (r *TicketRepository) GetRemaining(ctx context.Context, account string) (int64, error) {
	var ticket models.TicketCount
	err := r.collection.FindOne(ctx, bson.M{"account": account}).Decode(&ticket)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, wrapErr(err)
	}
	return ticket.Remaining, nil
}
