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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure EligibilityRepository implements the interface
var _ repositories.EligibilityRepository = (*EligibilityRepository)(nil)

// EligibilityRepository handles MongoDB operations for bonus-spin grants and
// forced-win overrides.
type EligibilityRepository struct {
	grants *mongo.Collection
	forced *mongo.Collection
}

// NewEligibilityRepository creates a new EligibilityRepository
func NewEligibilityRepository(db *mongo.Database) *EligibilityRepository {
	return &EligibilityRepository{
		grants: db.Collection("eligibility_grants"),
		forced: db.Collection("forced_wins"),
	}
}

// UpsertGrant adds count to the account's outstanding spins; the $inc keeps
// repeated grants additive instead of overwriting.
func (r *EligibilityRepository) UpsertGrant(ctx context.Context, account string, count int64, reason string, expiresAt *time.Time, grantedBy string) (*models.EligibilityGrant, error) {
	now := time.Now().UTC()
	set := bson.M{
		"reason":    reason,
		"grantedBy": grantedBy,
		"updatedAt": now,
	}
	if expiresAt != nil {
		set["expiresAt"] = expiresAt
	}
	update := bson.M{
		"$inc": bson.M{"spinsRemaining": count},
		"$set": set,
		"$setOnInsert": bson.M{"account": account, "createdAt": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var grant models.EligibilityGrant
	if err := r.grants.FindOneAndUpdate(ctx, bson.M{"account": account}, update, opts).Decode(&grant); err != nil {
		return nil, wrapErr(err)
	}
	return &grant, nil
}

// FindGrant returns the account's grant row, or ErrNotFound
func (r *EligibilityRepository) FindGrant(ctx context.Context, account string) (*models.EligibilityGrant, error) {
	var grant models.EligibilityGrant
	err := r.grants.FindOne(ctx, bson.M{"account": account}).Decode(&grant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &grant, nil
}

// DeleteGrant removes the account's grant row
func (r *EligibilityRepository) DeleteGrant(ctx context.Context, account string) error {
	_, err := r.grants.DeleteOne(ctx, bson.M{"account": account})
	return wrapErr(err)
}

// DeleteExpiredGrants removes grants whose expiry has passed
func (r *EligibilityRepository) DeleteExpiredGrants(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{"expiresAt": bson.M{"$lt": now}}
	res, err := r.grants.DeleteMany(ctx, filter)
	if err != nil {
		return 0, wrapErr(err)
	}
	return res.DeletedCount, nil
}

// SetForcedWin replaces the account's pending forced win
func (r *EligibilityRepository) SetForcedWin(ctx context.Context, account string, prizeID primitive.ObjectID, setBy string) error {
	update := bson.M{
		"$set": bson.M{
			"prizeId":   prizeID,
			"setBy":     setBy,
			"createdAt": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{"account": account},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.forced.UpdateOne(ctx, bson.M{"account": account}, update, opts)
	return wrapErr(err)
}

// PopForcedWin fetches and deletes the pending forced win in one operation,
// so the override can only ever apply to a single spin.
func (r *EligibilityRepository) PopForcedWin(ctx context.Context, account string) (*models.ForcedWin, error) {
	var forced models.ForcedWin
	err := r.forced.FindOneAndDelete(ctx, bson.M{"account": account}).Decode(&forced)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, wrapErr(err)
	}
	return &forced, nil
}
