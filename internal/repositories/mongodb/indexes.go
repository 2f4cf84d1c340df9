package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the store contracts rely on. The unique
// index on daily_claims (account, claimDate) is load-bearing: it is what
// turns a duplicate daily claim into a guaranteed insert failure.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		"balances": {
			{Keys: bson.D{{Key: "account", Value: 1}}, Options: unique},
		},
		"tickets": {
			{Keys: bson.D{{Key: "account", Value: 1}}, Options: unique},
		},
		"daily_claims": {
			{Keys: bson.D{{Key: "account", Value: 1}, {Key: "claimDate", Value: 1}}, Options: unique},
		},
		"eligibility_grants": {
			{Keys: bson.D{{Key: "account", Value: 1}}, Options: unique},
		},
		"forced_wins": {
			{Keys: bson.D{{Key: "account", Value: 1}}, Options: unique},
		},
		"admin_users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"ledger_entries": {
			{Keys: bson.D{{Key: "account", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		"spin_history": {
			{Keys: bson.D{{Key: "account", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}

	for collection, models := range specs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
