package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SpinHistoryRecord is the append-only audit log of wheel spins. Prize fields
// are denormalized so history survives later catalog edits.
type SpinHistoryRecord struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Account    string             `bson:"account" json:"account"`
	PrizeID    primitive.ObjectID `bson:"prizeId" json:"prizeId"`
	PrizeName  string             `bson:"prizeName" json:"prizeName"`
	PrizeType  PrizeType          `bson:"prizeType" json:"prizeType"`
	PrizeValue int64              `bson:"prizeValue" json:"prizeValue"`
	Forced     bool               `bson:"forced,omitempty" json:"forced,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// SpinResult is what a successful spin returns to the caller.
type SpinResult struct {
	Prize            Prize `json:"prize"`
	Balance          int64 `json:"balance"`
	TicketsRemaining int64 `json:"ticketsRemaining"`
}
