package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EligibilityGrant tracks bonus spins handed out by an admin. Repeated grants
// for the same account accumulate into one row; they never overwrite.
type EligibilityGrant struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Account        string             `bson:"account" json:"account"`
	SpinsRemaining int64              `bson:"spinsRemaining" json:"spinsRemaining"`
	Reason         string             `bson:"reason,omitempty" json:"reason,omitempty"`
	ExpiresAt      *time.Time         `bson:"expiresAt,omitempty" json:"expiresAt,omitempty"`
	GrantedBy      string             `bson:"grantedBy" json:"grantedBy"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ForcedWin rigs an account's next spin to a specific prize. The record is
// single-use: the spin that applies it also deletes it.
type ForcedWin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Account   string             `bson:"account" json:"account"`
	PrizeID   primitive.ObjectID `bson:"prizeId" json:"prizeId"`
	SetBy     string             `bson:"setBy" json:"setBy"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
