package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DailyClaimRecord marks that an account claimed its daily reward on a given
// UTC calendar day. ClaimDate is a date string ("2006-01-02"), not a
// timestamp; the (account, claimDate) pair is unique, which is what makes a
// duplicate claim a guaranteed failure instead of a race.
type DailyClaimRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Account        string             `bson:"account" json:"account"`
	ClaimDate      string             `bson:"claimDate" json:"claimDate"`
	Streak         int                `bson:"streak" json:"streak"`
	TicketsGranted int                `bson:"ticketsGranted" json:"ticketsGranted"`
	CoinsGranted   int64              `bson:"coinsGranted" json:"coinsGranted"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// ClaimResult is returned to the caller after a successful daily claim.
type ClaimResult struct {
	Streak           int       `json:"streak"`
	TicketsGranted   int       `json:"ticketsGranted"`
	CoinsGranted     int64     `json:"coinsGranted"`
	TicketsRemaining int64     `json:"ticketsRemaining"`
	NextEligibleAt   time.Time `json:"nextEligibleAt"`
}
