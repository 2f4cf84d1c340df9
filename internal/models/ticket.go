package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TicketSource records where a ticket grant came from.
type TicketSource string

const (
	TicketSourceDailyClaim TicketSource = "daily_claim"
	TicketSourceReward     TicketSource = "reward"
	TicketSourceAdminGrant TicketSource = "admin_grant"
)

// TicketCount holds the spins remaining for an account. Remaining is never
// negative; consumption is a conditional decrement in the store.
type TicketCount struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Account   string             `bson:"account" json:"account"`
	Remaining int64              `bson:"remaining" json:"remaining"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
