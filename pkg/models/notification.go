package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationType string

const (
	TypeInfo      NotificationType = "info"
	TypeSuccess   NotificationType = "success"
	TypeWarning   NotificationType = "warning"
	TypeError     NotificationType = "error"
	TypePromotion NotificationType = "promotion"
	TypeNews      NotificationType = "news"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank maps the priority tiers onto a comparable scale, urgent highest.
// Unknown values rank as normal, matching the stored default.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 3
	case PriorityHigh:
		return 2
	case PriorityLow:
		return 0
	default:
		return 1
	}
}

type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Message   string             `bson:"message" json:"message"`
	Type      NotificationType   `bson:"type" json:"type"`
	Active    bool               `bson:"active" json:"active"`
	Priority  Priority           `bson:"priority" json:"priority"`
	Icon      string             `bson:"icon,omitempty" json:"icon,omitempty"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	ExpiresAt *time.Time         `bson:"expiresAt,omitempty" json:"expires_at,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}
