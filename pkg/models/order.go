package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User      *UserRef           `bson:"user,omitempty" json:"user,omitempty"`
	Items     []OrderItem        `bson:"items" json:"items"`
	Total     float64            `bson:"total" json:"total"`
	Status    OrderStatus        `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}

// OrderItem captures the unit price at order time; later product price
// changes do not affect existing orders.
type OrderItem struct {
	Product  ProductRef `bson:"product" json:"product"`
	Quantity int        `bson:"quantity" json:"quantity"`
	Price    float64    `bson:"price" json:"price"`
}
