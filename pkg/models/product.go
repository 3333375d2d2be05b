package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductStatus string

const (
	StatusDraft  ProductStatus = "draft"
	StatusActive ProductStatus = "active"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Price       float64            `bson:"price" json:"price"`
	SalePrice   *float64           `bson:"salePrice,omitempty" json:"sale_price,omitempty"`
	Category    CategoryRef        `bson:"category,omitempty" json:"category,omitempty"`
	Images      []MediaRef         `bson:"images,omitempty" json:"images,omitempty"`
	Description *RichText          `bson:"description,omitempty" json:"description,omitempty"`
	Stock       int                `bson:"stock" json:"stock"`
	Status      ProductStatus      `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updated_at"`
}

// IsOnSale reports whether the product has a sale price strictly below the
// regular price. The comparison happens at display time; storage does not
// enforce it.
func (p *Product) IsOnSale() bool {
	return p.SalePrice != nil && *p.SalePrice < p.Price
}

// DiscountPercent is the rounded percentage off the regular price, or 0
// when the product is not on sale.
func (p *Product) DiscountPercent() int {
	if !p.IsOnSale() {
		return 0
	}
	return int(math.Round((p.Price - *p.SalePrice) / p.Price * 100))
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

// MainImage is the first expanded image document, if any.
func (p *Product) MainImage() *Media {
	for _, img := range p.Images {
		if img.Doc != nil {
			return img.Doc
		}
	}
	return nil
}
