package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Media struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Filename  string             `bson:"filename" json:"filename"`
	Alt       string             `bson:"alt,omitempty" json:"alt,omitempty"`
	MimeType  string             `bson:"mimeType,omitempty" json:"mime_type,omitempty"`
	Filesize  int64              `bson:"filesize,omitempty" json:"filesize,omitempty"`
	URL       string             `bson:"url,omitempty" json:"url,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updated_at"`
}
