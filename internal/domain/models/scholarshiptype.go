package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScholarshipType is a category/classification of a scholarship.
// Slug is derived from Title on every write that changes it; it is never
// settable by clients.
type ScholarshipType struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	TitleCI     string             `bson:"title_ci" json:"-"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
