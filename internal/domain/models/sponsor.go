package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sponsor is an organization funding one or more scholarships.
// TitleCI is the case/diacritic-folded title, stored for the unique index
// that enforces case-insensitive title uniqueness.
type Sponsor struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title       string             `bson:"title" json:"title"`
	TitleCI     string             `bson:"title_ci" json:"-"`
	Description string             `bson:"description" json:"description"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}
