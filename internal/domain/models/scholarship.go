package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coverage areas a scholarship can target.
const (
	CoverageIndia  = "India"
	CoverageAbroad = "Abroad"
)

// ValidCoverageArea reports whether s is one of the allowed coverage areas.
func ValidCoverageArea(s string) bool {
	return s == CoverageIndia || s == CoverageAbroad
}

// Scholarship is a scholarship listing. SponsorID and TypeID reference the
// sponsors and scholarship_types collections; referential integrity is
// checked by the write handlers, not by the store, and deletes do not
// cascade (a dangling reference drops the listing from joined views).
type Scholarship struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Slug         string             `bson:"slug" json:"slug"`
	CatchyPhrase string             `bson:"catchy_phrase,omitempty" json:"catchyPhrase,omitempty"`
	Description  string             `bson:"description" json:"description"`

	SponsorID primitive.ObjectID `bson:"sponsor" json:"sponsor"`
	TypeID    primitive.ObjectID `bson:"type" json:"type"`

	CoverageArea string `bson:"coverage_area" json:"coverageArea"`

	EligibilityCriteria []string `bson:"eligibility_criteria" json:"eligibilityCriteria"`
	DocumentsRequired   []string `bson:"documents_required" json:"documentsRequired"`
	Benefits            []string `bson:"benefits" json:"benefits"`

	ApplicationStartDate time.Time `bson:"application_start_date" json:"applicationStartDate"`
	ApplicationDeadline  time.Time `bson:"application_deadline" json:"applicationDeadline"`

	IsActive   bool `bson:"is_active" json:"isActive"`
	IsFeatured bool `bson:"is_featured" json:"isFeatured"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
