// internal/app/store/scholarships/scholarshipstore.go
package scholarshipstore

import (
	"context"
	"time"

	"github.com/dalemusser/scholarhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/scholarhub/internal/app/system/normalize"
	"github.com/dalemusser/scholarhub/internal/app/system/slug"
	"github.com/dalemusser/scholarhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("scholarships")}
}

// Create inserts a scholarship. The slug is derived from the trimmed name;
// IsActive defaults to true, IsFeatured keeps whatever the caller set.
func (s *Store) Create(ctx context.Context, sch models.Scholarship) (models.Scholarship, error) {
	now := time.Now().UTC()
	sch.ID = primitive.NewObjectID()
	sch.Name = normalize.Title(sch.Name)
	sch.Slug = slug.Make(sch.Name)
	sch.CatchyPhrase = htmlsanitize.Sanitize(sch.CatchyPhrase)
	sch.Description = htmlsanitize.Sanitize(sch.Description)
	sch.EligibilityCriteria = htmlsanitize.Strings(sch.EligibilityCriteria)
	sch.DocumentsRequired = htmlsanitize.Strings(sch.DocumentsRequired)
	sch.Benefits = htmlsanitize.Strings(sch.Benefits)
	sch.IsActive = true
	sch.CreatedAt = now
	sch.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, sch); err != nil {
		return models.Scholarship{}, err
	}
	return sch, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Scholarship, error) {
	var sch models.Scholarship
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sch); err != nil {
		return models.Scholarship{}, err
	}
	return sch, nil
}

// Patch enumerates the mutable scholarship fields for partial updates.
// Nil pointers mean "leave unchanged". Slug and CreatedAt are absent on
// purpose: the slug is derived from Name and creation time is immutable.
type Patch struct {
	Name                 *string             `json:"name"`
	CatchyPhrase         *string             `json:"catchyPhrase"`
	Description          *string             `json:"description"`
	SponsorID            *primitive.ObjectID `json:"sponsor"`
	TypeID               *primitive.ObjectID `json:"type"`
	CoverageArea         *string             `json:"coverageArea"`
	EligibilityCriteria  *[]string           `json:"eligibilityCriteria"`
	DocumentsRequired    *[]string           `json:"documentsRequired"`
	Benefits             *[]string           `json:"benefits"`
	ApplicationStartDate *time.Time          `json:"applicationStartDate"`
	ApplicationDeadline  *time.Time          `json:"applicationDeadline"`
	IsActive             *bool               `json:"isActive"`
	IsFeatured           *bool               `json:"isFeatured"`
}

// Update applies a partial update and returns the updated document, or
// mongo.ErrNoDocuments. When the patch carries a new name, the slug is
// recomputed in the same write.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, p Patch) (models.Scholarship, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if p.Name != nil {
		name := normalize.Title(*p.Name)
		set["name"] = name
		set["slug"] = slug.Make(name)
	}
	if p.CatchyPhrase != nil {
		set["catchy_phrase"] = htmlsanitize.Sanitize(*p.CatchyPhrase)
	}
	if p.Description != nil {
		set["description"] = htmlsanitize.Sanitize(*p.Description)
	}
	if p.SponsorID != nil {
		set["sponsor"] = *p.SponsorID
	}
	if p.TypeID != nil {
		set["type"] = *p.TypeID
	}
	if p.CoverageArea != nil {
		set["coverage_area"] = *p.CoverageArea
	}
	if p.EligibilityCriteria != nil {
		set["eligibility_criteria"] = htmlsanitize.Strings(*p.EligibilityCriteria)
	}
	if p.DocumentsRequired != nil {
		set["documents_required"] = htmlsanitize.Strings(*p.DocumentsRequired)
	}
	if p.Benefits != nil {
		set["benefits"] = htmlsanitize.Strings(*p.Benefits)
	}
	if p.ApplicationStartDate != nil {
		set["application_start_date"] = *p.ApplicationStartDate
	}
	if p.ApplicationDeadline != nil {
		set["application_deadline"] = *p.ApplicationDeadline
	}
	if p.IsActive != nil {
		set["is_active"] = *p.IsActive
	}
	if p.IsFeatured != nil {
		set["is_featured"] = *p.IsFeatured
	}

	var sch models.Scholarship
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&sch)
	if err != nil {
		return models.Scholarship{}, err
	}
	return sch, nil
}

// Delete removes a scholarship by ID. Returns the number of documents
// deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ToggleActive flips is_active and returns the post-toggle document, or
// mongo.ErrNoDocuments.
func (s *Store) ToggleActive(ctx context.Context, id primitive.ObjectID) (models.Scholarship, error) {
	pipeline := bson.A{bson.M{"$set": bson.M{
		"is_active":  bson.M{"$not": "$is_active"},
		"updated_at": time.Now().UTC(),
	}}}
	var sch models.Scholarship
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&sch)
	if err != nil {
		return models.Scholarship{}, err
	}
	return sch, nil
}
