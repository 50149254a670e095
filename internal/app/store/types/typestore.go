// internal/app/store/types/typestore.go
package typestore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/scholarhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/scholarhub/internal/app/system/normalize"
	"github.com/dalemusser/scholarhub/internal/app/system/slug"
	"github.com/dalemusser/scholarhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateType reports a case-insensitive title collision.
var ErrDuplicateType = errors.New("a scholarship type with this title already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("scholarship_types")}
}

// Create inserts a scholarship type. The slug is derived from the trimmed
// title here, never taken from the caller.
func (s *Store) Create(ctx context.Context, t models.ScholarshipType) (models.ScholarshipType, error) {
	now := time.Now().UTC()
	t.ID = primitive.NewObjectID()
	t.Title = normalize.Title(t.Title)
	t.TitleCI = normalize.TitleCI(t.Title)
	t.Slug = slug.Make(t.Title)
	t.Description = htmlsanitize.Sanitize(t.Description)
	t.IsActive = true
	t.CreatedAt = now
	t.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, t); err != nil {
		if wafflemongo.IsDup(err) {
			return models.ScholarshipType{}, ErrDuplicateType
		}
		return models.ScholarshipType{}, err
	}
	return t, nil
}

// List returns all scholarship types, newest first.
func (s *Store) List(ctx context.Context) ([]models.ScholarshipType, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.ScholarshipType
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.ScholarshipType, error) {
	var t models.ScholarshipType
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&t); err != nil {
		return models.ScholarshipType{}, err
	}
	return t, nil
}

// Update replaces title and description. The slug is recomputed from the
// new title so it can never drift. Returns mongo.ErrNoDocuments if the
// type does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, title, description string) (models.ScholarshipType, error) {
	title = normalize.Title(title)
	set := bson.M{
		"title":       title,
		"title_ci":    normalize.TitleCI(title),
		"slug":        slug.Make(title),
		"description": htmlsanitize.Sanitize(description),
		"updated_at":  time.Now().UTC(),
	}
	var t models.ScholarshipType
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&t)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.ScholarshipType{}, ErrDuplicateType
		}
		return models.ScholarshipType{}, err
	}
	return t, nil
}

// Delete removes a type by ID. Returns the number of documents deleted.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ToggleActive flips is_active and returns the post-toggle document.
func (s *Store) ToggleActive(ctx context.Context, id primitive.ObjectID) (models.ScholarshipType, error) {
	pipeline := bson.A{bson.M{"$set": bson.M{
		"is_active":  bson.M{"$not": "$is_active"},
		"updated_at": time.Now().UTC(),
	}}}
	var t models.ScholarshipType
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&t)
	if err != nil {
		return models.ScholarshipType{}, err
	}
	return t, nil
}

// ExistsByTitleCI checks for a type with the given folded title.
func (s *Store) ExistsByTitleCI(ctx context.Context, titleCI string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"title_ci": titleCI}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// TitleExistsForOther checks for a folded-title collision excluding the
// given ID.
func (s *Store) TitleExistsForOther(ctx context.Context, titleCI string, excludeID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"title_ci": titleCI,
		"_id":      bson.M{"$ne": excludeID},
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DropdownItem is the minimal projection used by form dropdowns.
type DropdownItem struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Title string             `bson:"title" json:"title"`
}

// ActiveDropdown returns active types as {_id,title}, sorted by title.
func (s *Store) ActiveDropdown(ctx context.Context) ([]DropdownItem, error) {
	cur, err := s.c.Find(ctx, bson.M{"is_active": true},
		options.Find().
			SetProjection(bson.M{"_id": 1, "title": 1}).
			SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []DropdownItem
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
