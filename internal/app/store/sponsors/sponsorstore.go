// internal/app/store/sponsors/sponsorstore.go
package sponsorstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/scholarhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/scholarhub/internal/app/system/normalize"
	"github.com/dalemusser/scholarhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateSponsor reports a case-insensitive title collision, whether
// caught by the pre-check or by the unique title_ci index on a racing
// insert.
var ErrDuplicateSponsor = errors.New("a sponsor with this title already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("sponsors")}
}

// Create inserts a sponsor. Title is trimmed, description sanitized, and
// the folded title stored for the unique index. New sponsors start active.
func (s *Store) Create(ctx context.Context, sp models.Sponsor) (models.Sponsor, error) {
	now := time.Now().UTC()
	sp.ID = primitive.NewObjectID()
	sp.Title = normalize.Title(sp.Title)
	sp.TitleCI = normalize.TitleCI(sp.Title)
	sp.Description = htmlsanitize.Sanitize(sp.Description)
	sp.IsActive = true
	sp.CreatedAt = now
	sp.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, sp); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Sponsor{}, ErrDuplicateSponsor
		}
		return models.Sponsor{}, err
	}
	return sp, nil
}

// List returns all sponsors, newest first.
func (s *Store) List(ctx context.Context) ([]models.Sponsor, error) {
	cur, err := s.c.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []models.Sponsor
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Sponsor, error) {
	var sp models.Sponsor
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sp); err != nil {
		return models.Sponsor{}, err
	}
	return sp, nil
}

// Update replaces title and description, refreshing UpdatedAt and the
// folded title. Returns the updated document, or mongo.ErrNoDocuments.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, title, description string) (models.Sponsor, error) {
	title = normalize.Title(title)
	set := bson.M{
		"title":       title,
		"title_ci":    normalize.TitleCI(title),
		"description": htmlsanitize.Sanitize(description),
		"updated_at":  time.Now().UTC(),
	}
	var sp models.Sponsor
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&sp)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.Sponsor{}, ErrDuplicateSponsor
		}
		return models.Sponsor{}, err
	}
	return sp, nil
}

// Delete removes a sponsor by ID. Returns the number of documents deleted
// (0 or 1). Scholarships referencing the sponsor are left dangling; the
// listing join drops them.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ToggleActive flips is_active in a single pipeline update and returns the
// post-toggle document, or mongo.ErrNoDocuments.
func (s *Store) ToggleActive(ctx context.Context, id primitive.ObjectID) (models.Sponsor, error) {
	pipeline := bson.A{bson.M{"$set": bson.M{
		"is_active":  bson.M{"$not": "$is_active"},
		"updated_at": time.Now().UTC(),
	}}}
	var sp models.Sponsor
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&sp)
	if err != nil {
		return models.Sponsor{}, err
	}
	return sp, nil
}

// ExistsByTitleCI checks for a sponsor with the given folded title.
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
// given ID, so updates can keep their own title.
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

// ActiveDropdown returns active sponsors as {_id,title}, sorted by title.
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
