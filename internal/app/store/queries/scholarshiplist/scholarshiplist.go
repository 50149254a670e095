// Package scholarshiplist builds the filterable, searchable, paginated
// admin view over scholarships joined with their sponsor and type.
//
// The join is inner-join by construction ($lookup + $unwind): a
// scholarship whose sponsor or type no longer resolves is dropped from
// results rather than surfaced with a hole in it.
package scholarshiplist

import (
	"context"
	"regexp"
	"time"

	"github.com/dalemusser/scholarhub/internal/app/system/paging"
	"github.com/dalemusser/scholarhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Status filter values accepted by List. Anything else behaves as "all".
const (
	StatusAll      = "all"
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusFeatured = "featured"
)

// Params selects the page, optional search text and status filter.
type Params struct {
	Page   int    // 1-based; pages past the end yield empty data
	Search string // case-insensitive substring over name, sponsor title, type title
	Status string // one of the Status* constants
}

// Row is one listed scholarship with its references resolved.
type Row struct {
	ID           primitive.ObjectID `bson:"_id" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Slug         string             `bson:"slug" json:"slug"`
	CatchyPhrase string             `bson:"catchy_phrase,omitempty" json:"catchyPhrase,omitempty"`
	Description  string             `bson:"description" json:"description"`

	Sponsor models.Sponsor         `bson:"sponsor" json:"sponsor"`
	Type    models.ScholarshipType `bson:"type" json:"type"`

	CoverageArea        string   `bson:"coverage_area" json:"coverageArea"`
	EligibilityCriteria []string `bson:"eligibility_criteria" json:"eligibilityCriteria"`
	DocumentsRequired   []string `bson:"documents_required" json:"documentsRequired"`
	Benefits            []string `bson:"benefits" json:"benefits"`

	ApplicationStartDate time.Time `bson:"application_start_date" json:"applicationStartDate"`
	ApplicationDeadline  time.Time `bson:"application_deadline" json:"applicationDeadline"`

	IsActive   bool      `bson:"is_active" json:"isActive"`
	IsFeatured bool      `bson:"is_featured" json:"isFeatured"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// Stats are global counts over the entire scholarships collection,
// computed without the search/status filters.
type Stats struct {
	Total    int64 `bson:"total" json:"total"`
	Active   int64 `bson:"active" json:"active"`
	Inactive int64 `bson:"inactive" json:"inactive"`
	Featured int64 `bson:"featured" json:"featured"`
}

// Result is the full listing payload.
type Result struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Stats       Stats `json:"stats"`
	Data        []Row `json:"data"`
}

// basePipeline joins sponsor and type, then applies search and status
// matches. Count and data pipelines both extend it.
func basePipeline(p Params) mongo.Pipeline {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "sponsors",
			"localField":   "sponsor",
			"foreignField": "_id",
			"as":           "sponsor",
		}}},
		bson.D{{Key: "$unwind", Value: "$sponsor"}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "scholarship_types",
			"localField":   "type",
			"foreignField": "_id",
			"as":           "type",
		}}},
		bson.D{{Key: "$unwind", Value: "$type"}},
	}

	if p.Search != "" {
		// QuoteMeta keeps user input a literal substring match rather
		// than a regex of the caller's choosing.
		re := primitive.Regex{Pattern: regexp.QuoteMeta(p.Search), Options: "i"}
		pipe = append(pipe, bson.D{{Key: "$match", Value: bson.M{
			"$or": []bson.M{
				{"name": re},
				{"sponsor.title": re},
				{"type.title": re},
			},
		}}})
	}

	switch p.Status {
	case StatusActive:
		pipe = append(pipe, bson.D{{Key: "$match", Value: bson.M{"is_active": true}}})
	case StatusInactive:
		pipe = append(pipe, bson.D{{Key: "$match", Value: bson.M{"is_active": false}}})
	case StatusFeatured:
		pipe = append(pipe, bson.D{{Key: "$match", Value: bson.M{"is_featured": true}}})
	}

	return pipe
}

// List runs the listing query: filtered count, the requested page sorted
// newest first, and the unfiltered global stats.
func List(ctx context.Context, db *mongo.Database, p Params) (Result, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	c := db.Collection("scholarships")

	stats, err := globalStats(ctx, c)
	if err != nil {
		return Result{}, err
	}

	base := basePipeline(p)

	countPipe := append(append(mongo.Pipeline{}, base...),
		bson.D{{Key: "$count", Value: "total"}})
	cur, err := c.Aggregate(ctx, countPipe)
	if err != nil {
		return Result{}, err
	}
	var counts []struct {
		Total int64 `bson:"total"`
	}
	if err := cur.All(ctx, &counts); err != nil {
		return Result{}, err
	}
	var total int64
	if len(counts) > 0 {
		total = counts[0].Total
	}

	dataPipe := append(append(mongo.Pipeline{}, base...),
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$skip", Value: paging.Skip(p.Page)}},
		bson.D{{Key: "$limit", Value: int64(paging.PageSize)}},
	)
	cur, err = c.Aggregate(ctx, dataPipe)
	if err != nil {
		return Result{}, err
	}
	rows := []Row{}
	if err := cur.All(ctx, &rows); err != nil {
		return Result{}, err
	}

	return Result{
		CurrentPage: p.Page,
		TotalPages:  paging.TotalPages(total),
		TotalCount:  total,
		Stats:       stats,
		Data:        rows,
	}, nil
}

// globalStats counts total/active/inactive/featured over the whole
// collection, disregarding any search or status filter.
func globalStats(ctx context.Context, c *mongo.Collection) (Stats, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"active": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$is_active", true}}, 1, 0},
			}},
			"inactive": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$is_active", false}}, 1, 0},
			}},
			"featured": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$is_featured", true}}, 1, 0},
			}},
		}}},
	}
	cur, err := c.Aggregate(ctx, pipe)
	if err != nil {
		return Stats{}, err
	}
	var out []Stats
	if err := cur.All(ctx, &out); err != nil {
		return Stats{}, err
	}
	if len(out) == 0 {
		return Stats{}, nil
	}
	return out[0], nil
}
