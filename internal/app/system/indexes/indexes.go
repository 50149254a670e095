// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
Errors are aggregated so every problem is visible and startup can fail
fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureAdmins(ctx, db); err != nil {
		problems = append(problems, "admins: "+err.Error())
	}
	if err := ensureSponsors(ctx, db); err != nil {
		problems = append(problems, "sponsors: "+err.Error())
	}
	if err := ensureScholarshipTypes(ctx, db); err != nil {
		problems = append(problems, "scholarship_types: "+err.Error())
	}
	if err := ensureScholarships(ctx, db); err != nil {
		problems = append(problems, "scholarships: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

type existingIndex struct {
	Name   string `bson:"name"`
	Key    bson.D `bson:"key"`
	Unique *bool  `bson:"unique,omitempty"`
}

func keySig(keys bson.D) string {
	parts := make([]string, 0, len(keys))
	for _, kv := range keys {
		parts = append(parts, fmt.Sprintf("%s:%v", kv.Key, kv.Value))
	}
	return strings.Join(parts, ", ")
}

func sameUnique(a, b *bool) bool {
	av, bv := false, false
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

// ensureIndexSet reconciles the desired indexes for one collection:
// reuse an index whose keys and uniqueness match, drop and recreate on a
// uniqueness mismatch, create when absent.
func ensureIndexSet(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	existing := map[string]existingIndex{} // key signature -> index
	cur, err := coll.Indexes().List(ctx)
	if err == nil {
		defer cur.Close(ctx)
		for cur.Next(ctx) {
			var idx existingIndex
			if err := cur.Decode(&idx); err != nil {
				zap.L().Warn("failed to decode existing index",
					zap.String("collection", coll.Name()), zap.Error(err))
				continue
			}
			existing[keySig(idx.Key)] = idx
		}
	}

	var errs []string
	for _, m := range models {
		var desiredUnique *bool
		var desiredName string
		if m.Options != nil {
			desiredUnique = m.Options.Unique
			if m.Options.Name != nil {
				desiredName = *m.Options.Name
			}
		}
		sig := keySig(m.Keys.(bson.D))

		if ex, ok := existing[sig]; ok {
			if sameUnique(desiredUnique, ex.Unique) {
				continue
			}
			// Uniqueness changed (e.g. upgrading to unique): drop and
			// recreate.
			if _, err := coll.Indexes().DropOne(ctx, ex.Name); err != nil {
				errs = append(errs, fmt.Sprintf("%s(%s): drop failed: %v", coll.Name(), desiredName, err))
				continue
			}
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), desiredName, err))
			continue
		}
		zap.L().Info("index ensured",
			zap.String("collection", coll.Name()),
			zap.String("name", desiredName),
			zap.String("keys", sig),
			zap.Bool("unique", desiredUnique != nil && *desiredUnique))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func ensureAdmins(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("admins")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_admins_email"),
		},
	})
}

func ensureSponsors(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("sponsors")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Case-insensitive global title uniqueness via the folded title.
		{
			Keys:    bson.D{{Key: "title_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_sponsors_titleci"),
		},
		// Active-only dropdown sorted by display title.
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().SetName("idx_sponsors_active_title"),
		},
		// Admin list, newest first.
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_sponsors_createdat"),
		},
	})
}

func ensureScholarshipTypes(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("scholarship_types")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_types_titleci"),
		},
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().SetName("idx_types_active_title"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_types_createdat"),
		},
	})
}

func ensureScholarships(ctx context.Context, db *mongo.Database) error {
	c := db.Collection("scholarships")
	return ensureIndexSet(ctx, c, []mongo.IndexModel{
		// Listing sort: newest first.
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_scholarships_createdat"),
		},
		// Status filters.
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_scholarships_active_createdat"),
		},
		{
			Keys:    bson.D{{Key: "is_featured", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_scholarships_featured_createdat"),
		},
		// Join keys for the sponsor/type lookups.
		{
			Keys:    bson.D{{Key: "sponsor", Value: 1}},
			Options: options.Index().SetName("idx_scholarships_sponsor"),
		},
		{
			Keys:    bson.D{{Key: "type", Value: 1}},
			Options: options.Index().SetName("idx_scholarships_type"),
		},
	})
}
