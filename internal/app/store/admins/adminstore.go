// internal/app/store/admins/adminstore.go
package adminstore

import (
	"context"
	"time"

	"github.com/dalemusser/scholarhub/internal/app/system/normalize"
	"github.com/dalemusser/scholarhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store wraps the admins collection. The API only ever reads it; writes
// happen through the seeder (cmd/seedadmin).
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("admins")}
}

// GetByEmail looks up an admin by normalized email.
// Returns mongo.ErrNoDocuments when no admin matches.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	var admin models.Admin
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&admin)
	if err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}

// GetByID looks up an admin by ObjectID. Used by the auth gate to resolve
// the identity embedded in a verified token.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Admin, error) {
	var admin models.Admin
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&admin)
	if err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}

// Create inserts an admin record. Only the seeder calls this.
func (s *Store) Create(ctx context.Context, admin models.Admin) (models.Admin, error) {
	admin.ID = primitive.NewObjectID()
	admin.Email = normalize.Email(admin.Email)
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = time.Now().UTC()
	}
	_, err := s.c.InsertOne(ctx, admin)
	if err != nil {
		return models.Admin{}, err
	}
	return admin, nil
}
