// internal/testutil/fixtures.go
package testutil

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	adminstore "github.com/dalemusser/scholarhub/internal/app/store/admins"
	scholarshipstore "github.com/dalemusser/scholarhub/internal/app/store/scholarships"
	sponsorstore "github.com/dalemusser/scholarhub/internal/app/store/sponsors"
	typestore "github.com/dalemusser/scholarhub/internal/app/store/types"
	"github.com/dalemusser/scholarhub/internal/domain/models"
)

// CreateAdmin inserts an admin with the given email and password and
// returns the stored document.
func CreateAdmin(t *testing.T, db *mongo.Database, email, password string) models.Admin {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		t.Fatalf("hash fixture password: %v", err)
	}
	admin, err := adminstore.New(db).Create(TestContext(t), models.Admin{
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		t.Fatalf("create fixture admin %q: %v", email, err)
	}
	return admin
}

// CreateSponsor inserts a sponsor through the store so the same
// normalization and defaults apply as in production.
func CreateSponsor(t *testing.T, db *mongo.Database, title string) models.Sponsor {
	t.Helper()

	sp, err := sponsorstore.New(db).Create(TestContext(t), models.Sponsor{
		Title:       title,
		Description: "Fixture sponsor " + title,
	})
	if err != nil {
		t.Fatalf("create fixture sponsor %q: %v", title, err)
	}
	return sp
}

// CreateType inserts a scholarship type through the store.
func CreateType(t *testing.T, db *mongo.Database, title string) models.ScholarshipType {
	t.Helper()

	st, err := typestore.New(db).Create(TestContext(t), models.ScholarshipType{
		Title:       title,
		Description: "Fixture type " + title,
	})
	if err != nil {
		t.Fatalf("create fixture type %q: %v", title, err)
	}
	return st
}

// CreateScholarship inserts a scholarship referencing the given sponsor
// and type, with sensible defaults for the remaining fields.
func CreateScholarship(t *testing.T, db *mongo.Database, name string, sponsor models.Sponsor, typ models.ScholarshipType) models.Scholarship {
	t.Helper()

	now := time.Now().UTC()
	sch, err := scholarshipstore.New(db).Create(TestContext(t), models.Scholarship{
		Name:                 name,
		CatchyPhrase:         "Fixture phrase for " + name,
		Description:          "Fixture scholarship " + name,
		SponsorID:            sponsor.ID,
		TypeID:               typ.ID,
		CoverageArea:         models.CoverageIndia,
		EligibilityCriteria:  []string{"Enrolled full time"},
		DocumentsRequired:    []string{"Transcript"},
		Benefits:             []string{"Tuition support"},
		ApplicationStartDate: now,
		ApplicationDeadline:  now.AddDate(0, 3, 0),
	})
	if err != nil {
		t.Fatalf("create fixture scholarship %q: %v", name, err)
	}
	return sch
}
