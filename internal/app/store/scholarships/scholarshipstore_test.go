package scholarshipstore_test

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/scholarhub/internal/app/store/scholarships"
	"github.com/dalemusser/scholarhub/internal/app/system/indexes"
	"github.com/dalemusser/scholarhub/internal/testutil"
)

func TestCreate_SlugActiveDefaults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	if err := indexes.EnsureAll(testutil.TestContext(t), db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}

	sponsor := testutil.CreateSponsor(t, db, "Acme Foundation")
	typ := testutil.CreateType(t, db, "Merit Based")
	sch := testutil.CreateScholarship(t, db, "STEM Excellence Award", sponsor, typ)

	if sch.Slug != "stem-excellence-award" {
		t.Errorf("Slug = %q, want %q", sch.Slug, "stem-excellence-award")
	}
	if !sch.IsActive {
		t.Error("new scholarship should start active")
	}
	if sch.IsFeatured {
		t.Error("new scholarship should not be featured")
	}
	if sch.SponsorID != sponsor.ID || sch.TypeID != typ.ID {
		t.Error("references not stored")
	}
}

func TestUpdate_PartialPatch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := scholarshipstore.New(db)
	ctx := testutil.TestContext(t)

	sponsor := testutil.CreateSponsor(t, db, "Acme Foundation")
	typ := testutil.CreateType(t, db, "Merit Based")
	sch := testutil.CreateScholarship(t, db, "STEM Excellence Award", sponsor, typ)

	newName := "Arts Excellence Award"
	featured := true
	deadline := time.Now().UTC().AddDate(0, 6, 0).Truncate(time.Millisecond)
	upd, err := store.Update(ctx, sch.ID, scholarshipstore.Patch{
		Name:                &newName,
		IsFeatured:          &featured,
		ApplicationDeadline: &deadline,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.Name != newName {
		t.Errorf("Name = %q", upd.Name)
	}
	if upd.Slug != "arts-excellence-award" {
		t.Errorf("Slug = %q, want recomputed from new name", upd.Slug)
	}
	if !upd.IsFeatured {
		t.Error("IsFeatured not applied")
	}
	if !upd.ApplicationDeadline.Equal(deadline) {
		t.Errorf("ApplicationDeadline = %v, want %v", upd.ApplicationDeadline, deadline)
	}
	// Untouched fields survive the patch.
	if upd.Description != sch.Description {
		t.Errorf("Description changed: %q", upd.Description)
	}
	if upd.SponsorID != sponsor.ID {
		t.Error("SponsorID changed")
	}
}

func TestUpdate_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := scholarshipstore.New(db)

	name := "Ghost"
	_, err := store.Update(testutil.TestContext(t), primitive.NewObjectID(), scholarshipstore.Patch{Name: &name})
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("err = %v, want ErrNoDocuments", err)
	}
}

func TestToggleActiveAndDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := scholarshipstore.New(db)
	ctx := testutil.TestContext(t)

	sponsor := testutil.CreateSponsor(t, db, "Acme Foundation")
	typ := testutil.CreateType(t, db, "Merit Based")
	sch := testutil.CreateScholarship(t, db, "STEM Excellence Award", sponsor, typ)

	off, err := store.ToggleActive(ctx, sch.ID)
	if err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if off.IsActive {
		t.Error("toggle should deactivate")
	}

	n, err := store.Delete(ctx, sch.ID)
	if err != nil || n != 1 {
		t.Fatalf("Delete = (%d, %v), want (1, nil)", n, err)
	}
	if _, err := store.GetByID(ctx, sch.ID); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("GetByID after delete err = %v, want ErrNoDocuments", err)
	}
}
