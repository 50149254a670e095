package sponsorstore_test

import (
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dalemusser/scholarhub/internal/app/store/sponsors"
	"github.com/dalemusser/scholarhub/internal/app/system/indexes"
	"github.com/dalemusser/scholarhub/internal/domain/models"
	"github.com/dalemusser/scholarhub/internal/testutil"
)

func newStore(t *testing.T) (*sponsorstore.Store, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	if err := indexes.EnsureAll(testutil.TestContext(t), db); err != nil {
		t.Fatalf("ensure indexes: %v", err)
	}
	return sponsorstore.New(db), db
}

func TestCreate_DefaultsAndNormalization(t *testing.T) {
	store, _ := newStore(t)
	ctx := testutil.TestContext(t)

	sp, err := store.Create(ctx, models.Sponsor{
		Title:       "  Acme Foundation  ",
		Description: "<p>Funds students</p><script>alert(1)</script>",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sp.Title != "Acme Foundation" {
		t.Errorf("Title = %q, want trimmed", sp.Title)
	}
	if !sp.IsActive {
		t.Error("new sponsor should start active")
	}
	if sp.CreatedAt.IsZero() || sp.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}
	got, err := store.GetByID(ctx, sp.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if strings.Contains(got.Description, "<script>") {
		t.Errorf("Description %q not sanitized", got.Description)
	}
	if !strings.Contains(got.Description, "Funds students") {
		t.Errorf("Description %q lost safe content", got.Description)
	}
}

func TestCreate_DuplicateTitleCaseInsensitive(t *testing.T) {
	store, _ := newStore(t)
	ctx := testutil.TestContext(t)

	if _, err := store.Create(ctx, models.Sponsor{Title: "Acme"}); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := store.Create(ctx, models.Sponsor{Title: "ACME"})
	if !errors.Is(err, sponsorstore.ErrDuplicateSponsor) {
		t.Fatalf("second Create err = %v, want ErrDuplicateSponsor", err)
	}
}

func TestUpdate_KeepOwnTitleAndNotFound(t *testing.T) {
	store, _ := newStore(t)
	ctx := testutil.TestContext(t)

	sp, err := store.Create(ctx, models.Sponsor{Title: "Acme", Description: "old"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Re-saving the same title (different case) must not trip the
	// duplicate check against itself.
	upd, err := store.Update(ctx, sp.ID, "ACME", "new description")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.Title != "ACME" || upd.Description != "new description" {
		t.Errorf("Update returned %+v", upd)
	}
	if !upd.UpdatedAt.After(sp.UpdatedAt) {
		t.Error("UpdatedAt not refreshed")
	}

	_, err = store.Update(ctx, primitive.NewObjectID(), "Ghost", "x")
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("Update missing err = %v, want ErrNoDocuments", err)
	}
}

func TestToggleActive(t *testing.T) {
	store, _ := newStore(t)
	ctx := testutil.TestContext(t)

	sp, err := store.Create(ctx, models.Sponsor{Title: "Acme"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	off, err := store.ToggleActive(ctx, sp.ID)
	if err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if off.IsActive {
		t.Error("first toggle should deactivate")
	}
	on, err := store.ToggleActive(ctx, sp.ID)
	if err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if !on.IsActive {
		t.Error("second toggle should reactivate")
	}

	if _, err := store.ToggleActive(ctx, primitive.NewObjectID()); !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("toggle missing err = %v, want ErrNoDocuments", err)
	}
}

func TestDelete(t *testing.T) {
	store, _ := newStore(t)
	ctx := testutil.TestContext(t)

	sp, err := store.Create(ctx, models.Sponsor{Title: "Acme"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	n, err := store.Delete(ctx, sp.ID)
	if err != nil || n != 1 {
		t.Fatalf("Delete = (%d, %v), want (1, nil)", n, err)
	}
	n, err = store.Delete(ctx, sp.ID)
	if err != nil || n != 0 {
		t.Fatalf("second Delete = (%d, %v), want (0, nil)", n, err)
	}
}

func TestActiveDropdown(t *testing.T) {
	store, db := newStore(t)
	ctx := testutil.TestContext(t)

	zeta := testutil.CreateSponsor(t, db, "Zeta Trust")
	testutil.CreateSponsor(t, db, "Alpha Fund")
	if _, err := store.ToggleActive(ctx, zeta.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	items, err := store.ActiveDropdown(ctx)
	if err != nil {
		t.Fatalf("ActiveDropdown: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1 (inactive excluded)", len(items))
	}
	if items[0].Title != "Alpha Fund" {
		t.Errorf("item = %+v", items[0])
	}
}
