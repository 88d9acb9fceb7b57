package store

import (
	"context"
	"testing"

	"github.com/CaCortez384/MiFestival/internal/models"
)

func strPtr(s string) *string { return &s }

func TestAppendArtistIsUnionLike(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	f := &models.Festival{Name: "Test", DayCount: 1, OwnerID: "u1"}
	if err := mem.Create(ctx, f); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec := models.ArtistAssignment{Name: "Alice"}
	if err := mem.AppendArtist(ctx, f.ID, rec); err != nil {
		t.Fatalf("append: %v", err)
	}
	// Identical record: absorbed, not duplicated
	if err := mem.AppendArtist(ctx, f.ID, rec); err != nil {
		t.Fatalf("append again: %v", err)
	}

	doc, err := mem.Get(ctx, f.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(doc.Artists) != 1 {
		t.Errorf("identical append must be a no-op, got %d records", len(doc.Artists))
	}

	// A record differing in slot is a new element
	other := models.ArtistAssignment{Name: "Alice", Day: strPtr("Día 1"), Stage: strPtr("Main")}
	if err := mem.AppendArtist(ctx, f.ID, other); err != nil {
		t.Fatalf("append assigned: %v", err)
	}
	doc, _ = mem.Get(ctx, f.ID)
	if len(doc.Artists) != 2 {
		t.Errorf("slot-differing record must append, got %d records", len(doc.Artists))
	}
}

func TestReplaceArtistsIsWholesale(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	f := &models.Festival{Name: "Test", DayCount: 1, OwnerID: "u1"}
	if err := mem.Create(ctx, f); err != nil {
		t.Fatalf("create: %v", err)
	}
	_ = mem.AppendArtist(ctx, f.ID, models.ArtistAssignment{Name: "Alice"})
	_ = mem.AppendArtist(ctx, f.ID, models.ArtistAssignment{Name: "Bob"})

	next := []models.ArtistAssignment{{Name: "Carol"}}
	if err := mem.ReplaceArtists(ctx, f.ID, next); err != nil {
		t.Fatalf("replace: %v", err)
	}

	doc, _ := mem.Get(ctx, f.ID)
	if len(doc.Artists) != 1 || doc.Artists[0].Name != "Carol" {
		t.Errorf("replace must overwrite the whole list, got %v", doc.Artists)
	}

	if err := mem.ReplaceArtists(ctx, f.ID, nil); err != nil {
		t.Fatalf("replace with empty: %v", err)
	}
	doc, _ = mem.Get(ctx, f.ID)
	if len(doc.Artists) != 0 {
		t.Errorf("empty replace must clear the list, got %v", doc.Artists)
	}
}

func TestGetUnknownFestival(t *testing.T) {
	mem := NewMemory()

	if _, err := mem.Get(context.Background(), 99); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestByOwner(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	for _, owner := range []string{"u1", "u2", "u1"} {
		f := &models.Festival{Name: "F", DayCount: 1, OwnerID: owner}
		if err := mem.Create(ctx, f); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	mine, err := mem.ByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("by owner: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 festivals for u1, got %d", len(mine))
	}
}
