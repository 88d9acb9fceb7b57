package lineup

import (
	"context"
	"strings"

	"github.com/CaCortez384/MiFestival/internal/models"
)

// AssignmentStore is the slice of the festival store the engine needs.
// The backing store offers exactly two assignment mutations: append a
// record if an identical one is not already present, and replace the
// whole list. There is no element-wise patch, so every move is a
// read-modify-write of the full list.
type AssignmentStore interface {
	AppendArtist(ctx context.Context, festivalID uint, rec models.ArtistAssignment) error
	ReplaceArtists(ctx context.Context, festivalID uint, artistas []models.ArtistAssignment) error
}

// Engine owns the authoritative assignment list for one festival while
// it is being edited. Every mutation is written to the store first and
// applied to the in-memory list only when the write succeeds, so a
// failed write leaves the local state at its last-known-good value.
type Engine struct {
	festivalID uint
	store      AssignmentStore
	artistas   []models.ArtistAssignment
}

// NewEngine hydrates an engine from the persisted list.
func NewEngine(festivalID uint, store AssignmentStore, artistas []models.ArtistAssignment) *Engine {
	e := &Engine{festivalID: festivalID, store: store}
	e.artistas = append(e.artistas, artistas...)
	return e
}

// Artists returns a copy of the current list.
func (e *Engine) Artists() []models.ArtistAssignment {
	out := make([]models.ArtistAssignment, len(e.artistas))
	copy(out, e.artistas)
	return out
}

// AddArtist appends a new unassigned record. An empty name (after
// trimming) is a user-input guard: the call is silently a no-op.
// Names are NOT deduplicated here; adding "Alice" twice while she is
// unassigned is absorbed by the store's append-if-new primitive, but
// nothing prevents a duplicate once assignments diverge.
func (e *Engine) AddArtist(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}

	rec := models.ArtistAssignment{FestivalID: e.festivalID, Name: name}
	if err := e.store.AppendArtist(ctx, e.festivalID, rec); err != nil {
		return err
	}

	e.artistas = append(e.artistas, rec)
	return nil
}

// Assign moves the dragged record into (day, stage). The previous
// placement is located by the record's full (name, day, stage) triple,
// not by name alone: if the same name somehow sits in two slots, only
// the dragged instance moves. A candidate dragged straight from the
// pool matches nothing and is simply inserted — that is how a
// directory artist becomes a persisted record.
func (e *Engine) Assign(ctx context.Context, dragged models.ArtistAssignment, day, stage string) error {
	next := e.without(dragged)
	next = append(next, models.ArtistAssignment{
		FestivalID: e.festivalID,
		Name:       dragged.Name,
		Day:        &day,
		Stage:      &stage,
	})

	if err := e.store.ReplaceArtists(ctx, e.festivalID, next); err != nil {
		return err
	}

	e.artistas = next
	return nil
}

// Remove deletes the triple-matched record outright. A directory
// candidate falls back into the available pool on the next render; a
// manually added artist is gone until re-added by name.
func (e *Engine) Remove(ctx context.Context, rec models.ArtistAssignment) error {
	next := e.without(rec)
	if len(next) == len(e.artistas) {
		return nil
	}

	if err := e.store.ReplaceArtists(ctx, e.festivalID, next); err != nil {
		return err
	}

	e.artistas = next
	return nil
}

// Unassign reverts the triple-matched record to the unassigned pool
// without deleting it, so "take off the grid" and "delete" stay
// distinct operations for manually added artists.
func (e *Engine) Unassign(ctx context.Context, rec models.ArtistAssignment) error {
	found := false
	next := make([]models.ArtistAssignment, 0, len(e.artistas))
	for _, a := range e.artistas {
		if !found && a.SameSlot(rec) {
			found = true
			a.Day = nil
			a.Stage = nil
		}
		next = append(next, a)
	}
	if !found {
		return nil
	}

	if err := e.store.ReplaceArtists(ctx, e.festivalID, next); err != nil {
		return err
	}

	e.artistas = next
	return nil
}

// without filters out the one record matching rec's full triple.
func (e *Engine) without(rec models.ArtistAssignment) []models.ArtistAssignment {
	next := make([]models.ArtistAssignment, 0, len(e.artistas))
	removed := false
	for _, a := range e.artistas {
		if !removed && a.SameSlot(rec) {
			removed = true
			continue
		}
		next = append(next, a)
	}
	return next
}
