package store

import (
	"context"
	"errors"

	"github.com/CaCortez384/MiFestival/internal/models"
)

// ErrNotFound is returned when a festival id does not resolve.
var ErrNotFound = errors.New("festival not found")

// FestivalStore is the document-store collaborator. Its contract is
// deliberately narrow: the assignment list can only be appended to
// (and only when an identical record is not already there) or replaced
// wholesale. Callers that want to move or remove one artist must
// read-modify-write the full list; there is no element-wise patch, and
// concurrent writers get last-write-wins.
type FestivalStore interface {
	Create(ctx context.Context, f *models.Festival) error
	Get(ctx context.Context, id uint) (*models.Festival, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	ByOwner(ctx context.Context, ownerID string) ([]models.Festival, error)

	AppendArtist(ctx context.Context, festivalID uint, rec models.ArtistAssignment) error
	ReplaceArtists(ctx context.Context, festivalID uint, artistas []models.ArtistAssignment) error
}
