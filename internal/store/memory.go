package store

import (
	"context"
	"sync"

	"github.com/CaCortez384/MiFestival/internal/models"
)

// Memory is an in-process FestivalStore. It backs the engine tests and
// keeps the same append-if-new / replace-wholesale contract as the
// gorm store.
type Memory struct {
	mu     sync.Mutex
	nextID uint
	docs   map[uint]*models.Festival
}

func NewMemory() *Memory {
	return &Memory{nextID: 1, docs: make(map[uint]*models.Festival)}
}

func (m *Memory) Create(ctx context.Context, f *models.Festival) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f.ID = m.nextID
	m.nextID++

	doc := *f
	doc.Artists = append([]models.ArtistAssignment(nil), f.Artists...)
	m.docs[f.ID] = &doc
	return nil
}

func (m *Memory) Get(ctx context.Context, id uint) (*models.Festival, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *doc
	out.Artists = append([]models.ArtistAssignment(nil), doc.Artists...)
	return &out, nil
}

func (m *Memory) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			doc.Name, _ = v.(string)
		case "slug":
			doc.Slug, _ = v.(string)
		case "day_count":
			if n, ok := v.(int); ok {
				doc.DayCount = n
			}
		case "background":
			doc.Background, _ = v.(string)
		}
	}
	return nil
}

func (m *Memory) ByOwner(ctx context.Context, ownerID string) ([]models.Festival, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Festival
	for _, doc := range m.docs {
		if doc.OwnerID == ownerID {
			out = append(out, *doc)
		}
	}
	return out, nil
}

func (m *Memory) AppendArtist(ctx context.Context, festivalID uint, rec models.ArtistAssignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[festivalID]
	if !ok {
		return ErrNotFound
	}
	for _, a := range doc.Artists {
		if a.SameSlot(rec) {
			return nil
		}
	}
	rec.FestivalID = festivalID
	doc.Artists = append(doc.Artists, rec)
	return nil
}

func (m *Memory) ReplaceArtists(ctx context.Context, festivalID uint, artistas []models.ArtistAssignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[festivalID]
	if !ok {
		return ErrNotFound
	}
	doc.Artists = append([]models.ArtistAssignment(nil), artistas...)
	return nil
}
