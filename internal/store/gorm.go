package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/CaCortez384/MiFestival/internal/models"
)

// Gorm persists festivals through the shared gorm connection.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) Create(ctx context.Context, f *models.Festival) error {
	return s.db.WithContext(ctx).Create(f).Error
}

func (s *Gorm) Get(ctx context.Context, id uint) (*models.Festival, error) {
	var f models.Festival
	err := s.db.WithContext(ctx).Preload("Artists").First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Gorm) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	res := s.db.WithContext(ctx).Model(&models.Festival{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Gorm) ByOwner(ctx context.Context, ownerID string) ([]models.Festival, error) {
	var festivales []models.Festival
	err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at desc").Find(&festivales).Error
	return festivales, err
}

// AppendArtist adds the record unless an identical (name, day, stage)
// record already exists for the festival — array-union semantics.
func (s *Gorm) AppendArtist(ctx context.Context, festivalID uint, rec models.ArtistAssignment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&models.ArtistAssignment{}).Where("festival_id = ? AND name = ?", festivalID, rec.Name)
		q = whereSlot(q, rec)

		var count int64
		if err := q.Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		rec.FestivalID = festivalID
		return tx.Create(&rec).Error
	})
}

// ReplaceArtists swaps the festival's entire assignment list in one
// transaction — the whole-document replace the engine depends on.
func (s *Gorm) ReplaceArtists(ctx context.Context, festivalID uint, artistas []models.ArtistAssignment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("festival_id = ?", festivalID).Delete(&models.ArtistAssignment{}).Error; err != nil {
			return err
		}
		if len(artistas) == 0 {
			return nil
		}
		for i := range artistas {
			artistas[i].ID = 0
			artistas[i].FestivalID = festivalID
		}
		return tx.Create(&artistas).Error
	})
}

func whereSlot(q *gorm.DB, rec models.ArtistAssignment) *gorm.DB {
	if rec.Day == nil {
		q = q.Where("day IS NULL")
	} else {
		q = q.Where("day = ?", *rec.Day)
	}
	if rec.Stage == nil {
		q = q.Where("stage IS NULL")
	} else {
		q = q.Where("stage = ?", *rec.Stage)
	}
	return q
}
