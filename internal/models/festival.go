package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Festival is the root document: one owner, a day range and an ordered
// stage list. The stage order defines the grid columns, so it is stored
// as CSV to keep the ordering intact (Postgres arrays would also work,
// but CSV keeps the sqlite dev driver happy).
type Festival struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name       string `json:"name" gorm:"not null"`
	Slug       string `json:"slug" gorm:"index"`
	DayCount   int    `json:"days" gorm:"not null;default:1"`
	Stages     string `json:"-" gorm:"type:text"` // CSV: "Main,Second Stage"
	Background string `json:"background" gorm:"type:varchar(50);default:'city'"`

	// OwnerID is the principal identifier. Guests get the reserved
	// sentinel id; their festivals are not durable across sessions.
	OwnerID string `json:"owner_id" gorm:"index;not null"`

	// Optional poster start date. When nil the poster falls back to
	// today's date for day labels.
	StartDate *time.Time `json:"start_date"`

	Artists []ArtistAssignment `json:"artistas" gorm:"constraint:OnDelete:CASCADE;"`
}

// StageList splits the stored CSV into the ordered stage names.
func (f *Festival) StageList() []string {
	if f.Stages == "" {
		return nil
	}
	parts := strings.Split(f.Stages, ",")
	stages := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stages = append(stages, s)
		}
	}
	return stages
}

// SetStageList stores the ordered stage names back as CSV.
func (f *Festival) SetStageList(stages []string) {
	f.Stages = strings.Join(stages, ",")
}
