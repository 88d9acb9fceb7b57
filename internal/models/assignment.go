package models

import (
	"time"

	"gorm.io/gorm"
)

// ArtistAssignment binds an artist name to zero or one (day, stage) slot
// inside a festival. Day and Stage are either both nil (the artist sits in
// the unassigned pool) or both set; a mixed state is invalid.
//
// The artist name is the natural key — there is no separate artist id.
// Nothing stops two records from sharing a name; move and remove operate
// on the full (name, day, stage) triple so only the touched instance is
// affected.
type ArtistAssignment struct {
	ID        uint           `gorm:"primarykey" json:"-"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	FestivalID uint `json:"-" gorm:"index;not null"`

	Name  string  `json:"nombre" gorm:"not null"`
	Day   *string `json:"dia"`       // e.g. "Día 2"
	Stage *string `json:"escenario"` // e.g. "Main"
}

// Assigned reports whether the record occupies a slot.
func (a ArtistAssignment) Assigned() bool {
	return a.Day != nil && a.Stage != nil
}

// Consistent reports the both-nil-or-both-set invariant.
func (a ArtistAssignment) Consistent() bool {
	return (a.Day == nil) == (a.Stage == nil)
}

// SameSlot matches on the full (name, day, stage) triple. This is the
// identity used by move and remove: drag-and-drop always operates on a
// concrete rendered instance, so a same-named record in another slot is
// left alone.
func (a ArtistAssignment) SameSlot(other ArtistAssignment) bool {
	return a.Name == other.Name && strPtrEq(a.Day, other.Day) && strPtrEq(a.Stage, other.Stage)
}

// In reports whether the record occupies the given slot.
func (a ArtistAssignment) In(day, stage string) bool {
	return a.Day != nil && a.Stage != nil && *a.Day == day && *a.Stage == stage
}

func strPtrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// CandidateArtist is a read-only suggestion sourced from the external
// artist directory (CSV drop or seed list). It is never owned by a
// festival; unplaced candidates only ever exist here.
type CandidateArtist struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Name string `json:"nombre" gorm:"uniqueIndex;not null"`
}
