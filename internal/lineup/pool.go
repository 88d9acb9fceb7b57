package lineup

import (
	"strings"

	"github.com/CaCortez384/MiFestival/internal/models"
)

// DefaultPoolLimit is how many pool entries the side panel shows.
const DefaultPoolLimit = 10

// AvailablePool computes the "available to place" list: unassigned
// records first (in list order), then directory candidates whose name
// does not appear anywhere in the festival's list — assigned or not.
// The match is exact and case-sensitive; no normalization happens here.
func AvailablePool(artistas []models.ArtistAssignment, candidates []models.CandidateArtist) []models.ArtistAssignment {
	known := make(map[string]bool, len(artistas))
	var pool []models.ArtistAssignment

	for _, a := range artistas {
		known[a.Name] = true
		if !a.Assigned() {
			pool = append(pool, a)
		}
	}

	for _, c := range candidates {
		if known[c.Name] {
			continue
		}
		pool = append(pool, models.ArtistAssignment{Name: c.Name})
	}

	return pool
}

// FilterPool applies the search box: case-insensitive substring match
// on the name, truncated to limit entries (0 means DefaultPoolLimit).
func FilterPool(pool []models.ArtistAssignment, query string, limit int) []models.ArtistAssignment {
	if limit <= 0 {
		limit = DefaultPoolLimit
	}
	needle := strings.ToLower(query)

	var out []models.ArtistAssignment
	for _, a := range pool {
		if !strings.Contains(strings.ToLower(a.Name), needle) {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out
}
