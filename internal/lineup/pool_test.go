package lineup

import (
	"testing"

	"github.com/CaCortez384/MiFestival/internal/models"
)

func candidates(names ...string) []models.CandidateArtist {
	out := make([]models.CandidateArtist, 0, len(names))
	for _, n := range names {
		out = append(out, models.CandidateArtist{Name: n})
	}
	return out
}

func poolNames(pool []models.ArtistAssignment) []string {
	names := make([]string, 0, len(pool))
	for _, a := range pool {
		names = append(names, a.Name)
	}
	return names
}

func TestAvailablePoolOrderAndDedup(t *testing.T) {
	artistas := []models.ArtistAssignment{
		assigned("Alice", "Día 1", "Main"), // assigned: excluded, and hides the candidate
		{Name: "Bob"},                      // unassigned: first
		{Name: "Carol"},                    // unassigned: second
	}

	pool := AvailablePool(artistas, candidates("Alice", "Dave", "Bob"))

	want := []string{"Bob", "Carol", "Dave"}
	got := poolNames(pool)
	if len(got) != len(want) {
		t.Fatalf("pool = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pool[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestAvailablePoolCaseSensitiveMatch(t *testing.T) {
	// Name matching against the roster is exact: "alice" is not "Alice"
	artistas := []models.ArtistAssignment{assigned("Alice", "Día 1", "Main")}

	pool := AvailablePool(artistas, candidates("alice"))
	if len(pool) != 1 || pool[0].Name != "alice" {
		t.Errorf("lower-case candidate must survive: %v", poolNames(pool))
	}
}

func TestAvailablePoolEntriesAreUnassigned(t *testing.T) {
	pool := AvailablePool(nil, candidates("Dave"))
	for _, a := range pool {
		if a.Assigned() || !a.Consistent() {
			t.Errorf("pool entry %q must be unassigned and consistent", a.Name)
		}
	}
}

func TestFilterPool(t *testing.T) {
	pool := AvailablePool(nil, candidates("Daft Punk", "Dafne", "The Strokes", "Rosalía"))

	tests := []struct {
		query string
		limit int
		want  []string
	}{
		{"daf", 0, []string{"Daft Punk", "Dafne"}}, // case-insensitive substring
		{"DAF", 0, []string{"Daft Punk", "Dafne"}},
		{"daf", 1, []string{"Daft Punk"}}, // truncation
		{"", 2, []string{"Daft Punk", "Dafne"}},
		{"zzz", 0, nil},
	}

	for _, tt := range tests {
		got := poolNames(FilterPool(pool, tt.query, tt.limit))
		if len(got) != len(tt.want) {
			t.Errorf("FilterPool(%q, %d) = %v; want %v", tt.query, tt.limit, got, tt.want)
			continue
		}
		for i := range tt.want {
			if got[i] != tt.want[i] {
				t.Errorf("FilterPool(%q, %d)[%d] = %q; want %q", tt.query, tt.limit, i, got[i], tt.want[i])
			}
		}
	}
}

func TestFilterPoolDefaultLimit(t *testing.T) {
	var many []models.CandidateArtist
	for i := 0; i < 25; i++ {
		many = append(many, models.CandidateArtist{Name: "Artist " + string(rune('A'+i))})
	}

	got := FilterPool(AvailablePool(nil, many), "", 0)
	if len(got) != DefaultPoolLimit {
		t.Errorf("default limit should cap at %d, got %d", DefaultPoolLimit, len(got))
	}
}
