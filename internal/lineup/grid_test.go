package lineup

import (
	"testing"

	"github.com/CaCortez384/MiFestival/internal/models"
)

func strPtr(s string) *string { return &s }

func assigned(name, day, stage string) models.ArtistAssignment {
	return models.ArtistAssignment{Name: name, Day: strPtr(day), Stage: strPtr(stage)}
}

func TestDays(t *testing.T) {
	tests := []struct {
		dayCount int
		first    string
		last     string
	}{
		{1, "Día 1", "Día 1"},
		{2, "Día 1", "Día 2"},
		{3, "Día 1", "Día 3"},
		{30, "Día 1", "Día 30"},
	}

	for _, tt := range tests {
		got := Days(tt.dayCount)
		if len(got) != tt.dayCount {
			t.Errorf("Days(%d) returned %d labels; want %d", tt.dayCount, len(got), tt.dayCount)
		}
		if got[0] != tt.first || got[len(got)-1] != tt.last {
			t.Errorf("Days(%d) = %v..%v; want %v..%v", tt.dayCount, got[0], got[len(got)-1], tt.first, tt.last)
		}
	}
}

func TestOccupantsKeepsInsertionOrder(t *testing.T) {
	artistas := []models.ArtistAssignment{
		assigned("Zeta", "Día 1", "Main"),
		assigned("Alfa", "Día 1", "Main"),
		{Name: "Pool Artist"},
		assigned("Beta", "Día 2", "Main"),
		assigned("Gamma", "Día 1", "Second"),
	}

	cell := Occupants(artistas, "Día 1", "Main")
	if len(cell) != 2 {
		t.Fatalf("expected 2 occupants, got %d", len(cell))
	}
	// No secondary sort: Zeta was inserted first, it stays first
	if cell[0].Name != "Zeta" || cell[1].Name != "Alfa" {
		t.Errorf("occupants out of order: %s, %s", cell[0].Name, cell[1].Name)
	}
}

func TestOccupantsEmptyCell(t *testing.T) {
	artistas := []models.ArtistAssignment{assigned("Alice", "Día 1", "Main")}

	if got := Occupants(artistas, "Día 2", "Main"); len(got) != 0 {
		t.Errorf("expected empty cell, got %v", got)
	}
	if got := Occupants(artistas, "Día 1", "Second"); len(got) != 0 {
		t.Errorf("expected empty cell, got %v", got)
	}
}

func TestGridDimensions(t *testing.T) {
	f := &models.Festival{Name: "Rock & Colors", DayCount: 2}
	f.SetStageList([]string{"Main", "Second"})

	cells := Grid(f, nil)
	if len(cells) != 4 {
		t.Fatalf("2 days × 2 stages should yield 4 cells, got %d", len(cells))
	}
	for _, cell := range cells {
		if len(cell.Artistas) != 0 {
			t.Errorf("cell (%s, %s) should start empty", cell.Day, cell.Stage)
		}
	}
}

func TestGridEmptyStageList(t *testing.T) {
	f := &models.Festival{Name: "No Stages", DayCount: 3}

	if cells := Grid(f, nil); len(cells) != 0 {
		t.Errorf("empty stage list must yield an empty grid, got %d cells", len(cells))
	}
}
