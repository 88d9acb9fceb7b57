package lineup

import (
	"fmt"

	"github.com/CaCortez384/MiFestival/internal/models"
)

// MaxDays is the upper bound the creation form enforces.
const MaxDays = 30

// Days builds the ordered day column labels: "Día 1" .. "Día N".
// dayCount must be >= 1; callers validate the range, not this function.
func Days(dayCount int) []string {
	dias := make([]string, dayCount)
	for i := range dias {
		dias[i] = DayLabel(i + 1)
	}
	return dias
}

// DayLabel returns the label for a 1-indexed day.
func DayLabel(index int) string {
	return fmt.Sprintf("Día %d", index)
}

// Occupants returns the assignments sitting in the (day, stage) cell,
// matched by exact equality on both fields. Order follows the source
// list; there is no secondary sort.
func Occupants(artistas []models.ArtistAssignment, day, stage string) []models.ArtistAssignment {
	var cell []models.ArtistAssignment
	for _, a := range artistas {
		if a.In(day, stage) {
			cell = append(cell, a)
		}
	}
	return cell
}

// GridCell is one (day, stage) coordinate with its occupants, used by
// the grid endpoint so the frontend renders rows by stage and columns
// by day exactly like the editor table.
type GridCell struct {
	Day      string                    `json:"dia"`
	Stage    string                    `json:"escenario"`
	Artistas []models.ArtistAssignment `json:"artistas"`
}

// Grid materializes the full days × stages matrix for a festival. An
// empty stage list yields an empty grid.
func Grid(f *models.Festival, artistas []models.ArtistAssignment) []GridCell {
	dias := Days(f.DayCount)
	escenarios := f.StageList()

	cells := make([]GridCell, 0, len(dias)*len(escenarios))
	for _, escenario := range escenarios {
		for _, dia := range dias {
			cells = append(cells, GridCell{
				Day:      dia,
				Stage:    escenario,
				Artistas: Occupants(artistas, dia, escenario),
			})
		}
	}
	return cells
}
