package lineup

import (
	"strings"
	"time"

	"github.com/CaCortez384/MiFestival/internal/models"
)

// HeadlinerPlaceholder is printed when a day has no assigned artist yet.
const HeadlinerPlaceholder = "Headliner"

// posterPrimaryActs caps the large-type supporting band; anything past
// it flows into the smaller overflow band.
const posterPrimaryActs = 6

var weekdayNames = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// PosterDay is one day block on the rendered poster. Stages collapse:
// the grid is the only stage-aware presentation.
type PosterDay struct {
	DayName   string   `json:"nombre"` // e.g. "SAT"
	DateLabel string   `json:"fecha"`  // e.g. "AUG 30"
	Headliner string   `json:"headliner"`
	MainActs  []string `json:"main_acts"`
	MoreActs  []string `json:"more_acts"`
}

// Layout projects (festival, assignments) into the poster structure:
// one block per day, headliner = first same-day assignment in list
// order regardless of stage, everything else in list order behind it.
// Dates count forward from the festival's start date; when none is set
// they fall back to "now". Pure: same input, same output.
func Layout(f *models.Festival, artistas []models.ArtistAssignment, now time.Time) []PosterDay {
	start := now
	if f.StartDate != nil {
		start = *f.StartDate
	}

	days := make([]PosterDay, 0, f.DayCount)
	for i := 1; i <= f.DayCount; i++ {
		fecha := start.AddDate(0, 0, i-1)
		names := namesForDay(artistas, DayLabel(i))

		day := PosterDay{
			DayName:   weekdayNames[int(fecha.Weekday())],
			DateLabel: strings.ToUpper(fecha.Format("Jan 02")),
			Headliner: HeadlinerPlaceholder,
		}
		if len(names) > 0 {
			day.Headliner = names[0]
			rest := names[1:]
			if len(rest) > posterPrimaryActs {
				day.MainActs = rest[:posterPrimaryActs]
				day.MoreActs = rest[posterPrimaryActs:]
			} else {
				day.MainActs = rest
			}
		}
		days = append(days, day)
	}
	return days
}

func namesForDay(artistas []models.ArtistAssignment, dia string) []string {
	var names []string
	for _, a := range artistas {
		if a.Day != nil && *a.Day == dia {
			names = append(names, a.Name)
		}
	}
	return names
}
