package lineup

import (
	"reflect"
	"testing"
	"time"

	"github.com/CaCortez384/MiFestival/internal/models"
)

func TestLayoutHeadlinerAndSupport(t *testing.T) {
	f := &models.Festival{Name: "Rock & Colors", DayCount: 1}
	artistas := []models.ArtistAssignment{
		assigned("Headliner", "Día 1", "Main"),
		assigned("B", "Día 1", "Second"),
		assigned("C", "Día 1", "Main"),
		assigned("D", "Día 1", "Main"),
	}

	days := Layout(f, artistas, time.Now())
	if len(days) != 1 {
		t.Fatalf("expected 1 poster day, got %d", len(days))
	}

	day := days[0]
	if day.Headliner != "Headliner" {
		t.Errorf("headliner = %q; want %q", day.Headliner, "Headliner")
	}
	// Stages collapse: all same-day artists in list order
	if !reflect.DeepEqual(day.MainActs, []string{"B", "C", "D"}) {
		t.Errorf("main acts = %v; want [B C D]", day.MainActs)
	}
	if len(day.MoreActs) != 0 {
		t.Errorf("no overflow expected, got %v", day.MoreActs)
	}
}

func TestLayoutOverflowBand(t *testing.T) {
	f := &models.Festival{Name: "Big One", DayCount: 1}
	names := []string{"H", "a", "b", "c", "d", "e", "f", "g", "h"}

	var artistas []models.ArtistAssignment
	for _, n := range names {
		artistas = append(artistas, assigned(n, "Día 1", "Main"))
	}

	day := Layout(f, artistas, time.Now())[0]
	if day.Headliner != "H" {
		t.Fatalf("headliner = %q", day.Headliner)
	}
	if !reflect.DeepEqual(day.MainActs, []string{"a", "b", "c", "d", "e", "f"}) {
		t.Errorf("main band = %v", day.MainActs)
	}
	if !reflect.DeepEqual(day.MoreActs, []string{"g", "h"}) {
		t.Errorf("overflow band = %v", day.MoreActs)
	}
}

func TestLayoutEmptyDayGetsPlaceholder(t *testing.T) {
	f := &models.Festival{Name: "Quiet", DayCount: 2}
	artistas := []models.ArtistAssignment{assigned("Solo", "Día 2", "Main")}

	days := Layout(f, artistas, time.Now())
	if days[0].Headliner != HeadlinerPlaceholder {
		t.Errorf("empty day headliner = %q; want placeholder", days[0].Headliner)
	}
	if days[1].Headliner != "Solo" {
		t.Errorf("day 2 headliner = %q; want Solo", days[1].Headliner)
	}
}

func TestLayoutDateLabels(t *testing.T) {
	start := time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC) // a Saturday
	f := &models.Festival{Name: "Dated", DayCount: 2, StartDate: &start}

	// now is deliberately far from the start date; the start date wins
	now := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := Layout(f, nil, now)

	if days[0].DayName != "SAT" || days[0].DateLabel != "AUG 29" {
		t.Errorf("day 1 = %s %s; want SAT AUG 29", days[0].DayName, days[0].DateLabel)
	}
	if days[1].DayName != "SUN" || days[1].DateLabel != "AUG 30" {
		t.Errorf("day 2 = %s %s; want SUN AUG 30", days[1].DayName, days[1].DateLabel)
	}
}

func TestLayoutFallsBackToNow(t *testing.T) {
	f := &models.Festival{Name: "Undated", DayCount: 1}
	now := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC) // a Monday

	days := Layout(f, nil, now)
	if days[0].DayName != "MON" || days[0].DateLabel != "MAR 02" {
		t.Errorf("fallback labels = %s %s; want MON MAR 02", days[0].DayName, days[0].DateLabel)
	}
}

func TestLayoutIsIdempotent(t *testing.T) {
	f := &models.Festival{Name: "Pure", DayCount: 3}
	artistas := []models.ArtistAssignment{
		assigned("A", "Día 1", "Main"),
		assigned("B", "Día 3", "Second"),
		{Name: "Unplaced"},
	}
	now := time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC)

	first := Layout(f, artistas, now)
	second := Layout(f, artistas, now)
	if !reflect.DeepEqual(first, second) {
		t.Error("Layout must be a pure function of its inputs")
	}
}
