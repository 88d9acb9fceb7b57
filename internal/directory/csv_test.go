package directory

import (
	"strings"
	"testing"
)

func TestParseNames(t *testing.T) {
	csv := `Artist Name,Genre,Country
Daft Punk,Electronic,France
Rosalía,Pop,Spain
,Rock,
The Strokes,Rock,USA
`
	names, err := ParseNames(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []string{"Daft Punk", "Rosalía", "The Strokes"}
	if len(names) != len(want) {
		t.Fatalf("names = %v; want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q; want %q", i, names[i], want[i])
		}
	}
}

func TestParseNamesColumnPosition(t *testing.T) {
	// The name column doesn't have to come first
	csv := "Genre,Artist Name\nElectronic,Bicep\n"

	names, err := ParseNames(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(names) != 1 || names[0] != "Bicep" {
		t.Errorf("names = %v; want [Bicep]", names)
	}
}

func TestParseNamesMissingHeader(t *testing.T) {
	csv := "Nombre,Genre\nDaft Punk,Electronic\n"

	if _, err := ParseNames(strings.NewReader(csv)); err == nil {
		t.Error("expected an error for a file without the Artist Name column")
	}
}

func TestParseNamesRaggedRows(t *testing.T) {
	csv := "Artist Name,Genre\nDaft Punk\nRosalía,Pop,extra\n"

	names, err := ParseNames(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ragged rows should be tolerated: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("names = %v; want 2 entries", names)
	}
}
