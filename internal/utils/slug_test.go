package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Rock & Colors", "rock-colors"},
		{"  MiFestival 2026  ", "mifestival-2026"},
		{"Fiesta!!!", "fiesta"},
		{"---", ""},
		{"Ya Está", "ya-est"}, // non-ASCII falls out; slugs stay URL-safe
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
