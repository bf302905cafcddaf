package match_test

import (
	"testing"

	"github.com/aretw0/arbor/pkg/match"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "hello", "hello", 0},
		{"case insensitive", "Hello", "HELLO", 0},
		{"empty left", "", "abc", 3},
		{"empty right", "abc", "", 3},
		{"both empty", "", "", 0},
		{"kitten sitting", "kitten", "sitting", 3},
		{"single substitution", "cat", "car", 1},
		{"single insertion", "helo", "hello", 1},
		{"disjoint", "abc", "xyz", 3},
		{"unicode runes", "über", "uber", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := match.Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"", "abc"},
		{"hello", "helo"},
		{"Pizza", "pasta"},
	}

	for _, p := range pairs {
		if ab, ba := match.Distance(p[0], p[1]), match.Distance(p[1], p[0]); ab != ba {
			t.Errorf("Distance(%q, %q) = %d but Distance(%q, %q) = %d", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestDistance_TriangleInequality(t *testing.T) {
	words := []string{"", "a", "hello", "helo", "HELLO", "weather", "whether", "pizza"}

	for _, a := range words {
		for _, b := range words {
			for _, c := range words {
				ac := match.Distance(a, c)
				ab := match.Distance(a, b)
				bc := match.Distance(b, c)
				if ac > ab+bc {
					t.Errorf("triangle inequality violated: d(%q,%q)=%d > d(%q,%q)+d(%q,%q)=%d",
						a, c, ac, a, b, b, c, ab+bc)
				}
			}
		}
	}
}
