package usecase

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases the name",
			input: "Glenfiddich",
			want:  "glenfiddich",
		},
		{
			name:  "removes category words",
			input: "Glenfiddich 12 Year Old Whisky",
			want:  "glenfiddich 12",
		},
		{
			name:  "removes bracketed content including brackets",
			input: "Glenfiddich 12 Year Old Whisky (700ml)",
			want:  "glenfiddich 12",
		},
		{
			name:  "removes square and curly brackets",
			input: "Lagavulin 16 [Gift Box] {2023}",
			want:  "lagavulin 16",
		},
		{
			name:  "removes multi-word category phrases",
			input: "Macallan Single Malt Limited Edition",
			want:  "macallan",
		},
		{
			name:  "keeps category substrings inside other words",
			input: "The Scotchman Reserve",
			want:  "scotchman reserve",
		},
		{
			name:  "removes stop words as whole tokens only",
			input: "Aged 12 Year Yearly Review",
			want:  "12 yearly review",
		},
		{
			name:  "collapses punctuation and whitespace",
			input: "Ardbeg  -  Uigeadail!!",
			want:  "ardbeg uigeadail",
		},
		{
			name:  "empty input yields empty output",
			input: "",
			want:  "",
		},
		{
			name:  "name of only noise yields empty output",
			input: "Whisky (750ml) Bottle",
			want:  "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	samples := []string{
		"Glenfiddich 12 Year Old Whisky (700ml)",
		"Macallan Single Malt Limited Edition",
		"The Balvenie DoubleWood Aged 12 Years",
		"Johnnie Walker Black Label Scotch Whisky 750ml",
		"Aged 12 Year Yearly Review",
		"",
		"   ",
		"!!!",
	}

	for _, s := range samples {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", s, once, twice)
		}
	}
}
