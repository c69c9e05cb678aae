package usecase

import (
	"testing"
)

func TestRatio(t *testing.T) {
	t.Run("identical non-empty strings score 100", func(t *testing.T) {
		if got := Ratio("glenfiddich 12", "glenfiddich 12"); got != 100 {
			t.Errorf("Ratio = %d, want 100", got)
		}
	})

	t.Run("two empty strings score 100", func(t *testing.T) {
		if got := Ratio("", ""); got != 100 {
			t.Errorf("Ratio = %d, want 100", got)
		}
	})

	t.Run("empty vs non-empty scores 0", func(t *testing.T) {
		if got := Ratio("", "glenfiddich"); got != 0 {
			t.Errorf("Ratio = %d, want 0", got)
		}
	})

	t.Run("no character overlap scores 0", func(t *testing.T) {
		if got := Ratio("abc", "xyz"); got != 0 {
			t.Errorf("Ratio = %d, want 0", got)
		}
	})

	t.Run("one edit in four characters scores 75", func(t *testing.T) {
		if got := Ratio("abcd", "abce"); got != 75 {
			t.Errorf("Ratio = %d, want 75", got)
		}
	})

	t.Run("is symmetric", func(t *testing.T) {
		pairs := [][2]string{
			{"glenfiddich 12", "glenlivet 12"},
			{"ardbeg", "lagavulin"},
			{"a", "abcdef"},
		}
		for _, pair := range pairs {
			if Ratio(pair[0], pair[1]) != Ratio(pair[1], pair[0]) {
				t.Errorf("Ratio(%q, %q) != Ratio(%q, %q)", pair[0], pair[1], pair[1], pair[0])
			}
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		first := Ratio("glenfiddich 12", "glenlivet 12")
		for i := 0; i < 10; i++ {
			if got := Ratio("glenfiddich 12", "glenlivet 12"); got != first {
				t.Fatalf("Ratio changed between calls: %d then %d", first, got)
			}
		}
	})
}

func TestPartialRatio(t *testing.T) {
	t.Run("substring of longer string scores 100", func(t *testing.T) {
		if got := PartialRatio("glenfiddich 12", "special reserve glenfiddich 12 gift pack"); got != 100 {
			t.Errorf("PartialRatio = %d, want 100", got)
		}
	})

	t.Run("identical strings score 100", func(t *testing.T) {
		if got := PartialRatio("ardbeg", "ardbeg"); got != 100 {
			t.Errorf("PartialRatio = %d, want 100", got)
		}
	})

	t.Run("two empty strings score 100", func(t *testing.T) {
		if got := PartialRatio("", ""); got != 100 {
			t.Errorf("PartialRatio = %d, want 100", got)
		}
	})

	t.Run("empty vs non-empty scores 0", func(t *testing.T) {
		if got := PartialRatio("", "ardbeg"); got != 0 {
			t.Errorf("PartialRatio = %d, want 0", got)
		}
	})

	t.Run("scores at least the full ratio", func(t *testing.T) {
		a, b := "glenfiddich 12", "the glenfiddich twelve year"
		if partial, full := PartialRatio(a, b), Ratio(a, b); partial < full {
			t.Errorf("PartialRatio = %d < Ratio = %d", partial, full)
		}
	})

	t.Run("is deterministic", func(t *testing.T) {
		first := PartialRatio("glenfiddich", "glenfiddich reserve cask")
		for i := 0; i < 10; i++ {
			if got := PartialRatio("glenfiddich", "glenfiddich reserve cask"); got != first {
				t.Fatalf("PartialRatio changed between calls: %d then %d", first, got)
			}
		}
	})
}
