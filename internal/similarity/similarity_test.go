package similarity

import "testing"

func TestScoreIdenticalStrings(t *testing.T) {
	if got := Score("banana", "banana"); got != 1.0 {
		t.Fatalf("expected 1.0, got %f", got)
	}
}

func TestScoreIsCaseInsensitive(t *testing.T) {
	if got := Score("Banana", "bAnAnA"); got != 1.0 {
		t.Fatalf("expected 1.0 for case-only difference, got %f", got)
	}
}

func TestScoreBothEmpty(t *testing.T) {
	if got := Score("", ""); got != 1.0 {
		t.Fatalf("expected 1.0 for both-empty, got %f", got)
	}
}

func TestScoreOneEmpty(t *testing.T) {
	if got := Score("milk", ""); got != 0.0 {
		t.Fatalf("expected 0.0 against empty, got %f", got)
	}
}

func TestScoreSingleEdit(t *testing.T) {
	// one substitution over seven characters
	got := Score("bananna", "banana")
	want := 1.0 - 1.0/7.0
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected %f, got %f", want, got)
	}
}

func TestScoreBounds(t *testing.T) {
	pairs := [][2]string{
		{"apple", "zebra"},
		{"a", "completely different thing"},
		{"Tomato", "Tomato Soup"},
		{"", "x"},
	}
	for _, pair := range pairs {
		got := Score(pair[0], pair[1])
		if got < 0.0 || got > 1.0 {
			t.Fatalf("score out of bounds for %q vs %q: %f", pair[0], pair[1], got)
		}
	}
}

func TestScoreSymmetry(t *testing.T) {
	if Score("chicken", "kitchen") != Score("kitchen", "chicken") {
		t.Fatal("expected symmetric scores")
	}
}
