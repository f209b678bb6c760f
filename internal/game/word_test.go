package game

import "testing"

func TestNewWordProgressMasksEverything(t *testing.T) {
	w := NewWordProgress("кот")

	if w.Revealed() != "***" {
		t.Errorf("expected ***, got %q", w.Revealed())
	}
	if len([]rune(w.Revealed())) != len([]rune(w.Answer())) {
		t.Errorf("revealed length %d != answer length %d", len([]rune(w.Revealed())), len([]rune(w.Answer())))
	}
	if w.IsComplete() {
		t.Error("fresh word must not be complete")
	}
}

func TestRevealOpensAllMatches(t *testing.T) {
	w := NewWordProgress("молоко")

	if !w.Reveal('о') {
		t.Fatal("expected reveal to succeed")
	}
	if w.Revealed() != "*о*о*о" {
		t.Errorf("expected *о*о*о, got %q", w.Revealed())
	}
	if !w.Tried('о') {
		t.Error("letter must be recorded as tried")
	}
}

func TestRevealIsCaseInsensitive(t *testing.T) {
	w := NewWordProgress("Cat")

	if !w.Reveal('c') {
		t.Fatal("expected reveal to succeed")
	}
	// The answer's own casing is kept.
	if w.Revealed() != "C**" {
		t.Errorf("expected C**, got %q", w.Revealed())
	}
}

func TestRevealIdempotent(t *testing.T) {
	w := NewWordProgress("cat")

	if !w.Reveal('a') {
		t.Fatal("first reveal must succeed")
	}
	before := w.Revealed()

	if w.Reveal('a') {
		t.Error("second reveal of the same letter must fail")
	}
	if w.Revealed() != before {
		t.Errorf("state changed on repeated reveal: %q -> %q", before, w.Revealed())
	}
}

func TestRevealAbsentLetter(t *testing.T) {
	w := NewWordProgress("cat")

	if w.Reveal('z') {
		t.Error("absent letter must not reveal")
	}
	if w.Revealed() != "***" {
		t.Errorf("state changed on miss: %q", w.Revealed())
	}
	if w.Tried('z') {
		t.Error("missed letter must not be recorded as tried")
	}
}

func TestIsComplete(t *testing.T) {
	w := NewWordProgress("go")

	w.Reveal('g')
	if w.IsComplete() {
		t.Error("word with masked positions must not be complete")
	}
	w.Reveal('o')
	if !w.IsComplete() {
		t.Error("fully revealed word must be complete")
	}
}

func TestCheckAnswer(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		candidate string
		want      bool
	}{
		{"exact", "кот", "кот", true},
		{"different case", "кот", "КОТ", true},
		{"wrong word", "кот", "кит", false},
		{"wrong length", "кот", "коты", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWordProgress(tt.answer)
			if got := w.CheckAnswer(tt.candidate); got != tt.want {
				t.Errorf("CheckAnswer(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestCheckAnswerRevealsCapitalized(t *testing.T) {
	w := NewWordProgress("кот")

	if !w.CheckAnswer("кот") {
		t.Fatal("expected match")
	}
	if w.Revealed() != "Кот" {
		t.Errorf("expected Кот, got %q", w.Revealed())
	}
	if len([]rune(w.Revealed())) != len([]rune(w.Answer())) {
		t.Error("length invariant broken after full-word reveal")
	}
}

func TestCheckAnswerMissKeepsState(t *testing.T) {
	w := NewWordProgress("кот")
	w.Reveal('о')
	before := w.Revealed()

	if w.CheckAnswer("кит") {
		t.Fatal("expected mismatch")
	}
	if w.Revealed() != before {
		t.Errorf("state changed on wrong answer: %q -> %q", before, w.Revealed())
	}
}

func TestRestoreWordProgress(t *testing.T) {
	w := RestoreWordProgress("молоко", "*о*о*о")

	if w.Revealed() != "*о*о*о" {
		t.Errorf("expected restored mask, got %q", w.Revealed())
	}
	if !w.Tried('о') {
		t.Error("opened letters must be restored as tried")
	}
	if w.Reveal('о') {
		t.Error("restored letter must not reveal again")
	}
	if !w.Reveal('м') {
		t.Error("fresh letter must still reveal after restore")
	}
}

func TestRestoreWordProgressBadMaskFallsBack(t *testing.T) {
	w := RestoreWordProgress("кот", "*******")

	if w.Revealed() != "***" {
		t.Errorf("mismatched mask must reset progress, got %q", w.Revealed())
	}
}
