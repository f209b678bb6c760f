package game

import "unicode"

// MaskRune hides letters of the answer that nobody guessed yet.
const MaskRune = '*'

// WordProgress tracks the partially revealed answer and the set of
// letters already tried. Comparison is case-insensitive, the revealed
// string keeps the original casing of the answer.
type WordProgress struct {
	answer   []rune
	revealed []rune
	tried    map[rune]struct{}
}

func NewWordProgress(answer string) *WordProgress {
	runes := []rune(answer)
	revealed := make([]rune, len(runes))
	for i := range revealed {
		revealed[i] = MaskRune
	}
	return &WordProgress{
		answer:   runes,
		revealed: revealed,
		tried:    make(map[rune]struct{}),
	}
}

// RestoreWordProgress rebuilds progress from a persisted masked word.
// The tried set is recovered from the already opened positions.
func RestoreWordProgress(answer, revealed string) *WordProgress {
	w := NewWordProgress(answer)
	runes := []rune(revealed)
	if len(runes) != len(w.answer) {
		return w
	}
	w.revealed = runes
	for _, r := range runes {
		if r != MaskRune {
			w.tried[unicode.ToLower(r)] = struct{}{}
		}
	}
	return w
}

// Reveal opens every position of the answer matching letter. It returns
// false without mutating anything when the letter was already tried or
// does not occur in the answer.
func (w *WordProgress) Reveal(letter rune) bool {
	l := unicode.ToLower(letter)
	if _, ok := w.tried[l]; ok {
		return false
	}
	found := false
	for _, r := range w.answer {
		if unicode.ToLower(r) == l {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	w.tried[l] = struct{}{}
	for i, r := range w.answer {
		if unicode.ToLower(r) == l {
			w.revealed[i] = r
		}
	}
	return true
}

// Tried reports whether the letter was already guessed correctly.
func (w *WordProgress) Tried(letter rune) bool {
	_, ok := w.tried[unicode.ToLower(letter)]
	return ok
}

// IsComplete reports whether every position of the word is open.
func (w *WordProgress) IsComplete() bool {
	for _, r := range w.revealed {
		if r == MaskRune {
			return false
		}
	}
	return true
}

// CheckAnswer compares candidate against the answer ignoring case. On a
// match the whole word is opened using the capitalized candidate.
func (w *WordProgress) CheckAnswer(candidate string) bool {
	runes := []rune(candidate)
	if len(runes) != len(w.answer) {
		return false
	}
	for i, r := range runes {
		if unicode.ToLower(r) != unicode.ToLower(w.answer[i]) {
			return false
		}
	}
	runes[0] = unicode.ToUpper(runes[0])
	w.revealed = runes
	return true
}

func (w *WordProgress) Answer() string {
	return string(w.answer)
}

func (w *WordProgress) Revealed() string {
	return string(w.revealed)
}

// TriedLetters returns the guessed letters in no particular order.
func (w *WordProgress) TriedLetters() []string {
	letters := make([]string, 0, len(w.tried))
	for r := range w.tried {
		letters = append(letters, string(r))
	}
	return letters
}
