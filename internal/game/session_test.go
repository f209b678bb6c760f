package game

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func newTestSession(t *testing.T, answer string, players int) *Session {
	t.Helper()
	return NewSession(1, "2000000001", "Вопрос", answer, players,
		testRoster(players), rand.New(rand.NewSource(42)))
}

func validPoints(score int) bool {
	return score >= 10 && score <= 50 && score%10 == 0
}

func TestCorrectLetterKeepsTurn(t *testing.T) {
	sess := newTestSession(t, "cat", 3)
	current := sess.Current()

	outcome := sess.ProcessGuess(current.VkID, "a")

	if outcome.Rejected || outcome.Finished {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if sess.Word().Revealed() != "*a*" {
		t.Errorf("expected *a*, got %q", sess.Word().Revealed())
	}
	if !sess.Word().Tried('a') {
		t.Error("letter must be recorded as tried")
	}
	if sess.Current() != current {
		t.Error("correct letter must keep the turn")
	}
	if !validPoints(current.Score) {
		t.Errorf("score %d not in {10..50}", current.Score)
	}
	if sess.Finished() {
		t.Error("session must stay in play")
	}
}

func TestCorrectWordWins(t *testing.T) {
	sess := newTestSession(t, "cat", 3)
	current := sess.Current()
	sess.ProcessGuess(current.VkID, "a")
	scoreAfterLetter := current.Score

	outcome := sess.ProcessGuess(current.VkID, "cat")

	if !outcome.Finished || outcome.Rejected {
		t.Fatalf("expected a winning outcome, got %+v", outcome)
	}
	if !current.IsWinner {
		t.Error("guesser must be the winner")
	}
	if sess.FinishedAt == nil {
		t.Error("finish timestamp must be set")
	}
	if delta := current.Score - scoreAfterLetter; !validPoints(delta) {
		t.Errorf("win awarded %d points", delta)
	}
}

func TestWrongWordEliminates(t *testing.T) {
	sess := newTestSession(t, "cat", 3)
	current := sess.Current()

	outcome := sess.ProcessGuess(current.VkID, "dog")

	if outcome.Finished || outcome.Rejected {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if !current.Eliminated {
		t.Error("wrong word must eliminate the guesser")
	}
	if sess.Current() == current {
		t.Error("turn must advance after elimination")
	}
	if sess.Current().Eliminated {
		t.Error("turn moved to an eliminated participant")
	}
}

func TestWrongWordWithTwoActiveFinishes(t *testing.T) {
	sess := newTestSession(t, "cat", 3)
	// Leave two active participants.
	first := sess.Current()
	sess.ProcessGuess(first.VkID, "dog")

	current := sess.Current()
	outcome := sess.ProcessGuess(current.VkID, "rat")

	if !outcome.Finished {
		t.Fatal("one active participant left must finish the session")
	}
	if !current.Eliminated {
		t.Error("guesser must be eliminated")
	}
	if sess.FinishedAt == nil {
		t.Error("finish timestamp must be set")
	}
	if sess.Current() != current {
		t.Error("turn must not advance on the finishing elimination")
	}
}

func TestWrongTurnRejected(t *testing.T) {
	sess := newTestSession(t, "cat", 3)
	current := sess.Current()

	var other *Participant
	for _, p := range sess.Roster().All() {
		if p != current {
			other = p
			break
		}
	}

	outcome := sess.ProcessGuess(other.VkID, "a")

	if !outcome.Rejected {
		t.Fatal("guess out of turn must be rejected")
	}
	if !strings.Contains(outcome.Text, current.DisplayName) {
		t.Errorf("outcome must name whose turn it is: %q", outcome.Text)
	}
	if sess.Word().Revealed() != "***" {
		t.Error("rejection must not mutate the word")
	}
	if other.Score != 0 || current.Score != 0 {
		t.Error("rejection must not award points")
	}
	if sess.Current() != current {
		t.Error("rejection must not move the turn")
	}
}

func TestWrongLetterAdvancesWithoutElimination(t *testing.T) {
	sess := newTestSession(t, "cat", 3)
	current := sess.Current()

	outcome := sess.ProcessGuess(current.VkID, "z")

	if outcome.Rejected || outcome.Finished {
		t.Fatalf("unexpected outcome: %+v", outcome)
	}
	if current.Eliminated {
		t.Error("wrong letter must not eliminate")
	}
	if sess.Current() == current {
		t.Error("wrong letter must advance the turn")
	}
}

func TestRepeatedLetterAdvancesTurn(t *testing.T) {
	sess := newTestSession(t, "cat", 3)
	first := sess.Current()
	sess.ProcessGuess(first.VkID, "a")
	score := first.Score

	outcome := sess.ProcessGuess(first.VkID, "a")

	if outcome.Rejected {
		t.Fatal("repeated letter is a miss, not a rejection")
	}
	if !strings.Contains(outcome.Text, "уже была") {
		t.Errorf("outcome must say the letter was already tried: %q", outcome.Text)
	}
	if first.Score != score {
		t.Error("repeated letter must not award points")
	}
	if sess.Current() == first {
		t.Error("repeated letter must advance the turn")
	}
}

func TestCompletingWordByLettersWins(t *testing.T) {
	sess := newTestSession(t, "go", 3)
	current := sess.Current()

	sess.ProcessGuess(current.VkID, "g")
	outcome := sess.ProcessGuess(current.VkID, "o")

	if !outcome.Finished {
		t.Fatal("opening the last letter must finish the session")
	}
	if !current.IsWinner {
		t.Error("the opener must be the winner")
	}
	if sess.Word().Revealed() != "go" {
		t.Errorf("expected go, got %q", sess.Word().Revealed())
	}
}

func TestSingleLetterFromLastActiveIsWordGuess(t *testing.T) {
	sess := newTestSession(t, "cat", 3)
	// Eliminate everyone but one.
	sess.ProcessGuess(sess.Current().VkID, "dog")
	sess.Roster().Eliminate(sess.TurnIndex())
	sess.turn = sess.Roster().AdvanceTurn(sess.turn)
	last := sess.Current()

	outcome := sess.ProcessGuess(last.VkID, "c")

	// One active player left: a single letter counts as a word attempt
	// and the miss ends the game.
	if !outcome.Finished {
		t.Fatal("last player's miss must finish the session")
	}
	if !last.Eliminated {
		t.Error("last player must be eliminated on a wrong word")
	}
}

func TestFinishedSessionRejectsGuesses(t *testing.T) {
	sess := newTestSession(t, "cat", 3)
	winner := sess.Current()
	sess.ProcessGuess(winner.VkID, "cat")

	word := sess.Word().Revealed()
	turn := sess.TurnIndex()
	score := winner.Score
	finishedAt := sess.FinishedAt

	outcome := sess.ProcessGuess(winner.VkID, "a")

	if !outcome.Rejected {
		t.Fatal("finished session must reject guesses")
	}
	if sess.Word().Revealed() != word || sess.TurnIndex() != turn || winner.Score != score {
		t.Error("guess after finish mutated the session")
	}
	if sess.FinishedAt != finishedAt {
		t.Error("finish timestamp must be set exactly once")
	}
}

func TestForceFinish(t *testing.T) {
	sess := newTestSession(t, "cat", 3)

	sess.ForceFinish()
	if !sess.Finished() {
		t.Fatal("force finish must terminate the session")
	}

	first := sess.FinishedAt
	sess.ForceFinish()
	if sess.FinishedAt != first {
		t.Error("second force finish must not reset the timestamp")
	}
}

func TestEmptyGuessRejected(t *testing.T) {
	sess := newTestSession(t, "cat", 3)

	outcome := sess.ProcessGuess(sess.Current().VkID, "   ")
	if !outcome.Rejected {
		t.Error("blank message must be rejected")
	}
}

func TestRestoreSessionKeepsTurn(t *testing.T) {
	roster := testRoster(3)
	created := time.Now().Add(-time.Hour)

	sess := RestoreSession(7, "2000000001", "Вопрос", "cat", "*a*", 3,
		roster.At(2).ID, created, roster, rand.New(rand.NewSource(1)))

	if sess.Current() != roster.At(2) {
		t.Error("restore must hand the turn to the stored current player")
	}
	if sess.Word().Revealed() != "*a*" {
		t.Errorf("expected restored mask, got %q", sess.Word().Revealed())
	}
	if !sess.CreatedAt.Equal(created) {
		t.Error("restore must keep the original creation time")
	}
}

func TestRestoreSessionEliminatedCurrentPicksActive(t *testing.T) {
	roster := testRoster(3)
	roster.At(1).Eliminated = true

	sess := RestoreSession(7, "2000000001", "Вопрос", "cat", "***", 3,
		roster.At(1).ID, time.Now(), roster, rand.New(rand.NewSource(1)))

	if sess.Current().Eliminated {
		t.Error("restore must not give the turn to an eliminated participant")
	}
}
