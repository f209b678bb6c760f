package game

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Outcome is the result of processing one guess, already rendered for
// the chat. Rejected outcomes carry no state change and must not be
// persisted. Finished signals the terminal transition to the caller.
type Outcome struct {
	Text     string
	Finished bool
	Rejected bool
}

type guessKind int

const (
	wordGuess guessKind = iota
	letterGuess
)

// Session is one running game scoped to a single chat. It is not
// internally synchronized: the dispatcher serializes calls per chat.
type Session struct {
	ID            uint
	ChatID        string
	Question      string
	CreatedAt     time.Time
	FinishedAt    *time.Time
	RequiredCount int

	roster *Roster
	word   *WordProgress
	turn   int
	rng    *rand.Rand
}

// NewSession starts a session in the awaiting-guess state. The first
// player is picked with rng, which the caller seeds.
func NewSession(id uint, chatID, question, answer string, requiredCount int, roster *Roster, rng *rand.Rand) *Session {
	return &Session{
		ID:            id,
		ChatID:        chatID,
		Question:      question,
		CreatedAt:     time.Now(),
		RequiredCount: requiredCount,
		roster:        roster,
		word:          NewWordProgress(answer),
		turn:          rng.Intn(roster.Len()),
		rng:           rng,
	}
}

// RestoreSession rebuilds an unfinished session from persisted state.
// When the stored current player is unknown or eliminated, a random
// active participant takes the turn.
func RestoreSession(id uint, chatID, question, answer, revealed string, requiredCount int, currentPlayerID uint, createdAt time.Time, roster *Roster, rng *rand.Rand) *Session {
	s := &Session{
		ID:            id,
		ChatID:        chatID,
		Question:      question,
		CreatedAt:     createdAt,
		RequiredCount: requiredCount,
		roster:        roster,
		word:          RestoreWordProgress(answer, revealed),
		rng:           rng,
	}
	s.turn = roster.IndexOf(currentPlayerID)
	if s.turn < 0 || roster.At(s.turn).Eliminated {
		s.turn = rng.Intn(roster.Len())
		if roster.At(s.turn).Eliminated {
			s.turn = roster.AdvanceTurn(s.turn)
		}
	}
	return s
}

func (s *Session) Roster() *Roster       { return s.roster }
func (s *Session) Word() *WordProgress   { return s.word }
func (s *Session) Current() *Participant { return s.roster.At(s.turn) }
func (s *Session) TurnIndex() int        { return s.turn }
func (s *Session) Finished() bool        { return s.FinishedAt != nil }

// ProcessGuess consumes one chat message from the player with senderID
// and applies the word/letter state machine. Wrong-turn messages and
// guesses after the finish are rejected without any mutation.
func (s *Session) ProcessGuess(senderID int64, raw string) Outcome {
	if s.Finished() {
		return Outcome{Text: "Игра уже завершена.", Finished: true, Rejected: true}
	}

	current := s.Current()
	if current.VkID != senderID {
		return Outcome{
			Text:     fmt.Sprintf("Сейчас не ваш ход! Ходит: %s", current.DisplayName),
			Rejected: true,
		}
	}

	guess := strings.TrimSpace(raw)
	if guess == "" {
		return Outcome{Text: "Назовите букву или слово целиком.", Rejected: true}
	}

	switch s.classify(guess) {
	case wordGuess:
		return s.guessWord(current, guess)
	default:
		return s.guessLetter(current, []rune(guess)[0])
	}
}

// classify picks the guess branch: anything longer than one letter is a
// word attempt, and the last remaining player may only guess the word.
func (s *Session) classify(guess string) guessKind {
	if len([]rune(guess)) > 1 || s.roster.ActiveCount() == 1 {
		return wordGuess
	}
	return letterGuess
}

func (s *Session) guessWord(current *Participant, guess string) Outcome {
	if s.word.CheckAnswer(guess) {
		current.Score += s.generatePoints()
		current.IsWinner = true
		s.finish()
		return Outcome{
			Text:     fmt.Sprintf("%s угадал слово «%s»! Игра завершена!", current.DisplayName, s.word.Revealed()),
			Finished: true,
		}
	}

	s.roster.Eliminate(s.turn)
	if s.roster.ActiveCount() <= 1 {
		s.finish()
		return Outcome{
			Text:     fmt.Sprintf("%s не угадал слово и выбывает из игры. Игра завершена!", current.DisplayName),
			Finished: true,
		}
	}

	s.turn = s.roster.AdvanceTurn(s.turn)
	return Outcome{
		Text: fmt.Sprintf("%s не угадал слово и выбывает из игры. Следующим ходит: %s",
			current.DisplayName, s.Current().DisplayName),
	}
}

func (s *Session) guessLetter(current *Participant, letter rune) Outcome {
	alreadyTried := s.word.Tried(letter)

	if s.word.Reveal(letter) {
		current.Score += s.generatePoints()
		if s.word.IsComplete() {
			current.IsWinner = true
			s.finish()
			return Outcome{
				Text:     fmt.Sprintf("%s открыл последнюю букву! Слово: %s. Игра завершена!", current.DisplayName, s.word.Revealed()),
				Finished: true,
			}
		}
		return Outcome{
			Text: fmt.Sprintf("Буква «%c» есть в слове! Слово: %s\n%s продолжает ход.",
				letter, s.word.Revealed(), current.DisplayName),
		}
	}

	s.turn = s.roster.AdvanceTurn(s.turn)
	if alreadyTried {
		return Outcome{
			Text: fmt.Sprintf("Буква «%c» уже была. Следующим ходит: %s", letter, s.Current().DisplayName),
		}
	}
	return Outcome{
		Text: fmt.Sprintf("Буквы «%c» нет в слове. Следующим ходит: %s", letter, s.Current().DisplayName),
	}
}

// ForceFinish terminates the session without a winning guess. It is a
// no-op on an already finished session.
func (s *Session) ForceFinish() {
	if !s.Finished() {
		s.finish()
	}
}

func (s *Session) finish() {
	now := time.Now()
	s.FinishedAt = &now
}

// generatePoints returns 10, 20, 30, 40 or 50.
func (s *Session) generatePoints() int {
	return (s.rng.Intn(5) + 1) * 10
}
