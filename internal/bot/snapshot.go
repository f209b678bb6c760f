package bot

import "github.com/Similization/kts-project/internal/game"

// GameSnapshot is the read-only view of a session pushed to WebSocket
// watchers after every processed update.
type GameSnapshot struct {
	ChatID   string           `json:"chat_id"`
	Question string           `json:"question"`
	Word     string           `json:"word"`
	Finished bool             `json:"finished"`
	Players  []PlayerSnapshot `json:"players"`
}

type PlayerSnapshot struct {
	Name       string `json:"name"`
	Score      int    `json:"score"`
	Eliminated bool   `json:"eliminated"`
	IsWinner   bool   `json:"is_winner"`
	HasTurn    bool   `json:"has_turn"`
}

func SnapshotOf(sess *game.Session) GameSnapshot {
	snap := GameSnapshot{
		ChatID:   sess.ChatID,
		Question: sess.Question,
		Word:     sess.Word().Revealed(),
		Finished: sess.Finished(),
	}
	for i, p := range sess.Roster().All() {
		snap.Players = append(snap.Players, PlayerSnapshot{
			Name:       p.DisplayName,
			Score:      p.Score,
			Eliminated: p.Eliminated,
			IsWinner:   p.IsWinner,
			HasTurn:    !sess.Finished() && i == sess.TurnIndex(),
		})
	}
	return snap
}
