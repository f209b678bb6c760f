package bot

import "github.com/Similization/kts-project/internal/models"

// Gateway is the narrow persistence contract the dispatcher needs. The
// gorm-backed GameService implements it; nothing in this package
// touches the database directly.
type Gateway interface {
	// LoadUnfinishedGames returns every game with no finish timestamp,
	// players and question preloaded.
	LoadUnfinishedGames() ([]models.Game, error)
	// CreateGame stores the game together with its players and fills
	// in the generated ids.
	CreateGame(g *models.Game) error
	SaveGame(g *models.Game) error
	SavePlayer(p *models.Player) error
	// PickRandomGameData returns a random question/answer pair.
	PickRandomGameData() (*models.GameData, error)
}

// UserDirectory resolves chat members to user records, creating the
// missing ones.
type UserDirectory interface {
	ResolveOrCreate(vkID int64, name, lastName, username string) (*models.User, error)
}

// MemberSource lists the members of a conversation.
type MemberSource interface {
	ChatMembers(chatID string) ([]ChatMember, error)
}

// Broadcaster pushes game snapshots to live watchers. May be nil.
type Broadcaster interface {
	BroadcastGame(chatID string, snapshot interface{})
}
