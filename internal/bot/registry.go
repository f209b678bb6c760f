package bot

import (
	"sync"

	"github.com/Similization/kts-project/internal/game"
	"github.com/Similization/kts-project/internal/models"
)

// seenLimit bounds the per-chat duplicate-suppression set.
const seenLimit = 1024

// chatEntry owns all mutable state of one live chat. The entry mutex
// serializes guess processing for the chat; game.Session itself is not
// synchronized.
type chatEntry struct {
	mu      sync.Mutex
	session *game.Session
	model   *models.Game
	seen    map[int64]struct{}
}

// markSeen records a processed message id and reports whether it was
// already handled. Delivery is at-least-once, so replays must be
// swallowed.
func (e *chatEntry) markSeen(messageID int64) bool {
	if _, ok := e.seen[messageID]; ok {
		return true
	}
	if len(e.seen) >= seenLimit {
		e.seen = make(map[int64]struct{})
	}
	e.seen[messageID] = struct{}{}
	return false
}

// Registry holds the live sessions keyed by chat id. Lookup is O(1);
// the map itself is guarded, entries carry their own lock.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*chatEntry
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*chatEntry)}
}

func (r *Registry) Get(chatID string) *chatEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[chatID]
}

// Register adds the entry unless the chat already has a live session.
func (r *Registry) Register(chatID string, e *chatEntry) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[chatID]; exists {
		return false
	}
	r.entries[chatID] = e
	return true
}

func (r *Registry) Remove(chatID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, chatID)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
