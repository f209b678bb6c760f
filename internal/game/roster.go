package game

// Participant is one player inside a session. The ID is the persisted
// player id, UserID links back to the VK user record.
type Participant struct {
	ID          uint
	UserID      uint
	VkID        int64
	DisplayName string
	Score       int
	Eliminated  bool
	IsWinner    bool
}

// Roster is the ordered list of participants of one session. The order
// is fixed at creation and defines turn rotation.
type Roster struct {
	participants []*Participant
}

func NewRoster(participants []*Participant) *Roster {
	return &Roster{participants: participants}
}

func (r *Roster) Len() int {
	return len(r.participants)
}

func (r *Roster) At(i int) *Participant {
	return r.participants[i]
}

// All returns the roster in turn order.
func (r *Roster) All() []*Participant {
	return r.participants
}

// Active returns the participants still in the game.
func (r *Roster) Active() []*Participant {
	active := make([]*Participant, 0, len(r.participants))
	for _, p := range r.participants {
		if !p.Eliminated {
			active = append(active, p)
		}
	}
	return active
}

func (r *Roster) ActiveCount() int {
	count := 0
	for _, p := range r.participants {
		if !p.Eliminated {
			count++
		}
	}
	return count
}

// IndexOf returns the roster index of the participant or -1.
func (r *Roster) IndexOf(participantID uint) int {
	for i, p := range r.participants {
		if p.ID == participantID {
			return i
		}
	}
	return -1
}

// IndexOfUser returns the roster index by VK user record id or -1.
func (r *Roster) IndexOfUser(userID uint) int {
	for i, p := range r.participants {
		if p.UserID == userID {
			return i
		}
	}
	return -1
}

// AdvanceTurn returns the index of the next non-eliminated participant
// after from, wrapping around. When nobody else is active it returns
// from unchanged; the session finishes before that can matter.
func (r *Roster) AdvanceTurn(from int) int {
	n := len(r.participants)
	for step := 1; step <= n; step++ {
		next := (from + step) % n
		if !r.participants[next].Eliminated {
			return next
		}
	}
	return from
}

func (r *Roster) Eliminate(i int) {
	r.participants[i].Eliminated = true
}
