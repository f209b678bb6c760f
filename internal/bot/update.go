package bot

// ChatUpdate is one normalized inbound chat message, as delivered by
// the VK long-poll transport.
type ChatUpdate struct {
	MessageID int64
	SenderID  int64
	ChatID    string
	Text      string
}

// KeyboardKind tells the transport which reply keyboard to attach.
// The bot layer never deals with the VK keyboard JSON itself.
type KeyboardKind int

const (
	KeyboardNone KeyboardKind = iota
	KeyboardFinish
)

// OutboundMessage is one chat reply produced by the dispatcher.
type OutboundMessage struct {
	ChatID   string
	Text     string
	Keyboard KeyboardKind
}

// ChatMember is a conversation member profile resolved by the
// transport.
type ChatMember struct {
	VkID       int64
	Name       string
	LastName   string
	ScreenName string
}
