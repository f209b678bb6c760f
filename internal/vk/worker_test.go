package vk

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Similization/kts-project/internal/bot"
	"github.com/Similization/kts-project/internal/models"
)

type sentMessage struct {
	chatID   string
	text     string
	keyboard string
}

type captureSender struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (s *captureSender) SendMessage(chatID, text, keyboard string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentMessage{chatID, text, keyboard})
	return nil
}

type stubGateway struct{}

func (stubGateway) LoadUnfinishedGames() ([]models.Game, error)   { return nil, nil }
func (stubGateway) CreateGame(g *models.Game) error               { return nil }
func (stubGateway) SaveGame(g *models.Game) error                 { return nil }
func (stubGateway) SavePlayer(p *models.Player) error             { return nil }
func (stubGateway) PickRandomGameData() (*models.GameData, error) { return nil, errors.New("empty") }

type stubUsers struct{}

func (stubUsers) ResolveOrCreate(vkID int64, name, lastName, username string) (*models.User, error) {
	return &models.User{VkID: vkID, Username: username}, nil
}

type stubMembers struct{}

func (stubMembers) ChatMembers(chatID string) ([]bot.ChatMember, error) { return nil, nil }

func TestEnqueueShardsByChat(t *testing.T) {
	d := bot.NewDispatcher(stubGateway{}, stubUsers{}, stubMembers{}, nil)
	p := NewWorkerPool(&captureSender{}, d, 4)

	// The same chat must always land in the same queue.
	p.Enqueue(bot.ChatUpdate{MessageID: 1, ChatID: "2000000001", Text: "a"})
	p.Enqueue(bot.ChatUpdate{MessageID: 2, ChatID: "2000000001", Text: "b"})

	loaded := 0
	for _, q := range p.queues {
		if n := len(q); n > 0 {
			loaded++
			if n != 2 {
				t.Errorf("expected both updates in one queue, got %d", n)
			}
		}
	}
	if loaded != 1 {
		t.Errorf("updates spread over %d queues", loaded)
	}
}

func TestWorkerPoolDeliversReplies(t *testing.T) {
	d := bot.NewDispatcher(stubGateway{}, stubUsers{}, stubMembers{}, nil)
	sender := &captureSender{}
	p := NewWorkerPool(sender, d, 2)

	p.Start()
	// No live session, so the dispatcher answers with the usage help.
	p.Enqueue(bot.ChatUpdate{MessageID: 1, SenderID: 101, ChatID: "2000000001", Text: "привет"})
	p.Stop()

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.sent) != 1 {
		t.Fatalf("expected one sent message, got %d", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.chatID != "2000000001" {
		t.Errorf("reply went to chat %q", msg.chatID)
	}
	if !strings.Contains(msg.text, "Создай игру для:") {
		t.Errorf("expected the usage help, got %q", msg.text)
	}
	if msg.keyboard != "" {
		t.Errorf("help reply must carry no keyboard, got %q", msg.keyboard)
	}
}

func TestRenderKeyboard(t *testing.T) {
	if renderKeyboard(bot.KeyboardNone) != "" {
		t.Error("no keyboard must render to an empty string")
	}

	raw := renderKeyboard(bot.KeyboardFinish)
	var k keyboard
	if err := json.Unmarshal([]byte(raw), &k); err != nil {
		t.Fatalf("finish keyboard is not valid JSON: %v", err)
	}
	if !k.OneTime {
		t.Error("finish keyboard must be one_time")
	}
	if len(k.Buttons) != 1 || len(k.Buttons[0]) != 1 {
		t.Fatalf("unexpected button layout: %+v", k.Buttons)
	}
	btn := k.Buttons[0][0]
	if btn.Action.Label != "Завершить игру" {
		t.Errorf("unexpected label %q", btn.Action.Label)
	}
	if btn.Color != "negative" {
		t.Errorf("unexpected color %q", btn.Color)
	}
}
