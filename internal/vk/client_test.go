package vk

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func pollClient(serverURL string) *Client {
	c := NewClient("token", "1")
	c.server = serverURL
	c.key = "key"
	c.ts = "10"
	return c
}

func TestPollParsesNewMessages(t *testing.T) {
	var gotTs string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTs = r.URL.Query().Get("ts")
		w.Write([]byte(`{
			"ts": "11",
			"updates": [
				{"type": "message_new", "object": {"message": {
					"id": 5, "from_id": 101, "peer_id": 2000000001,
					"conversation_message_id": 42, "text": "кот"
				}}},
				{"type": "message_typing_state", "object": {}}
			]
		}`))
	}))
	defer srv.Close()

	c := pollClient(srv.URL)
	updates, err := c.Poll(25)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}

	if gotTs != "10" {
		t.Errorf("request carried ts %q, want 10", gotTs)
	}
	if len(updates) != 1 {
		t.Fatalf("expected one message_new update, got %d", len(updates))
	}
	upd := updates[0]
	if upd.MessageID != 42 || upd.SenderID != 101 || upd.ChatID != "2000000001" || upd.Text != "кот" {
		t.Errorf("unexpected update: %+v", upd)
	}
	if c.ts != "11" {
		t.Errorf("cursor not advanced, ts = %q", c.ts)
	}
}

func TestPollEmptyBatchAdvancesCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ts": "12", "updates": []}`))
	}))
	defer srv.Close()

	c := pollClient(srv.URL)
	updates, err := c.Poll(25)
	if err != nil {
		t.Fatalf("poll: %v", err)
	}
	if len(updates) != 0 {
		t.Errorf("expected no updates, got %d", len(updates))
	}
	if c.ts != "12" {
		t.Errorf("cursor not advanced, ts = %q", c.ts)
	}
}

func TestPollFailureResetsServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"failed": 2}`))
	}))
	defer srv.Close()

	c := pollClient(srv.URL)
	if _, err := c.Poll(25); err == nil {
		t.Fatal("expected an error on failed long poll")
	}
	if c.server != "" {
		t.Error("failed poll must drop the server so it is re-acquired")
	}
}
