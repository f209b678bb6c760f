package vk

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Similization/kts-project/internal/bot"
)

const (
	apiBaseURL = "https://api.vk.com/method/"
	apiVersion = "5.131"
)

// Client is a minimal VK Bot API client covering what the game needs:
// group long polling, sending messages and listing chat members.
type Client struct {
	token      string
	groupID    string
	httpClient *http.Client

	// long-poll cursor, set by GetLongPollServer and advanced by Poll.
	server string
	key    string
	ts     string
}

func NewClient(token, groupID string) *Client {
	return &Client{
		token:      token,
		groupID:    groupID,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) call(method string, params url.Values) (json.RawMessage, error) {
	params.Set("access_token", c.token)
	params.Set("v", apiVersion)

	resp, err := c.httpClient.Get(apiBaseURL + method + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if apiResp.Error != nil {
		return nil, fmt.Errorf("vk: [%d] %s", apiResp.Error.Code, apiResp.Error.Message)
	}
	return apiResp.Response, nil
}

// GetLongPollServer acquires the group long-poll endpoint and resets
// the ts cursor.
func (c *Client) GetLongPollServer() error {
	params := url.Values{}
	params.Set("group_id", c.groupID)

	raw, err := c.call("groups.getLongPollServer", params)
	if err != nil {
		return err
	}

	var server longPollServer
	if err := json.Unmarshal(raw, &server); err != nil {
		return fmt.Errorf("unmarshal long poll server: %w", err)
	}
	c.server = server.Server
	c.key = server.Key
	c.ts = server.Ts
	return nil
}

// Poll blocks on the long-poll endpoint for up to wait seconds and
// returns the new message events as normalized chat updates.
func (c *Client) Poll(wait int) ([]bot.ChatUpdate, error) {
	if c.server == "" {
		if err := c.GetLongPollServer(); err != nil {
			return nil, err
		}
	}

	params := url.Values{}
	params.Set("act", "a_check")
	params.Set("key", c.key)
	params.Set("ts", c.ts)
	params.Set("wait", strconv.Itoa(wait))

	resp, err := c.httpClient.Get(c.server + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var lp longPollResponse
	if err := json.Unmarshal(data, &lp); err != nil {
		return nil, fmt.Errorf("unmarshal long poll: %w", err)
	}
	if lp.Failed != 0 {
		// Stale key or history cursor, re-acquire the server next time.
		c.server = ""
		return nil, fmt.Errorf("vk: long poll failed with code %d", lp.Failed)
	}
	c.ts = lp.Ts

	updates := make([]bot.ChatUpdate, 0, len(lp.Updates))
	for _, ev := range lp.Updates {
		if ev.Type != "message_new" {
			continue
		}
		msg := ev.Object.Message
		updates = append(updates, bot.ChatUpdate{
			MessageID: msg.ConversationMessageID,
			SenderID:  msg.FromID,
			ChatID:    strconv.FormatInt(msg.PeerID, 10),
			Text:      msg.Text,
		})
	}
	return updates, nil
}

// SendMessage posts text to the chat with an optional keyboard markup.
func (c *Client) SendMessage(chatID, text, keyboard string) error {
	params := url.Values{}
	params.Set("peer_id", chatID)
	params.Set("message", text)
	params.Set("random_id", strconv.FormatInt(rand.Int63(), 10))
	if keyboard != "" {
		params.Set("keyboard", keyboard)
	}

	_, err := c.call("messages.send", params)
	return err
}

// ChatMembers lists the profiles of a conversation.
func (c *Client) ChatMembers(chatID string) ([]bot.ChatMember, error) {
	params := url.Values{}
	params.Set("peer_id", chatID)
	params.Set("group_id", c.groupID)

	raw, err := c.call("messages.getConversationMembers", params)
	if err != nil {
		return nil, err
	}

	var members conversationMembers
	if err := json.Unmarshal(raw, &members); err != nil {
		return nil, fmt.Errorf("unmarshal members: %w", err)
	}

	result := make([]bot.ChatMember, 0, len(members.Profiles))
	for _, p := range members.Profiles {
		result = append(result, bot.ChatMember{
			VkID:       p.ID,
			Name:       p.FirstName,
			LastName:   p.LastName,
			ScreenName: p.ScreenName,
		})
	}
	return result, nil
}
