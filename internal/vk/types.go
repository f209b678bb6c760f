package vk

import "encoding/json"

type apiResponse struct {
	Response json.RawMessage `json:"response"`
	Error    *apiError       `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}

type longPollServer struct {
	Key    string `json:"key"`
	Server string `json:"server"`
	Ts     string `json:"ts"`
}

type longPollResponse struct {
	Ts      string          `json:"ts"`
	Updates []longPollEvent `json:"updates"`
	Failed  int             `json:"failed,omitempty"`
}

type longPollEvent struct {
	Type   string `json:"type"`
	Object struct {
		Message struct {
			ID                    int64  `json:"id"`
			FromID                int64  `json:"from_id"`
			PeerID                int64  `json:"peer_id"`
			ConversationMessageID int64  `json:"conversation_message_id"`
			Text                  string `json:"text"`
		} `json:"message"`
	} `json:"object"`
}

type conversationMembers struct {
	Profiles []profile `json:"profiles"`
}

type profile struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	ScreenName string `json:"screen_name"`
}
