package vk

import (
	"encoding/json"
	"log"

	"github.com/Similization/kts-project/internal/bot"
)

type keyboard struct {
	OneTime bool       `json:"one_time"`
	Inline  bool       `json:"inline"`
	Buttons [][]button `json:"buttons"`
}

type button struct {
	Action buttonAction `json:"action"`
	Color  string       `json:"color"`
}

type buttonAction struct {
	Type    string `json:"type"`
	Label   string `json:"label"`
	Payload string `json:"payload,omitempty"`
}

func mustKeyboard(k keyboard) string {
	raw, err := json.Marshal(k)
	if err != nil {
		log.Fatalf("marshal keyboard: %v", err)
	}
	return string(raw)
}

var keyboardFinish = mustKeyboard(keyboard{
	OneTime: true,
	Buttons: [][]button{{{
		Action: buttonAction{Type: "text", Label: "Завершить игру"},
		Color:  "negative",
	}}},
})

// renderKeyboard maps the dispatcher's keyboard kind to the serialized
// VK markup.
func renderKeyboard(kind bot.KeyboardKind) string {
	switch kind {
	case bot.KeyboardFinish:
		return keyboardFinish
	default:
		return ""
	}
}
