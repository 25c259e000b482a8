// Package chat turns a user's analysis history into conversational energy
// advice through a pluggable chat-completion backend.
package chat

import (
	"context"
	"errors"
)

// ErrNoReply is returned when the model never produced a user-facing answer
// within the tool-turn budget.
var ErrNoReply = errors.New("chat: no reply produced")

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type CompleteRequest struct {
	System   string
	Messages []Message
}

// Completer is the model boundary our advisor depends on.
type Completer interface {
	Complete(ctx context.Context, req CompleteRequest) (string, error)
}

// ToolCall is the structured shape the model returns when it wants data
// instead of answering directly.
type ToolCall struct {
	Action string `json:"action"` // "reply" | "tool"
	Tool   string `json:"tool,omitempty"`
	Reply  string `json:"reply,omitempty"`
}

// BuildToolCallJSONSchema constrains the model's structured turn: either a
// direct reply or a request for one of the named tools.
func BuildToolCallJSONSchema(toolNames []string) map[string]any {
	props := map[string]any{
		"action": map[string]any{"type": "string", "enum": []string{"reply", "tool"}},
		"reply":  map[string]any{"type": "string"},
	}
	if len(toolNames) > 0 {
		props["tool"] = map[string]any{"type": "string", "enum": toolNames}
	} else {
		props["tool"] = map[string]any{"type": "string"}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"action"},
	}
}
