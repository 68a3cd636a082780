package domain

import "context"

// ChatReply is the assistant answer plus the canned follow-up
// suggestions shown under it.
type ChatReply struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions"`
}

// ChatHealth reports whether the AI proxy is usable.
type ChatHealth struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	APIKeyConfigured bool   `json:"apiKeyConfigured"`
}

type ChatUsecase interface {
	Ask(ctx context.Context, message string) (*ChatReply, error)
	JobSearch(ctx context.Context, userQuery string) (string, error)
	Fallback() string
	Health() ChatHealth
}
