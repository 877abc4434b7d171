package primary

import (
	"context"

	"github.com/example/doze/internal/models"
)

// ChatChannel selects a chat history.
type ChatChannel string

// Chat channels.
const (
	ChatMentor     ChatChannel = "mentor"
	ChatOnboarding ChatChannel = "onboarding"
)

// ChatService stores append-only chat histories.
type ChatService interface {
	// History returns the messages of a channel in order.
	History(ctx context.Context, channel ChatChannel) []models.ChatMessage

	// Append adds a message to a channel.
	Append(ctx context.Context, channel ChatChannel, role, content string) (*models.ChatMessage, error)

	// Clear deletes a channel's history.
	Clear(ctx context.Context, channel ChatChannel) error
}
