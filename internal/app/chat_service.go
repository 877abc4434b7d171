package app

import (
	"context"
	"fmt"

	"github.com/example/doze/internal/core/calendar"
	"github.com/example/doze/internal/models"
	"github.com/example/doze/internal/ports/primary"
	"github.com/example/doze/internal/ports/secondary"
)

// ChatServiceImpl implements the ChatService interface.
type ChatServiceImpl struct {
	docs documents
	opts options
}

// NewChatService creates a new ChatService with injected dependencies.
func NewChatService(kv secondary.KVStore, opts ...Option) *ChatServiceImpl {
	o := buildOptions(opts)
	return &ChatServiceImpl{docs: documents{kv: kv, logger: o.logger}, opts: o}
}

// History returns the messages of a channel.
func (s *ChatServiceImpl) History(ctx context.Context, channel primary.ChatChannel) []models.ChatMessage {
	key, err := chatKey(channel)
	if err != nil {
		return []models.ChatMessage{}
	}
	var msgs []models.ChatMessage
	if !s.docs.read(ctx, key, &msgs) || msgs == nil {
		return []models.ChatMessage{}
	}
	return msgs
}

// Append adds a message to a channel.
func (s *ChatServiceImpl) Append(ctx context.Context, channel primary.ChatChannel, role, content string) (*models.ChatMessage, error) {
	key, err := chatKey(channel)
	if err != nil {
		return nil, err
	}
	if role != models.RoleUser && role != models.RoleAssistant {
		return nil, fmt.Errorf("unknown chat role %q", role)
	}

	msg := models.ChatMessage{
		ID:        s.opts.newID(),
		Role:      role,
		Content:   content,
		Timestamp: calendar.FormatTimestamp(s.opts.now()),
	}
	msgs := append(s.History(ctx, channel), msg)
	if err := s.docs.write(ctx, key, msgs); err != nil {
		return nil, fmt.Errorf("failed to save chat message: %w", err)
	}
	return &msg, nil
}

// Clear deletes a channel's history.
func (s *ChatServiceImpl) Clear(ctx context.Context, channel primary.ChatChannel) error {
	key, err := chatKey(channel)
	if err != nil {
		return err
	}
	if err := s.docs.kv.Remove(ctx, key); err != nil {
		return fmt.Errorf("failed to clear %s chat: %w", channel, err)
	}
	return nil
}

func chatKey(channel primary.ChatChannel) (string, error) {
	switch channel {
	case primary.ChatMentor:
		return secondary.KeyChatHistory, nil
	case primary.ChatOnboarding:
		return secondary.KeyOnboardingChat, nil
	default:
		return "", fmt.Errorf("unknown chat channel %q", channel)
	}
}

// Ensure ChatServiceImpl implements the interface
var _ primary.ChatService = (*ChatServiceImpl)(nil)
