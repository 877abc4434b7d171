// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrConcurrentWrite is returned by stores that detect a lost update.
var ErrConcurrentWrite = errors.New("document changed since it was read")

// KVStore is a durable map of string keys to JSON documents.
// Every write replaces the whole document stored under the key.
type KVStore interface {
	// Get returns the document under key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value under key, replacing any previous document.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the document under key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// MultiRemove deletes every listed key.
	MultiRemove(ctx context.Context, keys ...string) error
}

// Document keys.
const (
	KeyPillarGoals         = "doze_pillar_goals"
	KeyWeeklyTasks         = "doze_weekly_tasks"
	KeyOneThing            = "doze_one_thing"
	KeyChatHistory         = "doze_chat_history"
	KeyTwelveWeekPlans     = "doze_twelve_week_plans"
	KeyOnboardingCompleted = "doze_onboarding_completed_v2"
	KeyOnboardingChat      = "doze_onboarding_chat"
	KeyGovernanceRituals   = "doze_governance_rituals"
)

// AllKeys lists every document key owned by the application.
var AllKeys = []string{
	KeyPillarGoals,
	KeyWeeklyTasks,
	KeyOneThing,
	KeyChatHistory,
	KeyTwelveWeekPlans,
	KeyOnboardingCompleted,
	KeyOnboardingChat,
	KeyGovernanceRituals,
}
