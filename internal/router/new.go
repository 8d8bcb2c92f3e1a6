package router

import (
	"context"

	"jarvis-assistant/pkg/log"
)

// Router is the interface for intent routing
type Router interface {
	Classify(ctx context.Context, message string) RouterOutput
}

// KeywordRouter classifies user intent with first-match-wins keyword rules
type KeywordRouter struct {
	rules []Rule
	l     log.Logger
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a KeywordRouter over DefaultRules.
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(l log.Logger) *KeywordRouter {
	return NewWithRules(l, DefaultRules)
}

// NewWithRules creates a KeywordRouter over a caller-supplied rule table.
// The table is copied; later changes to rules do not affect the router.
func NewWithRules(l log.Logger, rules []Rule) *KeywordRouter {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &KeywordRouter{
		rules: cp,
		l:     l,
	}
}
