package lambdaparser

import (
	"sync"
	"time"
)

// EventType represents the type of parser event.
type EventType string

const (
	EventRuleEntered EventType = "rule_entered"
	EventScopePushed EventType = "scope_pushed"
	EventScopePopped EventType = "scope_popped"
	EventParseFailed EventType = "parse_failed"
)

// Grammar rules reported by EventRuleEntered.
const (
	RuleExpr   = "expr"
	RuleAtom   = "atom"
	RuleLambda = "lambda"
	RuleGroup  = "group"
	RuleName   = "name"
	RuleBinder = "binder"
)

// Event is an observable parser event with typed data.
type Event struct {
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// EventEmitter manages event listeners and dispatches events.
type EventEmitter struct {
	mu        sync.RWMutex
	listeners []func(Event)
}

// NewEventEmitter creates a new EventEmitter.
func NewEventEmitter() *EventEmitter {
	return &EventEmitter{
		listeners: make([]func(Event), 0),
	}
}

// On registers a listener function to receive events.
// Listeners are called synchronously in registration order.
func (e *EventEmitter) On(listener func(Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

// Emit dispatches an event to all registered listeners.
func (e *EventEmitter) Emit(event Event) {
	e.mu.RLock()
	listeners := make([]func(Event), len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// ListenerCount returns the number of registered listeners.
func (e *EventEmitter) ListenerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners)
}

// RuleEnteredEvent creates a rule_entered event for the token the rule starts at.
func RuleEnteredEvent(rule string, tok Token) Event {
	return Event{
		Type:      EventRuleEntered,
		Timestamp: time.Now(),
		Data: map[string]any{
			"rule":    rule,
			"token":   tok.Kind.String(),
			"literal": tok.Literal,
			"line":    tok.Pos.Line,
			"column":  tok.Pos.Column,
		},
	}
}

// ScopePushedEvent creates a scope_pushed event.
func ScopePushedEvent(binder string, depth int) Event {
	return Event{
		Type:      EventScopePushed,
		Timestamp: time.Now(),
		Data: map[string]any{
			"binder": binder,
			"depth":  depth,
		},
	}
}

// ScopePoppedEvent creates a scope_popped event.
func ScopePoppedEvent(binder string, depth int) Event {
	return Event{
		Type:      EventScopePopped,
		Timestamp: time.Now(),
		Data: map[string]any{
			"binder": binder,
			"depth":  depth,
		},
	}
}

// ParseFailedEvent creates a parse_failed event.
func ParseFailedEvent(err error) Event {
	return Event{
		Type:      EventParseFailed,
		Timestamp: time.Now(),
		Data: map[string]any{
			"error": err.Error(),
		},
	}
}
