package models

import "time"

// Limits enforced on every context update.
const (
	MaxConversationDepth = 10
	MaxFlowEntries       = 20
	MaxFlowMessageLen    = 100
)

// FlowEntry is one line of the rolling interaction log.
type FlowEntry struct {
	Timestamp       time.Time `bson:"timestamp" json:"timestamp"`
	UserMessage     string    `bson:"user_message" json:"user_message"` // truncated to MaxFlowMessageLen
	DetectedService string    `bson:"detected_service,omitempty" json:"detected_service,omitempty"`
	ContextService  string    `bson:"context_service,omitempty" json:"context_service,omitempty"`
}

// ConversationContext tracks what one visitor has been discussing.
// It is owned by a single chat session and is only ever replaced wholesale
// by the context store (copy-on-write), never mutated in place.
type ConversationContext struct {
	CurrentService     string      `bson:"current_service,omitempty" json:"current_service,omitempty"`
	ServiceHistory     []string    `bson:"service_history,omitempty" json:"service_history"`
	ConversationDepth  int         `bson:"conversation_depth" json:"conversation_depth"`
	LastServiceMention time.Time   `bson:"last_service_mention,omitempty" json:"last_service_mention,omitempty"`
	Flow               []FlowEntry `bson:"flow,omitempty" json:"flow"`
}

// NewConversationContext returns a fresh, empty context for a new session.
func NewConversationContext() *ConversationContext {
	return &ConversationContext{
		ServiceHistory: []string{},
		Flow:           []FlowEntry{},
	}
}

// Clone returns a deep copy so updates never alias the caller's slices.
func (c *ConversationContext) Clone() *ConversationContext {
	next := &ConversationContext{
		CurrentService:     c.CurrentService,
		ConversationDepth:  c.ConversationDepth,
		LastServiceMention: c.LastServiceMention,
		ServiceHistory:     make([]string, len(c.ServiceHistory)),
		Flow:               make([]FlowEntry, len(c.Flow)),
	}
	copy(next.ServiceHistory, c.ServiceHistory)
	copy(next.Flow, c.Flow)
	return next
}

// HasDiscussed reports whether a service already appears in the history.
func (c *ConversationContext) HasDiscussed(service string) bool {
	for _, s := range c.ServiceHistory {
		if s == service {
			return true
		}
	}
	return false
}
