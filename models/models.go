package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatMessage represents one side of a widget conversation turn
type ChatMessage struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID    string             `bson:"session_id" json:"session_id"`
	Role         string             `bson:"role" json:"role"` // "user" or "bot"
	Content      string             `bson:"content" json:"content"`
	Language     string             `bson:"language" json:"language"`
	Service      string             `bson:"service,omitempty" json:"service,omitempty"`
	Confidence   int                `bson:"confidence,omitempty" json:"confidence,omitempty"`
	ResponseType string             `bson:"response_type,omitempty" json:"response_type,omitempty"`
	Suggestions  []string           `bson:"suggestions,omitempty" json:"suggestions,omitempty"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
}

// Response types attached to bot messages
const (
	ResponseCasual  = "casual"
	ResponsePricing = "pricing"
	ResponseService = "service"
	ResponseContact = "contact"
	ResponseFAQ     = "faq"
	ResponseGeneral = "general"
)

// DetectionResult is the per-turn output of the service detector.
// It is never persisted on its own; the interesting bits are copied onto
// the stored ChatMessage.
type DetectionResult struct {
	Service         string   `json:"service,omitempty"`
	Confidence      int      `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	MatchedPatterns []string `json:"matched_patterns,omitempty"`
}

// Detected reports whether any service matched.
func (r DetectionResult) Detected() bool {
	return r.Service != "" && r.Confidence > 0
}
