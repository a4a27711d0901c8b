package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatSession is one widget visitor's conversation state. The context is
// persisted here so a page reload can restore the conversation.
type ChatSession struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	SessionID    string              `bson:"session_id" json:"session_id"`
	Language     string              `bson:"language" json:"language"`
	Context      ConversationContext `bson:"context" json:"context"`
	MessageCount int                 `bson:"message_count" json:"message_count"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}
