package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"speaker-bot/models"
)

// CreateChatSession creates a new widget session with a fresh context.
func CreateChatSession(ctx context.Context, language string) (*models.ChatSession, error) {
	now := time.Now()
	session := &models.ChatSession{
		SessionID: uuid.New().String(),
		Language:  language,
		Context:   *models.NewConversationContext(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	collection := GetDatabase().Collection("chat_sessions")
	if _, err := collection.InsertOne(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}

	return session, nil
}

// GetChatSession retrieves a widget session by its ID. Returns nil when the
// session does not exist.
func GetChatSession(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	collection := GetDatabase().Collection("chat_sessions")

	var session models.ChatSession
	err := collection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&session)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}

	return &session, nil
}

// SaveChatContext persists the updated conversation context after a turn and
// bumps the session's message counter.
func SaveChatContext(ctx context.Context, sessionID string, convCtx *models.ConversationContext, language string) error {
	collection := GetDatabase().Collection("chat_sessions")

	result, err := collection.UpdateOne(
		ctx,
		bson.M{"session_id": sessionID},
		bson.M{
			"$set": bson.M{
				"context":    convCtx,
				"language":   language,
				"updated_at": time.Now(),
			},
			"$inc": bson.M{"message_count": 1},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to save chat context: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("chat session not found")
	}

	return nil
}

// ResetChatSession replaces the session's context with a fresh one. The
// stored transcript is kept.
func ResetChatSession(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	collection := GetDatabase().Collection("chat_sessions")

	fresh := models.NewConversationContext()
	result := collection.FindOneAndUpdate(
		ctx,
		bson.M{"session_id": sessionID},
		bson.M{"$set": bson.M{"context": fresh, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var session models.ChatSession
	if err := result.Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to reset chat session: %w", err)
	}

	return &session, nil
}

// ListChatSessions returns widget sessions for the dashboard, most recently
// active first.
func ListChatSessions(ctx context.Context, limit, skip int) ([]models.ChatSession, int64, error) {
	collection := GetDatabase().Collection("chat_sessions")

	totalCount, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = 20
	}

	findOptions := options.Find().
		SetSort(bson.M{"updated_at": -1}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var sessions []models.ChatSession
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, 0, err
	}

	return sessions, totalCount, nil
}

// CleanupStaleChatSessions removes widget sessions with no activity since
// the cutoff.
func CleanupStaleChatSessions(ctx context.Context, olderThan time.Duration) (int64, error) {
	collection := GetDatabase().Collection("chat_sessions")

	cutoff := time.Now().Add(-olderThan)
	result, err := collection.DeleteMany(ctx, bson.M{
		"updated_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup stale chat sessions: %w", err)
	}

	return result.DeletedCount, nil
}
