package services

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"speaker-bot/models"
)

var (
	mongoClient *mongo.Client
	database    *mongo.Database
)

// GetDatabase returns the MongoDB database instance
func GetDatabase() *mongo.Database {
	return database
}

// InitMongoDB initializes MongoDB connection
func InitMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	slog.Info("Connected to MongoDB")
	mongoClient = client

	return client, nil
}

// InitServices initializes all services
func InitServices(client *mongo.Client, databaseName string) {
	database = client.Database(databaseName)

	// Create indexes
	createIndexes()
}

// createIndexes creates necessary database indexes
func createIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	messagesCollection := database.Collection("messages")
	messagesCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"session_id": 1}},
		{Keys: bson.M{"service": 1}},
		{Keys: bson.M{"timestamp": -1}},
	})

	chatSessionsCollection := database.Collection("chat_sessions")
	chatSessionsCollection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"session_id": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.M{"updated_at": -1}},
	})

	usersCollection := database.Collection("users")
	usersCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	})
}

// SaveMessage saves a chat message to database
func SaveMessage(ctx context.Context, message *models.ChatMessage) error {
	collection := database.Collection("messages")
	_, err := collection.InsertOne(ctx, message)
	return err
}

// GetSessionMessages fetches the transcript of one widget session, oldest
// first, limited to the most recent entries.
func GetSessionMessages(ctx context.Context, sessionID string, limit int) ([]models.ChatMessage, error) {
	collection := database.Collection("messages")

	if limit <= 0 {
		limit = 50
	}

	findOptions := options.Find().
		SetSort(bson.M{"timestamp": -1}).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, bson.M{"session_id": sessionID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	// Reverse into chronological order for the widget
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

// CountMessages returns the total number of stored messages, optionally
// restricted to one role.
func CountMessages(ctx context.Context, role string) (int64, error) {
	collection := database.Collection("messages")

	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}

	return collection.CountDocuments(ctx, filter)
}

// BreakdownEntry is one bucket of an aggregate count.
type BreakdownEntry struct {
	Key   string `bson:"_id" json:"key"`
	Count int64  `bson:"count" json:"count"`
}

// ServiceBreakdown counts user messages per detected service.
func ServiceBreakdown(ctx context.Context) ([]BreakdownEntry, error) {
	return aggregateBreakdown(ctx, "$service")
}

// LanguageBreakdown counts user messages per language.
func LanguageBreakdown(ctx context.Context) ([]BreakdownEntry, error) {
	return aggregateBreakdown(ctx, "$language")
}

func aggregateBreakdown(ctx context.Context, field string) ([]BreakdownEntry, error) {
	collection := database.Collection("messages")

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"role": "user", field[1:]: bson.M{"$nin": bson.A{nil, ""}}}}},
		{{Key: "$group", Value: bson.M{"_id": field, "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []BreakdownEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
