package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"speaker-bot/models"
)

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CreateUser creates a new dashboard user
func CreateUser(ctx context.Context, user *models.User, password string) error {
	collection := GetDatabase().Collection("users")

	existing := collection.FindOne(ctx, bson.M{"email": user.Email})
	if existing.Err() != mongo.ErrNoDocuments {
		return fmt.Errorf("user already exists with this email")
	}

	if !models.IsValidRole(string(user.Role)) {
		return fmt.Errorf("invalid role: %s", user.Role)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	user.IsActive = true

	if _, err := collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("User created", "userID", user.ID.Hex(), "email", user.Email, "role", user.Role)
	return nil
}

// GetUserByEmail retrieves a user by email
func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	collection := GetDatabase().Collection("users")

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// UpdateUserLastLogin records a successful login
func UpdateUserLastLogin(ctx context.Context, userID string) error {
	collection := GetDatabase().Collection("users")

	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID: %w", err)
	}

	_, err = collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"last_login": time.Now(), "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}

// EnsureAdminUser creates the bootstrap admin account from configuration if
// no user exists with that email yet. A missing admin config is not an
// error; the dashboard just stays locked until one is provisioned.
func EnsureAdminUser(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		slog.Info("No bootstrap admin configured")
		return nil
	}

	collection := GetDatabase().Collection("users")
	err := collection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	admin := &models.User{
		Email:    email,
		FullName: "Administrator",
		Role:     models.RoleAdmin,
	}
	return CreateUser(ctx, admin, password)
}
