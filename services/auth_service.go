package services

import (
	"context"
	"errors"
	"time"

	"github.com/thasarathi1830/AI-FITNESS/models"
	"github.com/thasarathi1830/AI-FITNESS/store"
	"github.com/thasarathi1830/AI-FITNESS/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthService handles account registration and login.
type AuthService struct {
	store  store.Store
	tokens *utils.TokenService
}

func NewAuthService(st store.Store, tokens *utils.TokenService) *AuthService {
	return &AuthService{store: st, tokens: tokens}
}

// Register creates an account and returns the user with a fresh access
// token. The email must not already be registered.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*models.User, string, error) {
	users := s.store.Collection(store.Users)

	var existing models.User
	err := users.FindOne(ctx, bson.M{"email": email}, &existing)
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNoDocuments) {
		return nil, "", err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:          email,
		HashedPassword: hashed,
		Name:           name,
		CreatedAt:      time.Now().UTC(),
	}
	id, err := users.InsertOne(ctx, user)
	if err != nil {
		return nil, "", err
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		user.ID = oid
	}

	token, err := s.tokens.Issue(map[string]interface{}{"user_id": id})
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with an access token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	err := s.store.Collection(store.Users).FindOne(ctx, bson.M{"email": email}, &user)
	if errors.Is(err, store.ErrNoDocuments) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if !utils.CheckPasswordHash(password, user.HashedPassword) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(map[string]interface{}{"user_id": user.ID.Hex()})
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}
