package usecase

import (
	"context"
	"testing"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/pkg/token"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(userRepo *MockUserRepository) (AuthService, *token.Service) {
	tokens := token.NewService("test-secret", 15*time.Minute)
	repo := &repository.Repository{User: userRepo}
	return NewAuthService(repo, tokens, zap.NewNop()), tokens
}

func TestSignup(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, tokens := newAuthService(userRepo)

	userRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, nil)
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		// The stored hash must verify against the plaintext and never be
		// the plaintext itself
		return u.Username == "alice" &&
			u.PasswordHash != "password123" &&
			utils.CheckPasswordHash("password123", u.PasswordHash)
	})).Return(nil)

	resp, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "bearer", resp.TokenType)

	// The issued token resolves back to the new user
	subject, err := tokens.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	userRepo.AssertExpectations(t)
}

func TestSignupUsernameTaken(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, _ := newAuthService(userRepo)

	existing := &entity.User{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		Username:   "alice",
	}
	userRepo.On("FindByUsername", mock.Anything, "alice").Return(existing, nil)

	_, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSignupEmailRegistered(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, _ := newAuthService(userRepo)

	existing := &entity.User{
		BaseSimple: entity.BaseSimple{ID: uuid.New()},
		Username:   "someone-else",
		Email:      "alice@example.com",
	}
	userRepo.On("FindByUsername", mock.Anything, "alice").Return(nil, nil)
	userRepo.On("FindByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

	_, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogin(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, tokens := newAuthService(userRepo)

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := &entity.User{
		BaseSimple:   entity.BaseSimple{ID: uuid.New()},
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}
	userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "alice",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "bearer", resp.TokenType)

	subject, err := tokens.Validate(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, _ := newAuthService(userRepo)

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := &entity.User{
		BaseSimple:   entity.BaseSimple{ID: uuid.New()},
		Username:     "alice",
		PasswordHash: hash,
	}
	userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
	userRepo.On("FindByUsername", mock.Anything, "nobody").Return(nil, nil)

	_, wrongPassErr := svc.Login(context.Background(), &request.LoginRequest{
		Username: "alice",
		Password: "wrong-password",
	})
	require.Error(t, wrongPassErr)

	_, unknownUserErr := svc.Login(context.Background(), &request.LoginRequest{
		Username: "nobody",
		Password: "password123",
	})
	require.Error(t, unknownUserErr)

	// Same message for both, so responses cannot enumerate usernames
	assert.Equal(t, wrongPassErr.Error(), unknownUserErr.Error())
	assert.Contains(t, wrongPassErr.Error(), "invalid credentials")
}

func TestSignupValidation(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc, _ := newAuthService(userRepo)

	_, err := svc.Signup(context.Background(), &request.SignupRequest{
		Username: "al",
		Email:    "not-an-email",
		Password: "123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	userRepo.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
}
