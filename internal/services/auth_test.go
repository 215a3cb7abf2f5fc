package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"

	"workorder-system/internal/dto"
	"workorder-system/internal/entities"
	apperrors "workorder-system/pkg/errors"
	"workorder-system/pkg/service"
)

func newAuthFixture(t *testing.T, password string) (AuthServiceInterface, *entities.User) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entities.User{
		ID:           uuid.New(),
		Email:        "admin@workorder.local",
		PasswordHash: string(hash),
		FullName:     "Administrator",
	}

	repo := &mockUserRepo{
		findByEmail: func(ctx context.Context, email string) (*entities.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, apperrors.ErrNotFound
		},
		findByID: func(ctx context.Context, id uuid.UUID) (*entities.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, apperrors.ErrNotFound
		},
	}

	jwtSvc := service.NewJWTService("test-secret", time.Minute, time.Hour)
	return NewAuthService(repo, jwtSvc, zaptest.NewLogger(t)), user
}

type mockUserRepo struct {
	findByEmail func(context.Context, string) (*entities.User, error)
	findByID    func(context.Context, uuid.UUID) (*entities.User, error)
	create      func(context.Context, entities.User) (*entities.User, error)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return m.findByEmail(ctx, email)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return m.findByID(ctx, id)
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	return m.create(ctx, user)
}

func TestAuthService_Login(t *testing.T) {
	svc, user := newAuthFixture(t, "s3cret-pass")

	tokens, err := svc.Login(context.Background(), dto.LoginDTO{Email: user.Email, Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, user := newAuthFixture(t, "s3cret-pass")

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: user.Email, Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), dto.LoginDTO{Email: "nobody@workorder.local", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials, "unknown email must not be distinguishable from a bad password")
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, user := newAuthFixture(t, "s3cret-pass")

	tokens, err := svc.Login(context.Background(), dto.LoginDTO{Email: user.Email, Password: "s3cret-pass"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), dto.RefreshTokenDTO{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestAuthService_RefreshRejectsAccessToken(t *testing.T) {
	svc, user := newAuthFixture(t, "s3cret-pass")

	tokens, err := svc.Login(context.Background(), dto.LoginDTO{Email: user.Email, Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), dto.RefreshTokenDTO{RefreshToken: tokens.AccessToken})
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}
