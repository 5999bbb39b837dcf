package service

import (
	"context"
	"testing"
	"time"

	"github.com/Ar-Dante/Quiz-platform/internal/auth"
	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/mocks"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fastHash = auth.PasswordConfig{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32}

func newUserService(t *testing.T, externalSecret string) (*UserService, *mocks.MockUserRepositoryIface) {
	repo := mocks.NewMockUserRepositoryIface(gomock.NewController(t))
	svc := NewUserService(
		repo,
		auth.NewPasswordHasherWithConfig(fastHash),
		auth.NewTokenManager("test-secret", time.Hour),
		auth.NewExternalVerifier(externalSecret),
	)
	return svc, repo
}

func TestSignup(t *testing.T) {
	ctx := context.Background()
	input := SignupInput{
		Email:           "ada@example.com",
		FirstName:       "Ada",
		Password:        "correct horse",
		ConfirmPassword: "correct horse",
	}

	t.Run("success", func(t *testing.T) {
		svc, repo := newUserService(t, "")
		repo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, domain.ErrUserNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *model.User) error {
			u.ID = uuid.New()
			return nil
		})

		out, err := svc.Signup(ctx, input)
		require.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.NotEqual(t, input.Password, out.User.PasswordHash)
		assert.Equal(t, model.StatusActive, out.User.Status)
	})

	t.Run("email taken", func(t *testing.T) {
		svc, repo := newUserService(t, "")
		repo.EXPECT().FindByEmail(ctx, input.Email).Return(&model.User{ID: uuid.New()}, nil)

		_, err := svc.Signup(ctx, input)
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("passwords differ", func(t *testing.T) {
		svc, _ := newUserService(t, "")
		bad := input
		bad.ConfirmPassword = "something else"

		_, err := svc.Signup(ctx, bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestSignIn(t *testing.T) {
	ctx := context.Background()
	hasher := auth.NewPasswordHasherWithConfig(fastHash)
	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	user := &model.User{ID: uuid.New(), Email: "ada@example.com", Status: model.StatusActive, PasswordHash: hash}

	t.Run("success", func(t *testing.T) {
		svc, repo := newUserService(t, "")
		repo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

		out, err := svc.SignIn(ctx, LoginInput{Email: user.Email, Password: "correct horse"})
		require.NoError(t, err)

		claims, err := auth.NewTokenManager("test-secret", time.Hour).Validate(out.Token)
		require.NoError(t, err)
		id, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, user.ID, id)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, repo := newUserService(t, "")
		repo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)

		_, err := svc.SignIn(ctx, LoginInput{Email: user.Email, Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, repo := newUserService(t, "")
		repo.EXPECT().FindByEmail(ctx, "who@example.com").Return(nil, domain.ErrUserNotFound)

		_, err := svc.SignIn(ctx, LoginInput{Email: "who@example.com", Password: "whatever"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestExternalLogin(t *testing.T) {
	ctx := context.Background()
	secret := "external-secret"
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Email: "new@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	t.Run("creates the user on first login", func(t *testing.T) {
		svc, repo := newUserService(t, secret)
		repo.EXPECT().FindByEmail(ctx, "new@example.com").Return(nil, domain.ErrUserNotFound)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *model.User) error {
			assert.Empty(t, u.PasswordHash)
			u.ID = uuid.New()
			return nil
		})

		out, err := svc.ExternalLogin(ctx, signed)
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", out.User.Email)
	})

	t.Run("disabled", func(t *testing.T) {
		svc, _ := newUserService(t, "")
		_, err := svc.ExternalLogin(ctx, signed)
		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("wrong signature", func(t *testing.T) {
		svc, _ := newUserService(t, "another-secret")
		_, err := svc.ExternalLogin(ctx, signed)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	city := "Kyiv"

	t.Run("someone else", func(t *testing.T) {
		svc, _ := newUserService(t, "")
		_, err := svc.Update(ctx, id, UpdateUserInput{City: &city}, uuid.New())
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("partial update", func(t *testing.T) {
		svc, repo := newUserService(t, "")
		user := &model.User{ID: id, FirstName: "Ada", City: "London"}
		repo.EXPECT().FindByID(ctx, id).Return(user, nil)
		repo.EXPECT().Update(ctx, user).Return(nil)

		got, err := svc.Update(ctx, id, UpdateUserInput{City: &city}, id)
		require.NoError(t, err)
		assert.Equal(t, "Kyiv", got.City)
		assert.Equal(t, "Ada", got.FirstName)
	})
}

func TestDeleteUserSelfOnly(t *testing.T) {
	svc, _ := newUserService(t, "")
	err := svc.Delete(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}
