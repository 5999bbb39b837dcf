// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Ar-Dante/Quiz-platform/internal/access"
	"github.com/Ar-Dante/Quiz-platform/internal/auth"
	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/repository"
	"github.com/google/uuid"
)

type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	external       *auth.ExternalVerifier
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	external *auth.ExternalVerifier,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		external:       external,
	}
}

type SignupInput struct {
	Email           string `json:"email" validate:"required,email"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserInput struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1"`
	LastName  *string `json:"last_name"`
	City      *string `json:"city"`
	Phone     *string `json:"phone"`
	Links     *string `json:"links"`
	Avatar    *string `json:"avatar"`
	Password  *string `json:"password" validate:"omitempty,min=8"`
}

type AuthOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Signup(ctx context.Context, input SignupInput) (*AuthOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Status:       model.StatusActive,
		PasswordHash: hashed,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "user signed up", "user_id", user.ID)

	return s.issue(user)
}

// SignIn checks the password and rehashes it when the stored parameters are stale.
func (s *UserService) SignIn(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.PasswordHash == "" || user.Status != model.StatusActive {
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}

	if s.passwordHasher.NeedsRehash(user.PasswordHash) {
		if hashed, err := s.passwordHasher.Hash(input.Password); err == nil {
			user.PasswordHash = hashed
			if err := s.repo.Update(ctx, user); err != nil {
				slog.WarnContext(ctx, "password rehash failed", "user_id", user.ID, "error", err)
			}
		}
	}

	return s.issue(user)
}

// ExternalLogin trusts the external provider's email claim and creates the
// local user on first sight.
func (s *UserService) ExternalLogin(ctx context.Context, token string) (*AuthOutput, error) {
	if s.external == nil {
		return nil, domain.ErrInvalidToken
	}
	email, err := s.external.Email(token)
	if err != nil {
		slog.DebugContext(ctx, "external token rejected", "error", err)
		return nil, domain.ErrInvalidToken
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		user = &model.User{Email: email, FirstName: email, Status: model.StatusActive}
		if err := s.repo.Create(ctx, user); err != nil {
			return nil, err
		}
		slog.InfoContext(ctx, "user created from external identity", "user_id", user.ID)
	} else if err != nil {
		return nil, err
	}

	return s.issue(user)
}

func (s *UserService) issue(user *model.User) (*AuthOutput, error) {
	token, err := s.tokenManager.Generate(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	return &AuthOutput{User: user, Token: token}, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, page repository.Page) ([]*model.User, int64, error) {
	return s.repo.FindAllPaginated(ctx, page)
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput, caller uuid.UUID) (*model.User, error) {
	if err := access.Self(caller, id); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	assign(&user.FirstName, input.FirstName)
	assign(&user.LastName, input.LastName)
	assign(&user.City, input.City)
	assign(&user.Phone, input.Phone)
	assign(&user.Links, input.Links)
	assign(&user.Avatar, input.Avatar)
	if input.Password != nil {
		hashed, err := s.passwordHasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.PasswordHash = hashed
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id, caller uuid.UUID) error {
	if err := access.Self(caller, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "user deleted", "user_id", id)
	return nil
}

func assign[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
