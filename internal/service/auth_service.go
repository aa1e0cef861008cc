package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"postboard/internal/config"
	"postboard/internal/models"
	"postboard/internal/repository"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context, tokenString string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	cfg      *config.Config
	validate *validator.Validate
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		cfg:      cfg,
		validate: validator.New(),
	}
}

// Register creates a new account. The email is validated before any storage
// call; uniqueness is ultimately enforced by the database constraint, the
// lookup here only gives the friendly error in the common case.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := s.validate.Var(req.Email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEmail, req.Email)
	}

	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if existingUser != nil {
		return nil, ErrEmailTaken
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	user := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		PasswordHash: passwordHash,
	}

	err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		// Two registrations racing on the same email: the unique constraint
		// decides, and the loser gets the same error as the pre-check.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return user, nil
}

// Login returns a signed access token. A missing account and a wrong password
// produce the same ErrInvalidCredentials value.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.Email, user.UserID, s.cfg.AccessTokenDuration)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}

	return accessToken, nil
}

// CurrentUser resolves a bearer token to its user record. Expired tokens,
// malformed tokens and tokens whose subject no longer exists all come back as
// ErrUnauthorized.
func (s *authService) CurrentUser(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: invalid authentication credentials", ErrUnauthorized)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: user not found", ErrUnauthorized)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	return user, nil
}
