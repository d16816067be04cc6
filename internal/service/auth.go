package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/GunarsK-portfolio/recipe-service/internal/identity"
	"github.com/GunarsK-portfolio/recipe-service/internal/models"
	"github.com/GunarsK-portfolio/recipe-service/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SignupInput holds the fields accepted when registering an account.
type SignupInput struct {
	Username string
	ImageURL *string
	Bio      *string
	Password string
}

// AuthService handles account registration and session identity checks.
// Session cookies themselves are written by the HTTP layer.
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	CheckSession(ctx context.Context) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	cost     int
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{
		userRepo: userRepo,
		cost:     bcrypt.DefaultCost,
	}
}

// dummyDigest is compared against when a username is unknown so that
// missing accounts cost the same bcrypt work as wrong passwords.
var dummyDigest = sync.OnceValue(func() []byte {
	digest, _ := bcrypt.GenerateFromPassword([]byte("recipe-service-dummy-password"), bcrypt.DefaultCost)
	return digest
})

func (s *authService) Signup(ctx context.Context, input SignupInput) (*models.User, error) {
	if input.Password == "" {
		return nil, newValidationError("Password must be present")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, newValidationError("Password could not be accepted")
	}

	user := &models.User{
		Username:       normalizeUsername(input.Username),
		ImageURL:       optional(input.ImageURL),
		Bio:            optional(input.Bio),
		PasswordDigest: string(digest),
	}
	if problems := user.Validate(); len(problems) > 0 {
		return nil, newValidationError(problems...)
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(dummyDigest(), []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordDigest), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *authService) CheckSession(ctx context.Context) (*models.User, error) {
	userID, ok := identity.UserID(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	return user, nil
}

// normalizeUsername is applied identically on signup and login.
func normalizeUsername(username string) string {
	return strings.TrimSpace(username)
}

// optional normalizes blank strings to nil.
func optional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
