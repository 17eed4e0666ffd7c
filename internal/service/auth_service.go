package service

import (
	"context"
	"errors"
	"time"

	"fitbelievers/gym-server/internal/domain"
	"fitbelievers/gym-server/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrAuthenticationFailed = errors.New("authentication failed: invalid email or password")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
)

// AuthService issues identity tokens and manages user accounts. Tokens
// are also minted for identities authenticated by an external provider
// (the /jwt compatibility path), so IssueToken takes a bare payload.
type AuthService interface {
	IssueToken(email, name string) (string, error)
	CreateUser(ctx context.Context, user *domain.User, password string) (created bool, err error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
}

// authService implements the AuthService interface.
type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 7 * 24 * time.Hour
	}
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// Claims defines the structure of the JWT payload. Email is the
// identity key everywhere in the system.
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// IssueToken mints an HS256 token for the supplied identity.
func (s *authService) IssueToken(email, name string) (string, error) {
	if email == "" {
		return "", errors.New("email cannot be empty")
	}

	now := time.Now()
	claims := &Claims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "gym-server",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", ErrTokenGeneration
	}
	return signedToken, nil
}

// CreateUser registers an account if the email is not taken yet. A
// duplicate email is not an error: the call reports created=false and
// leaves the collection untouched. The password is optional; accounts
// backed by an external identity provider never set one.
func (s *authService) CreateUser(ctx context.Context, user *domain.User, password string) (bool, error) {
	if user.Email == "" {
		return false, errors.New("email cannot be empty")
	}

	_, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err == nil {
		return false, nil // already present, single-insert guarantee
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}

	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return false, ErrHashingFailed
		}
		user.PasswordHash = string(hashed)
	}
	if user.Role == "" {
		user.Role = domain.RoleMember
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// The unique index closes the check-then-insert race.
		if errors.Is(err, repository.ErrAlreadyExists) {
			return false, nil
		}
		return false, err
	}
	user.ID = id
	user.PasswordHash = ""
	return true, nil
}

// GetUserByEmail fetches a single account.
func (s *authService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// Login verifies a local credential and mints a token. Accounts without
// a stored password cannot log in this way.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, errors.New("email and password cannot be empty")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if user.PasswordHash == "" {
		return "", nil, ErrAuthenticationFailed
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := s.IssueToken(user.Email, user.Name)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	user.PasswordHash = ""
	return token, user, nil
}
