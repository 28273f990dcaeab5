package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mandhitown/backend/internal/middleware"
	"github.com/mandhitown/backend/internal/models"
	"github.com/mandhitown/backend/internal/store"
)

// ErrInvalidCredentials is returned for a failed login without revealing
// whether the email exists.
var ErrInvalidCredentials = errors.New("invalid email or password")

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// tokenLifetime bounds every issued session.
const tokenLifetime = 12 * time.Hour

// AuthService is the credential service: it registers users, checks
// passwords and issues and validates session tokens.
type AuthService struct {
	users     *store.UserStore
	jwtSecret string
	blocklist TokenBlocklist
}

func NewAuthService(users *store.UserStore, jwtSecret string, blocklist TokenBlocklist) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		blocklist: blocklist,
	}
}

// Signup registers a new user and returns a session token. The name
// defaults to the email local part when omitted.
func (s *AuthService) Signup(email, password, name string) (string, models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return "", models.User{}, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(password) < 6 {
		return "", models.User{}, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DisplayNameFor(email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", models.User{}, err
	}

	user, err := s.users.Create(models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
		AuthProvider: "password",
	})
	if err != nil {
		return "", models.User{}, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

// Login checks the credentials and returns a fresh session token.
func (s *AuthService) Login(email, password string) (string, models.User, error) {
	user, err := s.users.GetByEmail(strings.TrimSpace(email))
	if err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", models.User{}, err
	}
	return token, user, nil
}

// Logout revokes the token id for the remainder of the token's lifetime.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.blocklist.Revoke(ctx, tokenID, ttl)
}

// GetUser retrieves a registered user by email identity.
func (s *AuthService) GetUser(email string) (models.User, error) {
	return s.users.GetByEmail(email)
}

func (s *AuthService) generateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"identity": user.Email,
		"name":     user.Name,
		"jti":      uuid.New().String(),
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a session token and rejects revoked
// token ids.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*middleware.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	identity, ok := claims["identity"].(string)
	if !ok || identity == "" {
		return nil, errors.New("invalid token claims")
	}
	tokenID, _ := claims["jti"].(string)
	name, _ := claims["name"].(string)

	expiresAt := time.Time{}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}

	if tokenID != "" {
		revoked, err := s.blocklist.IsRevoked(ctx, tokenID)
		if err != nil {
			return nil, fmt.Errorf("blocklist check failed: %w", err)
		}
		if revoked {
			return nil, errors.New("token has been revoked")
		}
	}

	return &middleware.TokenClaims{
		Identity:  identity,
		Name:      name,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}
