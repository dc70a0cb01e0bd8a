package services

import (
	"fmt"
	"time"

	"github.com/chatup/backend/internal/models"
	"github.com/chatup/backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// TokenPair is the credential pair returned by sign-in and refresh
type TokenPair struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// AuthService issues, validates and rotates session-backed bearer tokens
type AuthService struct {
	users      repositories.Repository[models.User]
	sessions   repositories.Repository[models.Session]
	tokenTTL   time.Duration
	refreshTTL time.Duration
}

// NewAuthService creates a new AuthService
func NewAuthService(users repositories.Repository[models.User], sessions repositories.Repository[models.Session], tokenTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		tokenTTL:   tokenTTL,
		refreshTTL: refreshTTL,
	}
}

// SignUp registers a new user. It returns false when the email is already
// registered.
func (s *AuthService) SignUp(name, email, password string) (bool, error) {
	exists, err := s.users.Exists("email = ?", email)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Passhash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return false, fmt.Errorf("failed to create user: %w", err)
	}
	return true, nil
}

// SignIn verifies the credentials and, on success, persists a fresh session
// and returns its token pair. A nil result means unknown email or wrong
// password; the caller gets no detail on which.
func (s *AuthService) SignIn(email, password string) (*TokenPair, error) {
	user, err := s.users.First("email = ?", email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Passhash), []byte(password)) != nil {
		return nil, nil
	}

	token, err := GenerateSecureToken(defaultTokenBytes)
	if err != nil {
		return nil, err
	}
	refreshToken, err := GenerateSecureToken(defaultTokenBytes)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		UserID:       user.ID,
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(s.tokenTTL).Unix(),
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &TokenPair{Token: token, RefreshToken: refreshToken}, nil
}

// Validate resolves a bearer token to its owning user. Expired or unknown
// tokens resolve to nil.
func (s *AuthService) Validate(token string) (*models.User, error) {
	session, err := s.sessions.First("token = ? AND expires_at > ?", token, time.Now().Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return nil, nil
	}
	return s.users.Get(session.UserID)
}

// Refresh rotates both tokens of the session identified by the refresh
// token and extends its expiration. The previous access token becomes
// unusable once the row is replaced. Nil means unknown or expired.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	session, err := s.sessions.First("refresh_token = ?", refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return nil, nil
	}
	if session.ExpiresAt < time.Now().Unix() {
		return nil, nil
	}

	newToken, err := GenerateSecureToken(defaultTokenBytes)
	if err != nil {
		return nil, err
	}
	newRefreshToken, err := GenerateSecureToken(defaultTokenBytes)
	if err != nil {
		return nil, err
	}

	session.Token = newToken
	session.RefreshToken = newRefreshToken
	session.ExpiresAt = time.Now().Add(s.refreshTTL).Unix()
	if err := s.sessions.Save(session); err != nil {
		return nil, fmt.Errorf("failed to rotate session: %w", err)
	}

	return &TokenPair{Token: newToken, RefreshToken: newRefreshToken}, nil
}

// SignOut deletes the session behind the token. It returns false when no
// such session exists.
func (s *AuthService) SignOut(token string) (bool, error) {
	session, err := s.sessions.First("token = ?", token)
	if err != nil {
		return false, fmt.Errorf("failed to look up session: %w", err)
	}
	if session == nil {
		return false, nil
	}
	if err := s.sessions.Delete(session); err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}
	return true, nil
}
