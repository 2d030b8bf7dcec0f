package usecase

import (
	"crypto/subtle"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCredentialsNotConfigured = errors.New("admin credentials not configured")
	ErrInvalidCredentials       = errors.New("invalid credentials")
)

const sessionTTL = 12 * time.Hour

// IAuthUseCase gates the admin surface. Login checks the shared credential
// pair and issues an opaque bearer token; ValidateToken is what the admin
// middleware consults on every protected request.

type IAuthUseCase interface {
	Login(username, password string) (string, error)
	ValidateToken(token string) bool
}

// AuthUseCase holds sessions in memory. A restart logs every admin out, which
// is acceptable for a single-admin venue site.
type AuthUseCase struct {
	username string
	password string

	mu       sync.Mutex
	sessions map[string]time.Time
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(username, password string) *AuthUseCase {
	return &AuthUseCase{
		username: strings.TrimSpace(username),
		password: strings.TrimSpace(password),
		sessions: make(map[string]time.Time),
	}
}

func (u *AuthUseCase) Login(username, password string) (string, error) {
	if u.username == "" || u.password == "" {
		log.Printf("[auth][usecase] login refused: ADMIN_USERNAME/ADMIN_PASSWORD not set")
		return "", ErrCredentialsNotConfigured
	}

	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(u.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(password)), []byte(u.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	u.mu.Lock()
	u.sessions[token] = time.Now().Add(sessionTTL)
	u.mu.Unlock()
	log.Printf("[auth][usecase] admin session issued")
	return token, nil
}

func (u *AuthUseCase) ValidateToken(token string) bool {
	if token == "" {
		return false
	}
	u.mu.Lock()
	defer u.mu.Unlock()

	expiry, ok := u.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(u.sessions, token)
		return false
	}
	return true
}
