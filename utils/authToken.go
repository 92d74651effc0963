package utils

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/o1egl/paseto"
)

const (
	// SessionTokenExpiry is how long a local session token stays valid.
	SessionTokenExpiry = 24 * time.Hour
)

var ErrTokenExpired = errors.New("token expired")

// TokenClaims is the payload of a local session token.
type TokenClaims struct {
	TokenID string    `json:"jti"`
	UserID  string    `json:"userId"`
	Email   string    `json:"email"`
	Expiry  time.Time `json:"expiry"`
}

// TokenMaker issues and validates PASETO v2 local tokens.
type TokenMaker struct {
	key    []byte
	paseto *paseto.V2
	now    func() time.Time
}

// NewTokenMaker checks that the symmetric key has the correct length (32 bytes).
func NewTokenMaker(symmetricKey string) (*TokenMaker, error) {
	if len(symmetricKey) != 32 {
		return nil, fmt.Errorf("symmetric key must be 32 bytes long, got %d", len(symmetricKey))
	}
	return &TokenMaker{key: []byte(symmetricKey), paseto: paseto.NewV2(), now: time.Now}, nil
}

// Generate creates a token for the user that expires after SessionTokenExpiry.
func (m *TokenMaker) Generate(userID, email string) (string, *TokenClaims, error) {
	claims := &TokenClaims{
		TokenID: uuid.New().String(),
		UserID:  userID,
		Email:   email,
		Expiry:  m.now().Add(SessionTokenExpiry),
	}

	token, err := m.paseto.Encrypt(m.key, claims, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, claims, nil
}

// Validate decrypts the token and checks its expiry.
func (m *TokenMaker) Validate(token string) (*TokenClaims, error) {
	var claims TokenClaims
	if err := m.paseto.Decrypt(token, m.key, &claims, nil); err != nil {
		log.Printf("Token decryption failed: %v", err)
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}

	if !m.now().Before(claims.Expiry) {
		return nil, ErrTokenExpired
	}
	return &claims, nil
}
