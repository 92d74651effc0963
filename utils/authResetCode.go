package utils

import (
	"MediCare/cache"
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
)

const (
	ResetCodeExpiry         = 15 * time.Minute
	VerificationTokenExpiry = 24 * time.Hour
)

// GenerateResetCode generates a random 6-digit reset code.
func GenerateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate reset code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// SetResetCode stores the reset code for email for 15 minutes.
func SetResetCode(ctx context.Context, store cache.Store, email, code string) error {
	return store.Set(ctx, resetCodeKey(email), code, ResetCodeExpiry)
}

// CheckResetCode reports whether code matches the stored code for email.
func CheckResetCode(ctx context.Context, store cache.Store, email, code string) (bool, error) {
	stored, err := store.Get(ctx, resetCodeKey(email))
	if err != nil {
		return false, err
	}
	if stored == "" || code == "" {
		return false, nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(code)) == 1, nil
}

func DeleteResetCode(ctx context.Context, store cache.Store, email string) error {
	return store.Delete(ctx, resetCodeKey(email))
}

// NewVerificationToken stores a one-time e-mail verification token for uid.
func NewVerificationToken(ctx context.Context, store cache.Store, uid string) (string, error) {
	token := uuid.New().String()
	if err := store.Set(ctx, verificationKey(token), uid, VerificationTokenExpiry); err != nil {
		return "", err
	}
	return token, nil
}

// ConsumeVerificationToken returns the uid the token was issued for and
// deletes it. An unknown token yields "".
func ConsumeVerificationToken(ctx context.Context, store cache.Store, token string) (string, error) {
	uid, err := store.Get(ctx, verificationKey(token))
	if err != nil || uid == "" {
		return "", err
	}
	if err := store.Delete(ctx, verificationKey(token)); err != nil {
		return "", err
	}
	return uid, nil
}

func resetCodeKey(email string) string {
	return "reset_code:" + email
}

func verificationKey(token string) string {
	return "verify_email:" + token
}
