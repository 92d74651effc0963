package services

import (
	"MediCare/cache"
	"MediCare/models"
	"MediCare/repositories"
	"MediCare/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired session")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidResetCode   = errors.New("invalid reset code")
	ErrSignInUnsupported  = errors.New("password sign-in happens in the client SDK for this backend")
	ErrUnsupported        = errors.New("operation not supported by this authentication backend")
)

// Session is an authenticated user as seen by the handlers.
type Session struct {
	UID           string    `json:"uid"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"displayName,omitempty"`
	EmailVerified bool      `json:"emailVerified"`
	Token         string    `json:"token,omitempty"`
	ExpiresAt     time.Time `json:"expiresAt"`

	tokenID string
}

// AuthProvider is the identity backend.
type AuthProvider interface {
	SignUp(ctx context.Context, email, password, displayName string) (string, error)
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignOut(ctx context.Context, session Session) error
	SendPasswordReset(ctx context.Context, email string) error
	Verify(ctx context.Context, token string) (Session, error)
}

// PasswordResetConfirmer is implemented by backends that apply reset codes
// themselves.
type PasswordResetConfirmer interface {
	ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error
}

// EmailVerifier is implemented by backends that own the verification link.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, token string) error
}

// LocalAuth keeps accounts in the user repository and issues PASETO tokens.
type LocalAuth struct {
	users   repositories.UserRepository
	tokens  *utils.TokenMaker
	store   cache.Store
	locker  cache.Locker
	mailer  utils.Mailer
	baseURL string
}

func NewLocalAuth(users repositories.UserRepository, tokens *utils.TokenMaker, store cache.Store, locker cache.Locker, mailer utils.Mailer, baseURL string) *LocalAuth {
	return &LocalAuth{
		users:   users,
		tokens:  tokens,
		store:   store,
		locker:  locker,
		mailer:  mailer,
		baseURL: baseURL,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *LocalAuth) SignUp(ctx context.Context, email, password, displayName string) (string, error) {
	email = normalizeEmail(email)
	user := &models.User{
		UID:         uuid.New().String(),
		Email:       email,
		DisplayName: displayName,
	}

	err := cache.WithLock(ctx, a.locker, "user_lock:"+email, cache.LockOptions{TTL: time.Minute}, func(ctx context.Context) error {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed

		if err := a.users.Create(ctx, user); err != nil {
			if errors.Is(err, repositories.ErrAlreadyExists) {
				return ErrEmailTaken
			}
			return err
		}
		return nil
	})
	if errors.Is(err, cache.ErrLockNotAcquired) {
		return "", ErrEmailTaken
	}
	if err != nil {
		return "", err
	}

	a.sendVerification(ctx, user)
	return user.UID, nil
}

func (a *LocalAuth) sendVerification(ctx context.Context, user *models.User) {
	token, err := utils.NewVerificationToken(ctx, a.store, user.UID)
	if err != nil {
		log.Printf("Failed to store verification token for %s: %v", user.UID, err)
		return
	}
	link := a.baseURL + "/auth/verify-email?token=" + url.QueryEscape(token)
	if err := a.mailer.Send(ctx, utils.VerificationEmail(user.Email, user.DisplayName, link)); err != nil {
		log.Printf("Failed to send verification mail to %s: %v", user.Email, err)
	}
}

func (a *LocalAuth) SignIn(ctx context.Context, email, password string) (Session, error) {
	user, err := a.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repositories.ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, fmt.Errorf("authentication failed: %w", err)
	}
	if !utils.CheckPassword(user.Password, password) {
		return Session{}, ErrInvalidCredentials
	}

	token, claims, err := a.tokens.Generate(user.UID, user.Email)
	if err != nil {
		return Session{}, err
	}
	return Session{
		UID:           user.UID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		EmailVerified: user.EmailVerified,
		Token:         token,
		ExpiresAt:     claims.Expiry,
		tokenID:       claims.TokenID,
	}, nil
}

// SignOut revokes the session token until it would have expired anyway.
func (a *LocalAuth) SignOut(ctx context.Context, session Session) error {
	ttl := time.Until(session.ExpiresAt)
	if session.tokenID == "" || ttl <= 0 {
		return nil
	}
	return a.store.Set(ctx, revokedTokenKey(session.tokenID), "1", ttl)
}

func (a *LocalAuth) Verify(ctx context.Context, token string) (Session, error) {
	claims, err := a.tokens.Validate(token)
	if err != nil {
		return Session{}, ErrInvalidToken
	}

	revoked, err := a.store.Get(ctx, revokedTokenKey(claims.TokenID))
	if err != nil {
		return Session{}, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked != "" {
		return Session{}, ErrInvalidToken
	}

	user, err := a.users.GetByID(ctx, claims.UserID)
	if errors.Is(err, repositories.ErrNotFound) {
		return Session{}, ErrInvalidToken
	}
	if err != nil {
		return Session{}, err
	}

	return Session{
		UID:           user.UID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		EmailVerified: user.EmailVerified,
		ExpiresAt:     claims.Expiry,
		tokenID:       claims.TokenID,
	}, nil
}

func (a *LocalAuth) SendPasswordReset(ctx context.Context, email string) error {
	user, err := a.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	code, err := utils.GenerateResetCode()
	if err != nil {
		return err
	}
	if err := utils.SetResetCode(ctx, a.store, user.Email, code); err != nil {
		return fmt.Errorf("failed to set reset code: %w", err)
	}
	if err := a.mailer.Send(ctx, utils.ResetCodeEmail(user.Email, code)); err != nil {
		return fmt.Errorf("failed to send reset code email: %w", err)
	}
	return nil
}

func (a *LocalAuth) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	email = normalizeEmail(email)
	if err := utils.ValidatePasswordReset(email, code, newPassword); err != nil {
		return &ValidationError{Err: err}
	}

	ok, err := utils.CheckResetCode(ctx, a.store, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidResetCode
	}

	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := a.users.UpdatePassword(ctx, user.UID, hashed); err != nil {
		return err
	}
	if err := utils.DeleteResetCode(ctx, a.store, email); err != nil {
		log.Printf("Failed to delete reset code for %s: %v", email, err)
	}
	return nil
}

func (a *LocalAuth) VerifyEmail(ctx context.Context, token string) error {
	uid, err := utils.ConsumeVerificationToken(ctx, a.store, token)
	if err != nil {
		return err
	}
	if uid == "" {
		return ErrInvalidToken
	}
	return a.users.MarkEmailVerified(ctx, uid)
}

func revokedTokenKey(tokenID string) string {
	return "revoked_token:" + tokenID
}
