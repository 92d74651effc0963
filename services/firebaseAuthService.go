package services

import (
	"MediCare/utils"
	"context"
	"fmt"
	"log"
	"time"

	"firebase.google.com/go/v4/auth"
)

// FirebaseAuthClient is the subset of the Firebase Admin auth client used
// here. *auth.Client satisfies it.
type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	EmailVerificationLink(ctx context.Context, email string) (string, error)
	PasswordResetLink(ctx context.Context, email string) (string, error)
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

var _ FirebaseAuthClient = (*auth.Client)(nil)

// FirebaseAuth delegates accounts to Firebase Authentication. Clients sign
// in with the Firebase SDK and send the resulting ID token.
type FirebaseAuth struct {
	client FirebaseAuthClient
	mailer utils.Mailer
}

func NewFirebaseAuth(client FirebaseAuthClient, mailer utils.Mailer) *FirebaseAuth {
	return &FirebaseAuth{client: client, mailer: mailer}
}

func (a *FirebaseAuth) SignUp(ctx context.Context, email, password, displayName string) (string, error) {
	email = normalizeEmail(email)
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName).
		EmailVerified(false)

	user, err := a.client.CreateUser(ctx, params)
	if auth.IsEmailAlreadyExists(err) {
		return "", ErrEmailTaken
	}
	if err != nil {
		return "", fmt.Errorf("failed to create firebase user: %w", err)
	}

	link, err := a.client.EmailVerificationLink(ctx, email)
	if err != nil {
		log.Printf("Failed to create verification link for %s: %v", email, err)
		return user.UID, nil
	}
	if err := a.mailer.Send(ctx, utils.VerificationEmail(email, displayName, link)); err != nil {
		log.Printf("Failed to send verification mail to %s: %v", email, err)
	}
	return user.UID, nil
}

func (a *FirebaseAuth) SignIn(context.Context, string, string) (Session, error) {
	return Session{}, ErrSignInUnsupported
}

func (a *FirebaseAuth) SignOut(ctx context.Context, session Session) error {
	if err := a.client.RevokeRefreshTokens(ctx, session.UID); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}
	return nil
}

func (a *FirebaseAuth) SendPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	link, err := a.client.PasswordResetLink(ctx, email)
	if auth.IsUserNotFound(err) || auth.IsEmailNotFound(err) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to create password reset link: %w", err)
	}
	if err := a.mailer.Send(ctx, utils.ResetLinkEmail(email, link)); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

func (a *FirebaseAuth) Verify(ctx context.Context, token string) (Session, error) {
	idToken, err := a.client.VerifyIDTokenAndCheckRevoked(ctx, token)
	if err != nil {
		return Session{}, ErrInvalidToken
	}

	email, _ := idToken.Claims["email"].(string)
	name, _ := idToken.Claims["name"].(string)
	verified, _ := idToken.Claims["email_verified"].(bool)
	return Session{
		UID:           idToken.UID,
		Email:         email,
		DisplayName:   name,
		EmailVerified: verified,
		ExpiresAt:     time.Unix(idToken.Expires, 0),
	}, nil
}
