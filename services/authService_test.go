package services

import (
	"MediCare/cache"
	"MediCare/repositories"
	"MediCare/utils"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSymmetricKey = "0123456789abcdef0123456789abcdef"

type authFixture struct {
	auth   *LocalAuth
	users  repositories.UserRepository
	store  *cache.Memory
	mailer *recordingMailer
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	tokens, err := utils.NewTokenMaker(testSymmetricKey)
	require.NoError(t, err)
	f := &authFixture{
		users:  repositories.NewMemoryUserRepository(),
		store:  cache.NewMemory(),
		mailer: &recordingMailer{},
	}
	f.auth = NewLocalAuth(f.users, tokens, f.store, f.store, f.mailer, "http://localhost:8930")
	return f
}

func TestLocalSignUpAndSignIn(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	uid, err := f.auth.SignUp(ctx, " Asha@Example.com ", "Secret123", "Asha Raman")
	require.NoError(t, err)
	assert.NotEmpty(t, uid)

	_, err = f.auth.SignUp(ctx, "asha@example.com", "Secret123", "Someone Else")
	assert.ErrorIs(t, err, ErrEmailTaken)

	session, err := f.auth.SignIn(ctx, "ASHA@example.com", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, uid, session.UID)
	assert.Equal(t, "asha@example.com", session.Email)
	assert.False(t, session.EmailVerified)
	assert.NotEmpty(t, session.Token)

	_, err = f.auth.SignIn(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.auth.SignIn(ctx, "nobody@example.com", "Secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLocalVerifyAndSignOut(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "asha@example.com", "Secret123", "Asha Raman")
	require.NoError(t, err)
	signedIn, err := f.auth.SignIn(ctx, "asha@example.com", "Secret123")
	require.NoError(t, err)

	session, err := f.auth.Verify(ctx, signedIn.Token)
	require.NoError(t, err)
	assert.Equal(t, signedIn.UID, session.UID)

	require.NoError(t, f.auth.SignOut(ctx, session))
	_, err = f.auth.Verify(ctx, signedIn.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = f.auth.Verify(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLocalVerifyEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	uid, err := f.auth.SignUp(ctx, "asha@example.com", "Secret123", "Asha Raman")
	require.NoError(t, err)

	mails := f.mailer.emails()
	require.Len(t, mails, 1)
	parts := strings.SplitN(mails[0].Text, "token=", 2)
	require.Len(t, parts, 2)
	token := parts[1]

	require.NoError(t, f.auth.VerifyEmail(ctx, token))
	user, err := f.users.GetByID(ctx, uid)
	require.NoError(t, err)
	assert.True(t, user.EmailVerified)

	assert.ErrorIs(t, f.auth.VerifyEmail(ctx, token), ErrInvalidToken)
}

func TestLocalPasswordReset(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.auth.SignUp(ctx, "asha@example.com", "Secret123", "Asha Raman")
	require.NoError(t, err)

	assert.ErrorIs(t, f.auth.SendPasswordReset(ctx, "nobody@example.com"), ErrUserNotFound)
	require.NoError(t, f.auth.SendPasswordReset(ctx, "asha@example.com"))

	code, err := f.store.Get(ctx, "reset_code:asha@example.com")
	require.NoError(t, err)
	require.Len(t, code, 6)

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	assert.ErrorIs(t, f.auth.ConfirmPasswordReset(ctx, "asha@example.com", wrong, "NewSecret1"), ErrInvalidResetCode)

	var verr *ValidationError
	assert.True(t, errors.As(f.auth.ConfirmPasswordReset(ctx, "asha@example.com", code, "weak"), &verr))

	require.NoError(t, f.auth.ConfirmPasswordReset(ctx, "asha@example.com", code, "NewSecret1"))
	_, err = f.auth.SignIn(ctx, "asha@example.com", "NewSecret1")
	assert.NoError(t, err)
	_, err = f.auth.SignIn(ctx, "asha@example.com", "Secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.ErrorIs(t, f.auth.ConfirmPasswordReset(ctx, "asha@example.com", code, "NewSecret2"), ErrInvalidResetCode)
}

type fakeFirebase struct {
	createUser func(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	verifyLink func(ctx context.Context, email string) (string, error)
	resetLink  func(ctx context.Context, email string) (string, error)
	verify     func(ctx context.Context, idToken string) (*auth.Token, error)
	revoked    []string
}

func (f *fakeFirebase) CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error) {
	return f.createUser(ctx, user)
}

func (f *fakeFirebase) EmailVerificationLink(ctx context.Context, email string) (string, error) {
	return f.verifyLink(ctx, email)
}

func (f *fakeFirebase) PasswordResetLink(ctx context.Context, email string) (string, error) {
	return f.resetLink(ctx, email)
}

func (f *fakeFirebase) VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error) {
	return f.verify(ctx, idToken)
}

func (f *fakeFirebase) RevokeRefreshTokens(_ context.Context, uid string) error {
	f.revoked = append(f.revoked, uid)
	return nil
}

func TestFirebaseAuth(t *testing.T) {
	expires := time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)
	client := &fakeFirebase{
		createUser: func(context.Context, *auth.UserToCreate) (*auth.UserRecord, error) {
			return &auth.UserRecord{UserInfo: &auth.UserInfo{UID: "fb-1"}}, nil
		},
		verifyLink: func(_ context.Context, email string) (string, error) {
			return "https://example.firebaseapp.com/verify?email=" + email, nil
		},
		resetLink: func(_ context.Context, email string) (string, error) {
			return "https://example.firebaseapp.com/reset?email=" + email, nil
		},
		verify: func(_ context.Context, idToken string) (*auth.Token, error) {
			if idToken != "good" {
				return nil, errors.New("bad token")
			}
			return &auth.Token{
				UID:     "fb-1",
				Expires: expires.Unix(),
				Claims:  map[string]interface{}{"email": "asha@example.com", "email_verified": true, "name": "Asha"},
			}, nil
		},
	}
	mailer := &recordingMailer{}
	a := NewFirebaseAuth(client, mailer)
	ctx := context.Background()

	uid, err := a.SignUp(ctx, "asha@example.com", "Secret123", "Asha")
	require.NoError(t, err)
	assert.Equal(t, "fb-1", uid)
	require.Len(t, mailer.emails(), 1)
	assert.Contains(t, mailer.emails()[0].Text, "verify?email=asha@example.com")

	_, err = a.SignIn(ctx, "asha@example.com", "Secret123")
	assert.ErrorIs(t, err, ErrSignInUnsupported)

	session, err := a.Verify(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "fb-1", session.UID)
	assert.Equal(t, "asha@example.com", session.Email)
	assert.True(t, session.EmailVerified)
	assert.True(t, session.ExpiresAt.Equal(expires))

	_, err = a.Verify(ctx, "bad")
	assert.ErrorIs(t, err, ErrInvalidToken)

	require.NoError(t, a.SignOut(ctx, session))
	assert.Equal(t, []string{"fb-1"}, client.revoked)

	require.NoError(t, a.SendPasswordReset(ctx, "asha@example.com"))
	assert.Len(t, mailer.emails(), 2)
}
