package utils

import (
	"MediCare/cache"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRule(t *testing.T) {
	cases := map[string]error{
		"Short1":        ErrPasswordTooShort,
		"alllowercase1": ErrPasswordNotComplex,
		"ALLUPPERCASE1": ErrPasswordNotComplex,
		"NoDigitsHere":  ErrPasswordNotComplex,
		"Secure123":     nil,
		"Ab1ééé":        ErrPasswordTooShort,
		"Ab1ééééé":      nil,
	}
	for pw, want := range cases {
		err := validatePassword(pw)
		if want == nil {
			assert.NoError(t, err, pw)
		} else {
			assert.ErrorIs(t, err, want, pw)
		}
	}
}

func TestValidatePasswordPairMismatch(t *testing.T) {
	err := ValidatePasswordPair("Secure123", "Secure124")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "passwords do not match")

	assert.NoError(t, ValidatePasswordPair("Secure123", "Secure123"))
}

func TestTokenMakerRoundTrip(t *testing.T) {
	maker, err := NewTokenMaker("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	token, claims, err := maker.Generate("uid-1", "asha@example.com")
	require.NoError(t, err)

	got, err := maker.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", got.UserID)
	assert.Equal(t, claims.TokenID, got.TokenID)
}

func TestTokenMakerRejectsExpired(t *testing.T) {
	maker, err := NewTokenMaker("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	token, _, err := maker.Generate("uid-1", "asha@example.com")
	require.NoError(t, err)

	maker.now = func() time.Time { return time.Now().Add(SessionTokenExpiry + time.Minute) }
	_, err = maker.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenMakerKeyLength(t *testing.T) {
	_, err := NewTokenMaker("too-short")
	assert.Error(t, err)
}

func TestResetCodeLifecycle(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory()

	code, err := GenerateResetCode()
	require.NoError(t, err)
	assert.Len(t, code, 6)

	require.NoError(t, SetResetCode(ctx, store, "asha@example.com", code))
	ok, err := CheckResetCode(ctx, store, "asha@example.com", code)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = CheckResetCode(ctx, store, "asha@example.com", "000000x")
	assert.False(t, ok)

	require.NoError(t, DeleteResetCode(ctx, store, "asha@example.com"))
	ok, _ = CheckResetCode(ctx, store, "asha@example.com", code)
	assert.False(t, ok)
}

func TestVerificationTokenIsSingleUse(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory()

	token, err := NewVerificationToken(ctx, store, "uid-9")
	require.NoError(t, err)

	uid, err := ConsumeVerificationToken(ctx, store, token)
	require.NoError(t, err)
	assert.Equal(t, "uid-9", uid)

	uid, err = ConsumeVerificationToken(ctx, store, token)
	require.NoError(t, err)
	assert.Empty(t, uid)
}

func TestMailTemplatesEscapeNames(t *testing.T) {
	mail := BookingConfirmationEmail("a@example.com", "<b>Asha</b>", "Dr. Aravind", "2025-06-03", "09:00", 2410)
	assert.Contains(t, mail.HTML, "&lt;b&gt;Asha&lt;/b&gt;")
	assert.Contains(t, mail.Text, "2410.00")
}
