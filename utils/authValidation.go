package utils

import (
	"errors"
	"regexp"
	"unicode/utf8"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validation errors
var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNotComplex = errors.New("password must include at least one uppercase letter, one lowercase letter and one digit")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

var (
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`\d`)
)

// PasswordRule checks the password for length and complexity.
var PasswordRule = validation.By(validatePassword)

func validatePassword(value interface{}) error {
	password, _ := value.(string)

	if utf8.RuneCountInString(password) < 8 {
		return ErrPasswordTooShort
	}
	if !lowercaseRegex.MatchString(password) ||
		!uppercaseRegex.MatchString(password) ||
		!digitRegex.MatchString(password) {
		return ErrPasswordNotComplex
	}
	return nil
}

// ValidatePasswordPair validates a new password and its confirmation.
func ValidatePasswordPair(password, confirm string) error {
	return validation.Errors{
		"password": validation.Validate(password, validation.Required.Error("password cannot be blank"), PasswordRule),
		"confirmPassword": validation.Validate(confirm,
			validation.Required.Error("please confirm your password"),
			validation.By(func(interface{}) error {
				if confirm != password {
					return ErrPasswordMismatch
				}
				return nil
			}),
		),
	}.Filter()
}

// ValidatePasswordReset validates the reset code request.
func ValidatePasswordReset(email, resetCode, newPassword string) error {
	return validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.Email),
		"code":     validation.Validate(resetCode, validation.Required.Error("invalid reset code"), validation.Length(6, 6).Error("invalid reset code")),
		"password": validation.Validate(newPassword, validation.Required, PasswordRule),
	}.Filter()
}
