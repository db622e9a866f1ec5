package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// PolicyReason identifies which password strength rule was violated.
type PolicyReason string

const (
	PasswordTooShort         PolicyReason = "too_short"
	PasswordMissingUppercase PolicyReason = "missing_uppercase"
	PasswordMissingDigit     PolicyReason = "missing_digit"
	PasswordMissingSpecial   PolicyReason = "missing_special"
)

// PasswordPolicyError reports a password that fails the strength policy.
type PasswordPolicyError struct {
	Reason PolicyReason
}

func (e *PasswordPolicyError) Error() string {
	switch e.Reason {
	case PasswordTooShort:
		return "password must be at least 8 characters"
	case PasswordMissingUppercase:
		return "password must contain an uppercase letter"
	case PasswordMissingDigit:
		return "password must contain a digit"
	case PasswordMissingSpecial:
		return "password must contain a special character"
	default:
		return fmt.Sprintf("password policy violation: %s", string(e.Reason))
	}
}

const passwordSpecialSet = `!@#$%^&*(),.?":{}|<>_`

const minPasswordLength = 8

// ValidatePassword checks a candidate password against the strength rules.
// Rules are evaluated in order and the first failure wins; a nil return means
// the password satisfies the policy. The function is pure and total over any
// string input.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return &PasswordPolicyError{Reason: PasswordTooShort}
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return &PasswordPolicyError{Reason: PasswordMissingUppercase}
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return &PasswordPolicyError{Reason: PasswordMissingDigit}
	}
	if !strings.ContainsAny(password, passwordSpecialSet) {
		return &PasswordPolicyError{Reason: PasswordMissingSpecial}
	}
	return nil
}
