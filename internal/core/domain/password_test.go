package domain

import (
	"errors"
	"testing"
)

func policyReason(t *testing.T, err error) PolicyReason {
	t.Helper()
	var pe *PasswordPolicyError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PasswordPolicyError, got %v", err)
	}
	return pe.Reason
}

func TestValidatePassword_Valid(t *testing.T) {
	if err := ValidatePassword("Abcdefg1!"); err != nil {
		t.Fatalf("expected valid password, got %v", err)
	}
}

func TestValidatePassword_RuleOrder(t *testing.T) {
	cases := []struct {
		name     string
		password string
		reason   PolicyReason
	}{
		{"missing uppercase", "abcdefg1!", PasswordMissingUppercase},
		{"missing digit", "Abcdefgh!", PasswordMissingDigit},
		{"missing special", "Abcdefg1", PasswordMissingSpecial},
		{"empty", "", PasswordTooShort},
		{"short wins over other rules", "a1", PasswordTooShort},
		{"underscore counts as special", "Abcdefg1_", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.reason == "" {
				if err != nil {
					t.Fatalf("expected valid, got %v", err)
				}
				return
			}
			if got := policyReason(t, err); got != tc.reason {
				t.Fatalf("expected reason %s, got %s", tc.reason, got)
			}
		})
	}
}

func TestValidatePassword_ShortAlwaysTooShort(t *testing.T) {
	// Any password under 8 characters fails the length rule regardless of
	// what character classes it contains.
	for _, p := range []string{"A1!", "Abc1!", "AB12!?", "aaaaaaa", "Ab1!Ab1"} {
		if got := policyReason(t, ValidatePassword(p)); got != PasswordTooShort {
			t.Fatalf("password %q: expected too_short, got %s", p, got)
		}
	}
}

func TestValidatePassword_CountsRunesNotBytes(t *testing.T) {
	// Seven codepoints encoded as more than eight bytes still fail rule 1.
	if got := policyReason(t, ValidatePassword("Ábçdéf1")); got != PasswordTooShort {
		t.Fatalf("expected too_short for 7-rune password, got %s", got)
	}
}
