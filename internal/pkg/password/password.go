// Package password hashes and verifies user credentials and enforces the
// signup complexity policy.
package password

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/vinylshop/record-store/internal/core/domain"
)

// Cost is the bcrypt work factor (2^10 rounds).
const Cost = 10

// MinLength is the minimum accepted password length.
const MinLength = 8

// Symbols lists the special characters the policy accepts.
const Symbols = "#?!@$ %^&*-"

const lineTerminators = "\n\r\u2028\u2029"

// MaxBytes is the longest input bcrypt accepts.
const MaxBytes = 72

// TooLongMessage is the user-facing error for passwords over MaxBytes.
const TooLongMessage = "Password must be at most 72 bytes long."

// PolicyMessage is the user-facing description of the complexity policy.
const PolicyMessage = "Password is required and must have at least 8 characters, uppercase and lowercase letters, numbers and special characters."

// Hash returns the bcrypt hash of plain.
func Hash(plain string) (string, error) {
	if len(plain) > MaxBytes {
		return "", domain.ErrPasswordTooLong
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// Verify reports whether plain matches hash.
func Verify(plain, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	return err == nil
}

// Satisfies reports whether plain meets the complexity policy: MinLength
// characters up to MaxBytes bytes, no line terminators, with an upper case
// letter, a lower case letter, a digit and one of Symbols.
func Satisfies(plain string) bool {
	if len([]rune(plain)) < MinLength || len(plain) > MaxBytes {
		return false
	}
	if strings.ContainsAny(plain, lineTerminators) {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range plain {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(Symbols, r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// CheckPolicy returns domain.ErrPasswordTooLong when plain exceeds MaxBytes,
// and domain.ErrWeakPassword when it is empty or does not satisfy the policy.
func CheckPolicy(plain string) error {
	if len(plain) > MaxBytes {
		return domain.ErrPasswordTooLong
	}
	if plain == "" || !Satisfies(plain) {
		return domain.ErrWeakPassword
	}
	return nil
}
