// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
)

// Policy defaults match the identity rules the API documents: at least six
// characters with one lowercase, one uppercase and one digit.
const defaultMinPasswordLength = 6

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	minLength        int
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{
		minLength:        defaultMinPasswordLength,
		requireUppercase: true,
		requireLowercase: true,
		requireNumbers:   true,
	}

	if policy := cfg.PasswordPolicy; policy != nil {
		if policy.MinLength > 0 {
			hasher.minLength = policy.MinLength
		}
		hasher.requireUppercase = policy.RequireUppercase
		hasher.requireLowercase = policy.RequireLowercase
		hasher.requireNumbers = policy.RequireNumbers
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength enforces the configured password policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.minLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password below minimum length")
	}

	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if h.requireLowercase && !hasLower {
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires a lowercase letter")
	}
	if h.requireUppercase && !hasUpper {
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires an uppercase letter")
	}
	if h.requireNumbers && !hasDigit {
		return domainerrors.ErrPasswordStrength.WrapMessage("password requires a digit")
	}

	return nil
}
