package domain

import "fmt"

const maxPasswordLength = 128

// ValidatePassword enforces the site's password policy: a configurable
// minimum length and a bcrypt-safe upper bound.
func ValidatePassword(password string, minLength int) error {
	if minLength <= 0 {
		minLength = 6
	}
	if len(password) < minLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minLength)
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be <= %d characters", ErrInvalidInput, maxPasswordLength)
	}
	return nil
}
