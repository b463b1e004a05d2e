package validation

import "errors"

// bcrypt only looks at the first 72 bytes
const maxPasswordBytes = 72

var ErrPasswordTooLong = errors.New("password must not exceed 72 bytes")

// ValidatePassword rejects passwords bcrypt would silently truncate
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password is required")
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}
