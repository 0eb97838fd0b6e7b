package models

import "fmt"

// ValidationError reports a required or malformed field. The message always
// names the offending field so callers can surface it directly.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DuplicateKeyError reports a uniqueness constraint violation.
type DuplicateKeyError struct {
	Field string
	Value string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key: %s %q already exists", e.Field, e.Value)
}

// AuthenticationError reports a failed login. The reason distinguishes
// username lookup failures from password mismatches for caller-side UX.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return "authentication failed: " + e.Reason
}
