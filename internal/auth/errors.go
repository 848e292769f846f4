package auth

import "fmt"

// AuthError indicates the portal permanently rejected the configured
// identity (wrong password, disabled account) or that a request against
// the target service still failed authentication after the bounded retry.
// Retrying with the same identity will not succeed.
type AuthError struct {
	// Code is the portal's error code, when it supplied one.
	Code int
	// Message is the portal's error message.
	Message string
}

func (e *AuthError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("authentication rejected (code %d): %s", e.Code, e.Message)
	}
	return fmt.Sprintf("authentication rejected: %s", e.Message)
}

// TransientError indicates the portal was unreachable or answered with a
// server error while generating a token. The previously cached credential,
// if any, is left untouched; a later attempt may succeed.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("token endpoint unavailable: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }
