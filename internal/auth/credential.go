package auth

import "time"

// Credential is a bearer token together with its validity window. It is
// created whole by a successful token request and replaced whole on
// refresh; callers never observe a partially constructed value.
type Credential struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Fresh reports whether the credential is still usable at the given
// instant, leaving margin before the declared expiry so a token handed to
// a caller is not found expired mid-flight.
func (c *Credential) Fresh(now time.Time, margin time.Duration) bool {
	return now.Before(c.ExpiresAt.Add(-margin))
}
