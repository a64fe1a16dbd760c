package auth

import "time"

// NewTestTokenService creates a TokenService with an injectable clock and
// no clock-skew leeway, for deterministic expiry tests.
func NewTestTokenService(secret string, lifetime time.Duration, timeFunc func() time.Time) TokenService {
	return &hmacTokenService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     0,
	}
}
