// Package common defines shared sentinel errors used across ReelVault
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Credential-path rejection. A single value for every failure mode
	// (unknown email, wrong secret, malformed stored hash) so callers
	// cannot tell which one occurred.
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// Infrastructure fault: no live store handle could be acquired.
	// Kept distinct from credential rejection so operators can alert on it.
	ErrorStoreUnavailable = errors.New("store unavailable")

	// Token lifecycle errors. Both collapse to "no session" at the edge.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
