// Package errors defines the gateway's error taxonomy. Every upstream
// failure is mapped onto one of these sentinels so handlers can translate
// them into HTTP status codes uniformly.
package errors

import "errors"

var (
	// ErrSessionExpired means the upstream auth token (or the gateway
	// session referencing it) is no longer valid. Callers must destroy
	// the session and send the user back to login.
	ErrSessionExpired = errors.New("session expired")

	// ErrInvalidCredentials means a login attempt was rejected by the
	// auth service.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrDuplicateRequest means a join request already exists for the
	// same trip and user. Non-fatal; the first request is unaffected.
	ErrDuplicateRequest = errors.New("join request already exists")

	// ErrValidation means the request was rejected before any upstream
	// call was made.
	ErrValidation = errors.New("validation error")

	// ErrNotParticipant means the viewer has no accepted relationship to
	// the trip they tried to act on.
	ErrNotParticipant = errors.New("viewer is not a participant of this trip")

	// ErrTripNotEnded means a settlement was submitted before the trip's
	// scheduled arrival passed.
	ErrTripNotEnded = errors.New("trip has not ended yet")

	// ErrUpstream is the generic wrapper for a failed or unreachable
	// backend call. The outcome is unknown; the caller must not retry
	// silently.
	ErrUpstream = errors.New("upstream service error")
)

// IsSessionExpired reports whether err is (or wraps) ErrSessionExpired
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}

// IsInvalidCredentials reports whether err is (or wraps) ErrInvalidCredentials
func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsDuplicateRequest reports whether err is (or wraps) ErrDuplicateRequest
func IsDuplicateRequest(err error) bool {
	return errors.Is(err, ErrDuplicateRequest)
}

// IsValidation reports whether err is (or wraps) ErrValidation
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
