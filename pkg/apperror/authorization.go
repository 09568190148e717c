package apperror

import "net/http"

// DefaultAuthorizationMessage is used when no custom message is given.
const DefaultAuthorizationMessage = "Authorization Failed!"

// AuthorizationError is raised by local permission guards. It never wraps
// an upstream failure; those travel as *UpstreamError.
type AuthorizationError struct {
	Message string
}

// NewAuthorizationError returns an AuthorizationError with the given message,
// or DefaultAuthorizationMessage when none (or an empty one) is passed.
func NewAuthorizationError(message ...string) *AuthorizationError {
	msg := DefaultAuthorizationMessage
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	return &AuthorizationError{Message: msg}
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// HTTPStatus is the status the boundary layer answers with.
func (e *AuthorizationError) HTTPStatus() int {
	return http.StatusUnauthorized
}

// ErrMissingToken is the guard failure for requests without a bearer token.
func ErrMissingToken() *AuthorizationError {
	return NewAuthorizationError("Authorization token is required")
}
