// Package crafter defines the abstraction and data types used to delegate
// user identity operations (license activation, sign-in, sign-up, password
// reset, existence lookup) to a Crafter CMS authentication backend.
package crafter

import (
	"context"
	"gateway/pkg/domain"
)

// NotInitializedMessage is the fixed message carried by results of operations
// attempted before a successful license activation.
const NotInitializedMessage = "API client not initialized"

// Result is the uniform outcome of a remote gateway call. Remote failures of
// any kind (transport, protocol, schema, business) are folded into a failed
// Result; gateway operations never return an error to their caller.
type Result struct {
	// Success reports whether the remote API accepted the operation.
	Success bool `json:"success"`
	// Message is the human-readable outcome reported by the API, or a
	// local description of the failure.
	Message string `json:"message"`
	// UserData holds the raw user object for lookups that found one.
	UserData map[string]any `json:"userData,omitempty"`
}

// HasUserData reports whether the result carries a user payload.
func (r Result) HasUserData() bool { return r.UserData != nil }

// Fail builds a failed Result with the given message.
func Fail(message string) Result { return Result{Message: message} }

// Client is the abstraction for the Crafter CMS authentication gateway.
// Activate must succeed exactly once before any other operation is used;
// until then every operation short-circuits with a failed Result carrying
// NotInitializedMessage and performs no network I/O.
//
//go:generate mockgen -package mockcrafter -source=interface.go -destination=mock/mockcrafter.go *
type Client interface {
	// Activate verifies the configured license key against the remote
	// service and publishes the website identity on success. A second call
	// on an activated client fails with a conflict error and leaves the
	// published identity untouched.
	Activate(ctx context.Context) error
	// Activated reports whether a license activation has succeeded.
	Activated() bool
	// Website returns the identity published by Activate, or nil before a
	// successful activation.
	Website() *domain.Website

	// SignIn authenticates the user against the CMS. The client IP is
	// forwarded for backend rate limiting.
	SignIn(ctx context.Context, username, password, ip string) Result
	// SignUp registers a new user. The email parameter is accepted but the
	// transmitted body always carries a synthesized placeholder address.
	SignUp(ctx context.Context, username, email, password, passwordConfirm, ip string) Result
	// ForgotPassword requests a password reset for the user.
	ForgotPassword(ctx context.Context, username, email, ip string) Result
	// CheckUserExists looks the user up by name. A found user yields a
	// successful Result whose UserData is the raw user object; an unknown
	// user yields a failed Result that is a miss, not an error.
	CheckUserExists(ctx context.Context, username string) Result
}
