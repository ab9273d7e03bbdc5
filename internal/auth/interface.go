package auth

import (
	"context"
	"gateway/pkg/domain"
)

// Handler adapts gateway outcomes into the identity model consumed by the
// host login plugin. Remote failure details stay in the log; callers only see
// booleans and optional identity records.
type Handler interface {
	// Ready reports whether the underlying gateway finished activation.
	Ready() bool
	// CheckUserExists returns the identity record for a user known to the
	// CMS, or nil when the user does not exist or the lookup failed.
	CheckUserExists(ctx context.Context, username string) *domain.Player
	// AuthenticateUser verifies the user's password against the CMS.
	AuthenticateUser(ctx context.Context, username, password, ip string) bool
	// RegisterUser creates the user on the CMS.
	RegisterUser(ctx context.Context, username, email, password, passwordConfirm, ip string) bool
	// ForgotPassword asks the CMS to start a password reset for the user.
	ForgotPassword(ctx context.Context, username, email, ip string) bool
}
