// Package auth bridges the Crafter CMS gateway and the host login plugin's
// identity model. It enforces the activation readiness gate and reduces
// gateway results to the booleans and identity records the plugin expects.
package auth

import (
	"context"
	"gateway/pkg/crafter"
	"gateway/pkg/domain"
	"gateway/pkg/logger"

	"go.uber.org/zap"
)

// handler is the concrete implementation of the Handler interface.
type handler struct {
	// client performs the remote gateway calls.
	client crafter.Client
}

// New creates a Handler backed by the provided gateway client.
func New(client crafter.Client) Handler {
	return &handler{client: client}
}

// Ready reports whether the gateway client exists and finished activation.
func (h handler) Ready() bool {
	return h.client != nil && h.client.Activated()
}

// CheckUserExists maps a found user into an identity record. The record
// carries the nickname, its lowercase lookup key and an empty credential hash
// marking the account as externally managed; the premium identifier is left
// for the host to fill in. Anything but a found user maps to nil.
func (h handler) CheckUserExists(ctx context.Context, username string) *domain.Player {
	if !h.Ready() {
		logger.Warn(ctx, "CMS gateway not initialized, cannot check user existence",
			zap.String("username", username))

		return nil
	}

	res := h.client.CheckUserExists(ctx, username)
	if !res.Success || !res.HasUserData() {
		return nil
	}

	player := domain.NewPlayer(username)

	return &player
}

// AuthenticateUser verifies the user's password against the CMS. The gateway
// message never reaches the caller, only the log.
func (h handler) AuthenticateUser(ctx context.Context, username, password, ip string) bool {
	if !h.Ready() {
		logger.Warn(ctx, "CMS gateway not initialized, cannot authenticate user",
			zap.String("username", username))

		return false
	}

	res := h.client.SignIn(ctx, username, password, ip)
	if !res.Success {
		logger.Warn(ctx, "user authentication failed",
			zap.String("username", username),
			zap.String("message", res.Message))

		return false
	}

	logger.Info(ctx, "user authenticated", zap.String("username", username))

	return true
}

// RegisterUser creates the user on the CMS.
func (h handler) RegisterUser(ctx context.Context, username, email, password, passwordConfirm, ip string) bool {
	if !h.Ready() {
		logger.Warn(ctx, "CMS gateway not initialized, cannot register user",
			zap.String("username", username))

		return false
	}

	res := h.client.SignUp(ctx, username, email, password, passwordConfirm, ip)
	if !res.Success {
		logger.Warn(ctx, "user registration failed",
			zap.String("username", username),
			zap.String("message", res.Message))

		return false
	}

	logger.Info(ctx, "user registered", zap.String("username", username))

	return true
}

// ForgotPassword asks the CMS to start a password reset for the user.
func (h handler) ForgotPassword(ctx context.Context, username, email, ip string) bool {
	if !h.Ready() {
		logger.Warn(ctx, "CMS gateway not initialized, cannot process password reset",
			zap.String("username", username))

		return false
	}

	res := h.client.ForgotPassword(ctx, username, email, ip)
	if !res.Success {
		logger.Warn(ctx, "password reset request failed",
			zap.String("username", username),
			zap.String("message", res.Message))

		return false
	}

	logger.Info(ctx, "password reset requested", zap.String("username", username))

	return true
}
