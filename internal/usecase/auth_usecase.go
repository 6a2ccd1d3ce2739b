// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the credentials required to register a new account.
type RegisterInput struct {
	UserName string `json:"userName" validate:"required,min=3,max=20"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the credentials required to log in. Length rules are
// not re-checked here: anything that fails them cannot match a stored
// account anyway, and login failures must all look alike.
type LoginInput struct {
	UserName string `json:"userName" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput is the user representation returned by the auth operations.
// Token is a pointer so that token-less responses (current-user lookups)
// serialize it as null rather than omitting it.
type AuthOutput struct {
	ID       int64   `json:"id"`
	UserName string  `json:"userName"`
	Token    *string `json:"token"`
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account and returns it with a freshly issued
	// token. Fails with the conflict error when the username is taken,
	// including when a concurrent registration wins the race.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and returns the account with a new token.
	// Unknown usernames and wrong passwords fail identically.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// CurrentUser resolves a validated token subject back to an account.
	// The returned output carries no token.
	CurrentUser(ctx context.Context, subject string) (*AuthOutput, error)
}
