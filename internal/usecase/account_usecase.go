// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bloom/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Email    string
	FullName string
	Password string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created account's basic information.
type SignupOutput struct {
	Account *entity.Account
}

// LoginOutput returns the generated session token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	Account     *entity.Account
}

// AccountUsecase defines the interface for account-related business
// operations. This is the contract the delivery layer depends on.
type AccountUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Profile(ctx context.Context, accountID int64) (*entity.Account, error)
}
