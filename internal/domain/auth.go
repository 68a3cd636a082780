package domain

import "context"

// RegisterInput is the validated registration payload. PhoneIntl and
// City are optional extras accepted at signup.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	Role      string
	PhoneIntl *string
	City      *string
}

// RegisterResult is the freshly created account plus its session token.
type RegisterResult struct {
	ID    string
	Token string
}

type AuthUsecase interface {
	Register(ctx context.Context, in *RegisterInput) (*RegisterResult, error)
	Login(ctx context.Context, email, password string) (string, *User, error)
	Me(ctx context.Context, userID string) (*User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}
