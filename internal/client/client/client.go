package client

import (
	"context"

	"github.com/dmitrijs2005/gobarber/internal/client/models"
)

// Client is the GoBarber API as used by the client's forms and session store.
type Client interface {
	CreateSession(ctx context.Context, creds models.Credentials) (models.Session, error)
	CreateUser(ctx context.Context, in models.RegistrationInput) (models.User, error)
	ForgotPassword(ctx context.Context, in models.ForgotPasswordInput) error
	ResetPassword(ctx context.Context, in models.ResetPasswordInput) error
	UpdateProfile(ctx context.Context, in models.ProfileUpdateInput) (models.User, error)
	UpdateAvatar(ctx context.Context, file models.AvatarFile) (models.User, error)
}

// TokenSource yields the bearer token of the current session, or "" when
// signed out.
type TokenSource interface {
	Token() string
}
