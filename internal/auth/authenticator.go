package auth

import (
	"context"

	"github.com/abdoachhoubi/billsplitter/internal/models"
)

// Profile holds the registration fields other than the credential.
type Profile struct {
	Email     string
	FirstName string
	LastName  string
	Avatar    string
}

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password, passkeys, OAuth, etc.)
// without changing the service layer code.
type Authenticator interface {
	// Register creates a new user account with the given profile and credential.
	// Returns a *ProfileError when the profile fails validation.
	Register(ctx context.Context, profile Profile, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
