package usecase

import (
	"context"
)

type FirebaseAuthClient interface {
	VerifyToken(ctx context.Context, idToken string) (string, error)
	SetUserDisabled(ctx context.Context, uid string, disabled bool) error
}

// AdminIdentity carries the acting admin through every moderation call
// instead of being read from ambient globals.
type AdminIdentity struct {
	UID   string
	Email string
}
