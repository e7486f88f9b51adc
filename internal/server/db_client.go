package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/jobfit/internal/store"
)

// DBClient abstracts the user account operations the auth layer needs,
// so services can be tested against a fake store.
// *store.Store satisfies this interface.
type DBClient interface {
	CreateUser(ctx context.Context, name, email string) (uuid.UUID, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*store.User, error)
	GetUserByEmail(ctx context.Context, email string) (*store.User, error)
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
