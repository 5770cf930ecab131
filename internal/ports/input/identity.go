package input

import (
	"context"

	"ircportal/internal/domain/entities"
)

type IdentityUseCase interface {
	Authenticate(ctx context.Context, email, password string) (*entities.User, error)
	Login(ctx context.Context, email, password string) (*entities.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*entities.User, error)
}
