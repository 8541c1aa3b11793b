package ports

import (
	"context"

	"github.com/sinarkarya/construction-system/internal/core/domain"
)

// AccountService authenticates durable accounts.
type AccountService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
}
