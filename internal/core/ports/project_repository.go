package ports

import (
	"context"

	"github.com/sinarkarya/construction-system/internal/core/domain"
)

// ProjectRepository defines project persistence.
type ProjectRepository interface {
	// Exists reports whether a project with the given id is present. It is
	// the read the access guard performs on every bound request.
	Exists(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// FindByParticipantEmail returns every project whose client or vendor
	// contact equals the normalized email, most recently updated first.
	FindByParticipantEmail(ctx context.Context, email string) ([]domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}
