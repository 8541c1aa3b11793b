package ports

import (
	"context"

	"github.com/sinarkarya/construction-system/internal/core/domain"
)

// ProjectInput carries the writable fields of a project.
type ProjectInput struct {
	Title       string
	ClientEmail string
	VendorEmail string
	BudgetTotal float64
	Milestones  []domain.Milestone
	Termins     []domain.Installment
	AdminData   *domain.AdminLedger
}

// ProjectService implements the record-keeping operations the access model
// guards.
type ProjectService interface {
	// List returns every project. Privileged and manager roles only.
	List(ctx context.Context) ([]domain.Project, error)
	// Get returns one project, visibility-scoped: non-privileged callers
	// must participate in the project and never see AdminData.
	Get(ctx context.Context, identity *domain.Identity, id string) (*domain.Project, error)
	Create(ctx context.Context, in ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, id string, in ProjectInput) (*domain.Project, error)
	// Delete removes the project and its acknowledgment rows.
	Delete(ctx context.Context, id string) error
}
