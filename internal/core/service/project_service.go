package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sinarkarya/construction-system/internal/core/domain"
	"github.com/sinarkarya/construction-system/internal/core/ports"
)

// ProjectService implements the record-keeping operations the access model
// guards: budgets, milestones, installment schedules, and the admin ledger.
type ProjectService struct {
	sessions ports.SessionService
	projects ports.ProjectRepository
	statuses ports.ReadStatusRepository
	logger   zerolog.Logger
}

func NewProjectService(sessions ports.SessionService, projects ports.ProjectRepository, statuses ports.ReadStatusRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{sessions: sessions, projects: projects, statuses: statuses, logger: logger}
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.FindAll(ctx)
}

// Get returns one project scoped to the caller's visibility: privileged and
// manager identities see everything; client and vendor identities must be a
// contact of the project and never see the admin ledger.
func (s *ProjectService) Get(ctx context.Context, identity *domain.Identity, id string) (*domain.Project, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	role := s.sessions.EffectiveRole(identity)
	if role == domain.RoleAdmin || role == domain.RoleManager {
		return p, nil
	}

	if _, ok := deriveProjectRole(p, domain.NormalizeEmail(identity.Email)); !ok {
		return nil, domain.ErrForbidden
	}

	clone := *p
	clone.AdminData = nil
	return &clone, nil
}

func (s *ProjectService) Create(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
	now := time.Now().UTC()
	p := &domain.Project{
		Title:       in.Title,
		ClientEmail: domain.NormalizeEmail(in.ClientEmail),
		VendorEmail: domain.NormalizeEmail(in.VendorEmail),
		BudgetTotal: in.BudgetTotal,
		Milestones:  in.Milestones,
		Termins:     in.Termins,
		AdminData:   in.AdminData,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.projects.Create(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	s.logger.Info().Str("project_id", created.ID).Str("judul", created.Title).Msg("project created")
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, in ports.ProjectInput) (*domain.Project, error) {
	p, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.ClientEmail = domain.NormalizeEmail(in.ClientEmail)
	p.VendorEmail = domain.NormalizeEmail(in.VendorEmail)
	p.BudgetTotal = in.BudgetTotal
	p.Milestones = in.Milestones
	p.Termins = in.Termins
	p.AdminData = in.AdminData
	p.UpdatedAt = time.Now().UTC()

	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes the project, its embedded ledger, and every acknowledgment
// row that referenced it. Sessions bound to the project are not touched
// here; the access guard revokes them on their next request.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.statuses.DeleteByProject(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("project_id", id).Msg("failed to prune read statuses")
		return err
	}

	s.logger.Info().Str("project_id", id).Msg("project deleted")
	return nil
}
