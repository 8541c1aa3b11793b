package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/sinarkarya/construction-system/internal/core/domain"
	"github.com/sinarkarya/construction-system/internal/core/ports"
)

// GuardService confirms that an identity's project binding still references
// a live project.
type GuardService struct {
	sessions ports.SessionService
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewGuardService(sessions ports.SessionService, projects ports.ProjectRepository, logger zerolog.Logger) *GuardService {
	return &GuardService{sessions: sessions, projects: projects, logger: logger}
}

// AuthorizeBinding admits or revokes the identity's binding. Administrators
// always pass with the binding forced empty — they are never scoped to a
// single project. Everyone else carrying a binding triggers a fresh
// existence read: project deletion happens out of band, so the check runs on
// every bound request rather than being cached.
func (g *GuardService) AuthorizeBinding(ctx context.Context, identity *domain.Identity) (domain.BindingResult, error) {
	if g.sessions.EffectiveRole(identity) == domain.RoleAdmin {
		identity.BoundProjectID = ""
		return domain.BindingOK, nil
	}

	if identity.BoundProjectID == "" {
		return domain.BindingOK, nil
	}

	exists, err := g.projects.Exists(ctx, identity.BoundProjectID)
	if err != nil && !errors.Is(err, domain.ErrProjectNotFound) {
		return domain.BindingOK, err
	}
	if err != nil || !exists {
		g.logger.Info().
			Str("email", identity.Email).
			Str("project_id", identity.BoundProjectID).
			Msg("bound project gone, revoking session")
		return domain.BindingRevoked, nil
	}

	return domain.BindingOK, nil
}
