package service

import (
	"context"

	"github.com/sinarkarya/construction-system/internal/core/domain"
	"github.com/sinarkarya/construction-system/internal/core/ports"
)

// DirectoryService enumerates the projects a non-privileged identity
// participates in and handles switching between them.
type DirectoryService struct {
	sessions ports.SessionService
	projects ports.ProjectRepository
}

func NewDirectoryService(sessions ports.SessionService, projects ports.ProjectRepository) *DirectoryService {
	return &DirectoryService{sessions: sessions, projects: projects}
}

// ListAccessible returns the identity's switchable projects, most recently
// updated first. Admin and manager identities get an empty list: those roles
// navigate unscoped and do not switch projects through this directory.
func (d *DirectoryService) ListAccessible(ctx context.Context, identity *domain.Identity) ([]domain.ProjectAccess, error) {
	role := d.sessions.EffectiveRole(identity)
	if role == domain.RoleAdmin || role == domain.RoleManager {
		return []domain.ProjectAccess{}, nil
	}

	email := domain.NormalizeEmail(identity.Email)
	projects, err := d.projects.FindByParticipantEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ProjectAccess, 0, len(projects))
	for _, p := range projects {
		derived, ok := deriveProjectRole(&p, email)
		if !ok {
			continue
		}
		out = append(out, domain.ProjectAccess{ID: p.ID, Title: p.Title, DerivedRole: derived})
	}
	return out, nil
}

// Switch re-binds the identity to the given project after verifying the
// email matches one of the project's contacts. The returned identity carries
// the derived role and binding; the caller mints a fresh credential from it.
func (d *DirectoryService) Switch(ctx context.Context, identity *domain.Identity, projectID string) (*domain.Identity, error) {
	role := d.sessions.EffectiveRole(identity)
	if role == domain.RoleAdmin || role == domain.RoleManager {
		return nil, domain.ErrForbidden
	}

	p, err := d.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	derived, ok := deriveProjectRole(p, domain.NormalizeEmail(identity.Email))
	if !ok {
		return nil, domain.ErrForbidden
	}

	return &domain.Identity{
		UserID:         identity.UserID,
		Email:          identity.Email,
		Role:           derived,
		BoundProjectID: p.ID,
	}, nil
}

// deriveProjectRole is the client-precedence rule: the client contact match
// is evaluated first and short-circuits, so an email listed as both client
// and vendor of the same project is a client. This precedence is a rule, not
// an accident of check ordering; do not invert it.
func deriveProjectRole(p *domain.Project, email string) (domain.Role, bool) {
	if domain.NormalizeEmail(p.ClientEmail) == email {
		return domain.RoleClient, true
	}
	if domain.NormalizeEmail(p.VendorEmail) == email {
		return domain.RoleVendor, true
	}
	return "", false
}
