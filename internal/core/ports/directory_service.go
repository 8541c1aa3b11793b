package ports

import (
	"context"

	"github.com/sinarkarya/construction-system/internal/core/domain"
)

// DirectoryService enumerates the projects a non-privileged identity may
// switch into.
type DirectoryService interface {
	// ListAccessible returns every project whose client or vendor contact
	// matches the identity's email, most recently updated first, with the
	// role the identity would hold there. Admin and manager identities get
	// an empty list; those roles navigate unscoped and never switch
	// projects through this directory.
	ListAccessible(ctx context.Context, identity *domain.Identity) ([]domain.ProjectAccess, error)
	// Switch re-binds the identity to the given project after verifying
	// membership, returning the new identity to mint a fresh credential
	// from. ErrProjectNotFound / ErrForbidden on failure.
	Switch(ctx context.Context, identity *domain.Identity, projectID string) (*domain.Identity, error)
}
