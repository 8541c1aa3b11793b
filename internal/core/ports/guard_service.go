package ports

import (
	"context"

	"github.com/sinarkarya/construction-system/internal/core/domain"
)

// GuardService decides whether an identity's project binding is still valid.
type GuardService interface {
	// AuthorizeBinding confirms the bound project still exists. It is
	// read-confirming, not caching: project deletion is an out-of-band
	// event the session cannot otherwise observe, so the check runs on
	// every request that carries a binding. BindingRevoked means the
	// caller must clear the credential and answer as "not logged in".
	// Privileged identities always pass, with the binding forced empty.
	AuthorizeBinding(ctx context.Context, identity *domain.Identity) (domain.BindingResult, error)
}
