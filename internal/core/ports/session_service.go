package ports

import (
	"context"
	"time"

	"github.com/sinarkarya/construction-system/internal/core/domain"
)

// SessionService mints, verifies, and revokes the signed session credential
// and resolves it into a typed identity.
type SessionService interface {
	// Resolve verifies the credential and decodes it into an Identity.
	// Every failure mode — malformed, expired, unsigned, revoked, unknown
	// role — yields (nil, false), never an error: "not logged in" is a
	// normal state for public or probe requests.
	Resolve(ctx context.Context, credential string) (*domain.Identity, bool)
	// Mint issues a signed credential for the identity.
	Mint(identity *domain.Identity, ttl time.Duration) (string, error)
	// Revoke denylists the credential until its natural expiry.
	Revoke(ctx context.Context, credential string) error
	// IsPrivileged reports whether the email equals the configured
	// administrator address (case-insensitive, trimmed).
	IsPrivileged(email string) bool
	// EffectiveRole returns the role used for authorization decisions:
	// the stored role, promoted to admin on an administrator-email match.
	// Re-derived at every decision, never cached on the identity.
	EffectiveRole(identity *domain.Identity) domain.Role
}

// RevocationStore is the denylist consulted by Resolve and written by Revoke.
type RevocationStore interface {
	Revoke(ctx context.Context, credential string, ttl time.Duration) error
	IsRevoked(ctx context.Context, credential string) (bool, error)
}
