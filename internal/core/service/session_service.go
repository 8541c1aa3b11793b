package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/sinarkarya/construction-system/internal/core/domain"
	"github.com/sinarkarya/construction-system/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionService is the session authority: it mints, verifies, and revokes
// the signed credential and resolves it into a typed Identity.
type SessionService struct {
	jwtSecret  string
	adminEmail string
	tokenTTL   time.Duration
	revoked    ports.RevocationStore
	logger     zerolog.Logger
}

func NewSessionService(jwtSecret, adminEmail string, tokenTTL time.Duration, revoked ports.RevocationStore, logger zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = defaultSessionTTL
	}
	return &SessionService{
		jwtSecret:  jwtSecret,
		adminEmail: domain.NormalizeEmail(adminEmail),
		tokenTTL:   tokenTTL,
		revoked:    revoked,
		logger:     logger,
	}
}

// Resolve verifies the credential and decodes it into an Identity. Every
// failure collapses to (nil, false): a broken or stale session must not be
// distinguishable from "never logged in".
func (s *SessionService) Resolve(ctx context.Context, credential string) (*domain.Identity, bool) {
	if credential == "" {
		return nil, false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, false
	}

	if s.revoked != nil {
		hit, err := s.revoked.IsRevoked(ctx, credential)
		if err != nil {
			// Fail open: a denylist outage must not log everyone out.
			s.logger.Warn().Err(err).Msg("revocation list unavailable")
		} else if hit {
			return nil, false
		}
	}

	role, ok := domain.ParseRole(stringClaim(claims, "role"))
	if !ok {
		return nil, false
	}

	return &domain.Identity{
		UserID:         stringClaim(claims, "user_id"),
		Email:          domain.NormalizeEmail(stringClaim(claims, "email")),
		Role:           role,
		BoundProjectID: stringClaim(claims, "project_id"),
	}, true
}

// Mint issues a signed HS256 credential for the identity. A zero ttl falls
// back to the configured session lifetime; a negative ttl is honored as-is,
// producing an already-expired credential.
func (s *SessionService) Mint(identity *domain.Identity, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = s.tokenTTL
	}
	claims := jwt.MapClaims{
		"user_id": identity.UserID,
		"email":   identity.Email,
		"role":    string(identity.Role),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	if identity.BoundProjectID != "" {
		claims["project_id"] = identity.BoundProjectID
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// Revoke denylists the credential until its natural expiry. Unlike Resolve,
// a store failure here is surfaced: logout must not silently leave a live
// credential behind.
func (s *SessionService) Revoke(ctx context.Context, credential string) error {
	if credential == "" || s.revoked == nil {
		return nil
	}
	return s.revoked.Revoke(ctx, credential, s.remainingTTL(credential))
}

// IsPrivileged reports whether the email equals the configured administrator
// address. This and the stored admin role are two independent, equally
// authoritative sources of the same privilege level.
func (s *SessionService) IsPrivileged(email string) bool {
	return s.adminEmail != "" && domain.NormalizeEmail(email) == s.adminEmail
}

// EffectiveRole computes the role authorization decisions use: the stored
// role, promoted to admin on an administrator-email match. It is re-derived
// at every decision so a late change to the administrator configuration takes
// effect without re-login.
func (s *SessionService) EffectiveRole(identity *domain.Identity) domain.Role {
	if identity.Role == domain.RoleAdmin || s.IsPrivileged(identity.Email) {
		return domain.RoleAdmin
	}
	return identity.Role
}

// remainingTTL reads exp from the (already verified) credential so the
// denylist entry lives exactly as long as the credential would have.
func (s *SessionService) remainingTTL(credential string) time.Duration {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			if d := time.Until(exp.Time); d > 0 {
				return d
			}
		}
	}
	return s.tokenTTL
}

func stringClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
