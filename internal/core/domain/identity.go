package domain

import "strings"

// Role enumerates every role the system recognises. Session payloads are
// decoded into this closed set; unknown strings are rejected at the decode
// boundary rather than carried around as free-form text.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleClient  Role = "client"
	RoleVendor  Role = "vendor"
)

// ParseRole maps a raw role string onto the closed Role set.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleManager:
		return RoleManager, true
	case RoleClient:
		return RoleClient, true
	case RoleVendor:
		return RoleVendor, true
	}
	return "", false
}

// Identity is the request-scoped, verified representation of the caller.
// It is produced fresh from the session credential on every request and is
// never mutated in place; a changed identity means a new credential was
// minted.
type Identity struct {
	UserID         string `json:"userId"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	BoundProjectID string `json:"projectId,omitempty"`
}

// NormalizeEmail applies the canonical comparison form used everywhere an
// email decides access: trimmed and lowercased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// BindingResult is the outcome of confirming an identity's project binding.
type BindingResult int

const (
	// BindingOK admits the identity unchanged for the rest of the request.
	BindingOK BindingResult = iota
	// BindingRevoked means the bound project no longer exists; the caller
	// must clear the credential and treat the request as unauthenticated.
	BindingRevoked
)
