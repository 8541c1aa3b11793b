package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sinarkarya/construction-system/internal/core/domain"
)

func newTestDirectory(adminEmail string, projects *stubProjectRepo) *DirectoryService {
	sessions := NewSessionService("secret", adminEmail, time.Hour, nil, zerolog.Nop())
	return NewDirectoryService(sessions, projects)
}

func TestDirectoryService_List_ClientAndVendorMatches(t *testing.T) {
	projects := newStubProjectRepo()
	projects.add(&domain.Project{ID: "P1", Title: "Rumah A", ClientEmail: "c@x.com", VendorEmail: "v@x.com"})
	projects.add(&domain.Project{ID: "P2", Title: "Gudang B", ClientEmail: "other@x.com", VendorEmail: "c@x.com"})
	projects.add(&domain.Project{ID: "P3", Title: "Kantor C", ClientEmail: "other@x.com", VendorEmail: "other2@x.com"})
	dir := newTestDirectory("", projects)

	got, err := dir.ListAccessible(context.Background(), &domain.Identity{Email: "c@x.com", Role: domain.RoleClient})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if got[0].ID != "P1" || got[0].DerivedRole != domain.RoleClient {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}
	if got[1].ID != "P2" || got[1].DerivedRole != domain.RoleVendor {
		t.Fatalf("unexpected second entry: %+v", got[1])
	}
}

func TestDirectoryService_List_CaseInsensitiveEmail(t *testing.T) {
	projects := newStubProjectRepo()
	projects.add(&domain.Project{ID: "P1", Title: "Rumah A", ClientEmail: "C@X.com", VendorEmail: "v@x.com"})
	dir := newTestDirectory("", projects)

	got, err := dir.ListAccessible(context.Background(), &domain.Identity{Email: "c@x.com", Role: domain.RoleClient})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].DerivedRole != domain.RoleClient {
		t.Fatalf("case-insensitive match failed: %+v", got)
	}
}

func TestDirectoryService_List_SelfDealingDerivesClient(t *testing.T) {
	projects := newStubProjectRepo()
	projects.add(&domain.Project{ID: "P1", Title: "Rumah A", ClientEmail: "both@x.com", VendorEmail: "both@x.com"})
	dir := newTestDirectory("", projects)

	got, err := dir.ListAccessible(context.Background(), &domain.Identity{Email: "both@x.com", Role: domain.RoleClient})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	// Exactly one entry, and the client-precedence rule decides the role.
	if len(got) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(got))
	}
	if got[0].DerivedRole != domain.RoleClient {
		t.Fatalf("client precedence violated: %s", got[0].DerivedRole)
	}
}

func TestDirectoryService_List_PrivilegedRolesGetEmpty(t *testing.T) {
	projects := newStubProjectRepo()
	projects.add(&domain.Project{ID: "P1", Title: "Rumah A", ClientEmail: "a@x.com", VendorEmail: "v@x.com"})
	dir := newTestDirectory("boss@x.com", projects)

	for _, identity := range []*domain.Identity{
		{Email: "a@x.com", Role: domain.RoleAdmin},
		{Email: "m@x.com", Role: domain.RoleManager},
		// Stored client role, promoted to admin by the configured address.
		{Email: "boss@x.com", Role: domain.RoleClient},
	} {
		got, err := dir.ListAccessible(context.Background(), identity)
		if err != nil {
			t.Fatalf("list failed for %s: %v", identity.Role, err)
		}
		if len(got) != 0 {
			t.Fatalf("expected empty directory for %s/%s, got %d entries", identity.Role, identity.Email, len(got))
		}
	}
}

func TestDirectoryService_Switch_Success(t *testing.T) {
	projects := newStubProjectRepo()
	projects.add(&domain.Project{ID: "P1", Title: "Rumah A", ClientEmail: "other@x.com", VendorEmail: "v@x.com"})
	dir := newTestDirectory("", projects)

	bound, err := dir.Switch(context.Background(), &domain.Identity{UserID: "u1", Email: "v@x.com", Role: domain.RoleVendor}, "P1")
	if err != nil {
		t.Fatalf("switch failed: %v", err)
	}
	if bound.BoundProjectID != "P1" || bound.Role != domain.RoleVendor || bound.UserID != "u1" {
		t.Fatalf("unexpected bound identity: %+v", bound)
	}
}

func TestDirectoryService_Switch_NonParticipantForbidden(t *testing.T) {
	projects := newStubProjectRepo()
	projects.add(&domain.Project{ID: "P1", Title: "Rumah A", ClientEmail: "c@x.com", VendorEmail: "v@x.com"})
	dir := newTestDirectory("", projects)

	if _, err := dir.Switch(context.Background(), &domain.Identity{Email: "stranger@x.com", Role: domain.RoleClient}, "P1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestDirectoryService_Switch_MissingProject(t *testing.T) {
	dir := newTestDirectory("", newStubProjectRepo())

	if _, err := dir.Switch(context.Background(), &domain.Identity{Email: "c@x.com", Role: domain.RoleClient}, "nope"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestDirectoryService_Switch_PrivilegedForbidden(t *testing.T) {
	projects := newStubProjectRepo()
	projects.add(&domain.Project{ID: "P1", Title: "Rumah A", ClientEmail: "c@x.com", VendorEmail: "v@x.com"})
	dir := newTestDirectory("", projects)

	if _, err := dir.Switch(context.Background(), &domain.Identity{Email: "m@x.com", Role: domain.RoleManager}, "P1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for manager, got %v", err)
	}
}
