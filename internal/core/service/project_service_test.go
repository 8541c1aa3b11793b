package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sinarkarya/construction-system/internal/core/domain"
	"github.com/sinarkarya/construction-system/internal/core/ports"
)

func newTestProjectService(adminEmail string, projects *stubProjectRepo, statuses *stubReadStatusRepo) *ProjectService {
	sessions := NewSessionService("secret", adminEmail, time.Hour, nil, zerolog.Nop())
	return NewProjectService(sessions, projects, statuses, zerolog.Nop())
}

func seededProject() *domain.Project {
	return &domain.Project{
		ID:          "P1",
		Title:       "Rumah A",
		ClientEmail: "c@x.com",
		VendorEmail: "v@x.com",
		BudgetTotal: 500_000_000,
		AdminData:   &domain.AdminLedger{ClientFundsReceived: 100_000_000, VendorAmountPaid: 50_000_000},
	}
}

func TestProjectService_Get_PrivilegedSeesLedger(t *testing.T) {
	projects := newStubProjectRepo()
	projects.add(seededProject())
	svc := newTestProjectService("", projects, newStubReadStatusRepo())

	p, err := svc.Get(context.Background(), &domain.Identity{Email: "m@x.com", Role: domain.RoleManager}, "P1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if p.AdminData == nil {
		t.Fatalf("manager must see the admin ledger")
	}
}

func TestProjectService_Get_ParticipantLedgerStripped(t *testing.T) {
	projects := newStubProjectRepo()
	projects.add(seededProject())
	svc := newTestProjectService("", projects, newStubReadStatusRepo())

	p, err := svc.Get(context.Background(), &domain.Identity{Email: "c@x.com", Role: domain.RoleClient}, "P1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if p.AdminData != nil {
		t.Fatalf("client must not see the admin ledger")
	}

	// The stored record keeps its ledger; only the view is stripped.
	if projects.projects["P1"].AdminData == nil {
		t.Fatalf("stored project mutated")
	}
}

func TestProjectService_Get_NonParticipantForbidden(t *testing.T) {
	projects := newStubProjectRepo()
	projects.add(seededProject())
	svc := newTestProjectService("", projects, newStubReadStatusRepo())

	if _, err := svc.Get(context.Background(), &domain.Identity{Email: "stranger@x.com", Role: domain.RoleVendor}, "P1"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestProjectService_CreateNormalizesContacts(t *testing.T) {
	projects := newStubProjectRepo()
	svc := newTestProjectService("", projects, newStubReadStatusRepo())

	p, err := svc.Create(context.Background(), ports.ProjectInput{
		Title:       "Gudang B",
		ClientEmail: " C@X.com ",
		VendorEmail: "V@X.COM",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.ClientEmail != "c@x.com" || p.VendorEmail != "v@x.com" {
		t.Fatalf("contacts not normalized: %q / %q", p.ClientEmail, p.VendorEmail)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set")
	}
}

func TestProjectService_DeletePrunesReadStatuses(t *testing.T) {
	projects := newStubProjectRepo()
	projects.add(seededProject())
	statuses := newStubReadStatusRepo()
	statuses.rows["P1|c@x.com"] = time.Now()
	statuses.rows["P2|c@x.com"] = time.Now()
	svc := newTestProjectService("", projects, statuses)

	if err := svc.Delete(context.Background(), "P1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := projects.projects["P1"]; ok {
		t.Fatalf("project not deleted")
	}
	if _, ok := statuses.rows["P1|c@x.com"]; ok {
		t.Fatalf("read statuses for the deleted project must be pruned")
	}
	if _, ok := statuses.rows["P2|c@x.com"]; !ok {
		t.Fatalf("unrelated read statuses must survive")
	}
}

func TestProjectService_Update_MissingProject(t *testing.T) {
	svc := newTestProjectService("", newStubProjectRepo(), newStubReadStatusRepo())

	if _, err := svc.Update(context.Background(), "ghost", ports.ProjectInput{Title: "X"}); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
