package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sinarkarya/construction-system/internal/core/domain"
)

// stubProjectRepo is an in-memory ProjectRepository. Listing order follows
// insertion order so tests control the "most recently updated" sequence.
type stubProjectRepo struct {
	projects map[string]*domain.Project
	order    []string
	err      error
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) add(p *domain.Project) {
	r.projects[p.ID] = p
	r.order = append(r.order, p.ID)
}

func (r *stubProjectRepo) remove(id string) {
	delete(r.projects, id)
}

func (r *stubProjectRepo) Exists(_ context.Context, id string) (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.projects[id]
	return ok, nil
}

func (r *stubProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProjectRepo) FindByParticipantEmail(_ context.Context, email string) ([]domain.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Project
	for _, id := range r.order {
		p, ok := r.projects[id]
		if !ok {
			continue
		}
		if domain.NormalizeEmail(p.ClientEmail) == email || domain.NormalizeEmail(p.VendorEmail) == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) FindAll(_ context.Context) ([]domain.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Project
	for _, id := range r.order {
		if p, ok := r.projects[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	if r.err != nil {
		return nil, r.err
	}
	clone := *p
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("p%d", len(r.order)+1)
	}
	r.add(&clone)
	created := clone
	return &created, nil
}

func (r *stubProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *stubProjectRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	r.remove(id)
	return nil
}

// stubReadStatusRepo records upserts keyed the way the real collection is.
type stubReadStatusRepo struct {
	rows map[string]time.Time
	err  error
}

func newStubReadStatusRepo() *stubReadStatusRepo {
	return &stubReadStatusRepo{rows: make(map[string]time.Time)}
}

func (r *stubReadStatusRepo) Upsert(_ context.Context, projectID, userEmail string, at time.Time) error {
	if r.err != nil {
		return r.err
	}
	r.rows[projectID+"|"+userEmail] = at
	return nil
}

func (r *stubReadStatusRepo) DeleteByProject(_ context.Context, projectID string) error {
	if r.err != nil {
		return r.err
	}
	for k := range r.rows {
		if len(k) > len(projectID) && k[:len(projectID)+1] == projectID+"|" {
			delete(r.rows, k)
		}
	}
	return nil
}

// stubRevocationStore is an in-memory denylist.
type stubRevocationStore struct {
	revoked map[string]bool
	err     error
}

func newStubRevocationStore() *stubRevocationStore {
	return &stubRevocationStore{revoked: make(map[string]bool)}
}

func (s *stubRevocationStore) Revoke(_ context.Context, credential string, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.revoked[credential] = true
	return nil
}

func (s *stubRevocationStore) IsRevoked(_ context.Context, credential string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.revoked[credential], nil
}

// stubUserRepo is an in-memory UserRepository keyed by email.
type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	if clone.ID == "" {
		clone.ID = "u_" + clone.Email
	}
	r.users[clone.Email] = &clone
	created := clone
	return &created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}
