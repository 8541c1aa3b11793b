package handler_test

import (
	"context"
	"errors"
	"time"

	"github.com/sinarkarya/construction-system/internal/core/domain"
)

var errTest = errors.New("storage failure")

type memProjectRepo struct {
	projects map[string]*domain.Project
	order    []string
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *memProjectRepo) add(p *domain.Project) {
	r.projects[p.ID] = p
	r.order = append(r.order, p.ID)
}

func (r *memProjectRepo) Exists(_ context.Context, id string) (bool, error) {
	_, ok := r.projects[id]
	return ok, nil
}

func (r *memProjectRepo) FindByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *memProjectRepo) FindByParticipantEmail(_ context.Context, email string) ([]domain.Project, error) {
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

func (r *memProjectRepo) FindAll(_ context.Context) ([]domain.Project, error) {
	var out []domain.Project
	for _, id := range r.order {
		if p, ok := r.projects[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	clone := *p
	if clone.ID == "" {
		clone.ID = "P1"
	}
	r.add(&clone)
	created := clone
	return &created, nil
}

func (r *memProjectRepo) Update(_ context.Context, p *domain.Project) error {
	if _, ok := r.projects[p.ID]; !ok {
		return domain.ErrProjectNotFound
	}
	clone := *p
	r.projects[p.ID] = &clone
	return nil
}

func (r *memProjectRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

type memReadStatusRepo struct {
	rows map[string]time.Time
}

func newMemReadStatusRepo() *memReadStatusRepo {
	return &memReadStatusRepo{rows: make(map[string]time.Time)}
}

func (r *memReadStatusRepo) Upsert(_ context.Context, projectID, userEmail string, at time.Time) error {
	r.rows[projectID+"|"+userEmail] = at
	return nil
}

func (r *memReadStatusRepo) DeleteByProject(_ context.Context, projectID string) error {
	for k := range r.rows {
		if len(k) > len(projectID) && k[:len(projectID)+1] == projectID+"|" {
			delete(r.rows, k)
		}
	}
	return nil
}

type memRevocationStore struct {
	revoked map[string]bool
	err     error
}

func newMemRevocationStore() *memRevocationStore {
	return &memRevocationStore{revoked: make(map[string]bool)}
}

func (s *memRevocationStore) Revoke(_ context.Context, credential string, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	s.revoked[credential] = true
	return nil
}

func (s *memRevocationStore) IsRevoked(_ context.Context, credential string) (bool, error) {
	return s.revoked[credential], nil
}

type memUserRepo struct {
	users map[string]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
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

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}
