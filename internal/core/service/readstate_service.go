package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sinarkarya/construction-system/internal/core/domain"
	"github.com/sinarkarya/construction-system/internal/core/ports"
)

// ReadStateService records when a user last acknowledged a project.
type ReadStateService struct {
	projects ports.ProjectRepository
	statuses ports.ReadStatusRepository
	logger   zerolog.Logger
}

func NewReadStateService(projects ports.ProjectRepository, statuses ports.ReadStatusRepository, logger zerolog.Logger) *ReadStateService {
	return &ReadStateService{projects: projects, statuses: statuses, logger: logger}
}

// Acknowledge marks the project as seen by the user as of now. The project
// must exist: the caller named it explicitly, so a missing project is a real
// 404, not a silent degrade. The write is an atomic create-or-update on
// (projectID, userEmail); last write wins and repetition never duplicates
// the row.
func (s *ReadStateService) Acknowledge(ctx context.Context, projectID, userEmail string) (time.Time, error) {
	exists, err := s.projects.Exists(ctx, projectID)
	if err != nil {
		return time.Time{}, err
	}
	if !exists {
		return time.Time{}, domain.ErrProjectNotFound
	}

	now := time.Now().UTC()
	email := domain.NormalizeEmail(userEmail)
	if err := s.statuses.Upsert(ctx, projectID, email, now); err != nil {
		s.logger.Error().Err(err).Str("project_id", projectID).Msg("failed to record acknowledgment")
		return time.Time{}, err
	}

	return now, nil
}
