package service

import (
	"context"

	"github.com/ebegrace/zion-academy-api/internal/models"
	appErrors "github.com/ebegrace/zion-academy-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
}

// StudentService serves the enrolled-student roster.
type StudentService struct {
	repo studentRepository
}

// NewStudentService constructs the service.
func NewStudentService(repo studentRepository) *StudentService {
	return &StudentService{repo: repo}
}

// List returns every enrolled student, most recent first.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}
