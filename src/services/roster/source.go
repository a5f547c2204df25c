package roster

import (
	"context"
	"errors"

	"attendance-sf2/src/models"
)

var ErrSectionNotFound = errors.New("section not found")

// Source is the read side of the student/section store.
type Source interface {
	GetSection(ctx context.Context, schoolID, sectionID string) (*models.Section, error)
	ListSections(ctx context.Context, schoolID string) ([]models.Section, error)
	ListStudents(ctx context.Context, schoolID string) ([]models.Student, error)
}

// Writer persists explicit section references.
type Writer interface {
	SetSectionRef(ctx context.Context, studentID, sectionRef string) error
}

// Members loads a section and its resolved students.
func Members(ctx context.Context, src Source, schoolID, sectionID string) (*models.Section, []models.Student, error) {
	section, err := src.GetSection(ctx, schoolID, sectionID)
	if err != nil {
		return nil, nil, err
	}
	students, err := src.ListStudents(ctx, schoolID)
	if err != nil {
		return nil, nil, err
	}
	return section, Resolve(*section, students), nil
}
