package students

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"upsolve-tracker/core/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_.\-]{3,24}$`)

// Service manages student profiles.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new student service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Create stores a new student. The handle may be empty and set later.
func (s *Service) Create(ctx context.Context, name, handle string) (*Student, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name required: %w", apperror.ErrValidation)
	}
	handle = strings.TrimSpace(handle)
	if handle != "" && !handlePattern.MatchString(handle) {
		return nil, fmt.Errorf("invalid handle %q: %w", handle, apperror.ErrValidation)
	}

	st := &Student{Name: name, Handle: handle}
	if err := s.db.WithContext(ctx).Create(st).Error; err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	s.logger.Info("Student created", zap.Uint("student_id", st.ID))
	return st, nil
}

// Get returns a student by id.
func (s *Service) Get(ctx context.Context, id uint) (*Student, error) {
	var st Student
	err := s.db.WithContext(ctx).First(&st, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("student %d: %w", id, apperror.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load student %d: %w", id, err)
	}
	return &st, nil
}

// UpdateHandle sets the judge handle of a student.
func (s *Service) UpdateHandle(ctx context.Context, id uint, handle string) (*Student, error) {
	handle = strings.TrimSpace(handle)
	if !handlePattern.MatchString(handle) {
		return nil, fmt.Errorf("invalid handle %q: %w", handle, apperror.ErrValidation)
	}

	st, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(st).Update("handle", handle).Error; err != nil {
		return nil, fmt.Errorf("failed to update handle: %w", err)
	}
	st.Handle = handle
	return st, nil
}

// WithHandles lists every student that has a judge handle, by id.
func (s *Service) WithHandles(ctx context.Context) ([]Student, error) {
	var out []Student
	err := s.db.WithContext(ctx).Where("handle <> ?", "").Order("id").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	return out, nil
}

// Handle returns the judge handle of a student, empty when unset.
func (s *Service) Handle(ctx context.Context, id uint) (string, error) {
	st, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return st.Handle, nil
}

// IDsWithHandles lists the ids of students that have a judge handle.
func (s *Service) IDsWithHandles(ctx context.Context) ([]uint, error) {
	list, err := s.WithHandles(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0, len(list))
	for _, st := range list {
		ids = append(ids, st.ID)
	}
	return ids, nil
}
