package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/greedyapp/greedy/internal/contract"
	"github.com/greedyapp/greedy/internal/domain"
	"github.com/greedyapp/greedy/internal/repository"
)

type assignmentService struct {
	assignments repository.AssignmentRepo
	classes     repository.ClassRepo
}

// NewAssignmentService creates an AssignmentService backed by the given
// repositories.
func NewAssignmentService(assignments repository.AssignmentRepo, classes repository.ClassRepo) AssignmentService {
	return &assignmentService{assignments: assignments, classes: classes}
}

func (s *assignmentService) Create(ctx context.Context, a *domain.Assignment) error {
	if strings.TrimSpace(a.Name) == "" {
		return contract.ValidationError("assignment name is required")
	}
	if a.ClassSlug == "" {
		return contract.ValidationError("assignment must belong to a class")
	}

	exists, err := s.classes.SlugExists(ctx, a.ClassSlug)
	if err != nil {
		return fmt.Errorf("checking class %q: %w", a.ClassSlug, err)
	}
	if !exists {
		return contract.NotFoundError(fmt.Sprintf("class %q not found", a.ClassSlug))
	}

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.ApplyDefaults()
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now

	if err := s.assignments.Create(ctx, a); err != nil {
		return fmt.Errorf("creating assignment: %w", err)
	}
	return nil
}

func (s *assignmentService) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	return s.assignments.GetByID(ctx, id)
}

func (s *assignmentService) ListByClass(ctx context.Context, classSlug string) ([]*domain.Assignment, error) {
	return s.assignments.ListByClass(ctx, classSlug)
}

func (s *assignmentService) ListAll(ctx context.Context) ([]*domain.Assignment, error) {
	return s.assignments.ListAll(ctx)
}

func (s *assignmentService) Update(ctx context.Context, a *domain.Assignment) error {
	if strings.TrimSpace(a.Name) == "" {
		return contract.ValidationError("assignment name is required")
	}
	a.ApplyDefaults()
	a.UpdatedAt = time.Now().UTC()
	return s.assignments.Update(ctx, a)
}

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	return s.assignments.Delete(ctx, id)
}
