package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/greedyapp/greedy/internal/contract"
	"github.com/greedyapp/greedy/internal/domain"
	"github.com/greedyapp/greedy/internal/repository"
)

type classService struct {
	repo repository.ClassRepo
}

// NewClassService creates a ClassService backed by a class repository.
func NewClassService(repo repository.ClassRepo) ClassService {
	return &classService{repo: repo}
}

func (s *classService) Create(ctx context.Context, name, description, schedule, color string) (*domain.Class, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, contract.ValidationError("class name is required")
	}

	slug, err := s.availableSlug(ctx, name)
	if err != nil {
		return nil, err
	}

	color = domain.CoalesceStr(color, domain.ClassColors[rand.Intn(len(domain.ClassColors))])

	now := time.Now().UTC()
	c := &domain.Class{
		ID:          uuid.NewString(),
		Name:        name,
		Slug:        slug,
		Description: description,
		Schedule:    schedule,
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("creating class: %w", err)
	}
	return c, nil
}

// availableSlug derives the canonical slug once, at creation. Collisions get
// a numeric suffix rather than failing, so "History" and "History!" can both
// exist.
func (s *classService) availableSlug(ctx context.Context, name string) (string, error) {
	base := domain.Slugify(name)
	if base == "" {
		return "", contract.ValidationError("class name must contain letters or digits")
	}

	slug := base
	for i := 2; ; i++ {
		exists, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			return "", fmt.Errorf("checking slug %q: %w", slug, err)
		}
		if !exists {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

func (s *classService) GetBySlug(ctx context.Context, slug string) (*domain.Class, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *classService) List(ctx context.Context) ([]*domain.Class, error) {
	return s.repo.List(ctx)
}

func (s *classService) Update(ctx context.Context, slug string, fields ClassUpdate) (*domain.Class, error) {
	c, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if fields.Description != nil {
		c.Description = *fields.Description
	}
	if fields.Schedule != nil {
		c.Schedule = *fields.Schedule
	}
	if fields.Color != nil {
		c.Color = *fields.Color
	}
	c.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("updating class %q: %w", slug, err)
	}
	return c, nil
}

func (s *classService) Delete(ctx context.Context, slug string) error {
	return s.repo.Delete(ctx, slug)
}
