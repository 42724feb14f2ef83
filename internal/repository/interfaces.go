package repository

import (
	"context"

	"github.com/greedyapp/greedy/internal/domain"
)

// ClassRepo persists class records. The slug is the canonical lookup key,
// derived once at creation; a lookup miss is a NotFound error, never a fuzzy
// re-derivation.
type ClassRepo interface {
	Create(ctx context.Context, c *domain.Class) error
	GetBySlug(ctx context.Context, slug string) (*domain.Class, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context) ([]*domain.Class, error)
	Update(ctx context.Context, c *domain.Class) error
	Delete(ctx context.Context, slug string) error
}

// AssignmentRepo persists assignment records scoped by class slug.
type AssignmentRepo interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	ListByClass(ctx context.Context, classSlug string) ([]*domain.Assignment, error)
	ListAll(ctx context.Context) ([]*domain.Assignment, error)
	Update(ctx context.Context, a *domain.Assignment) error
	Delete(ctx context.Context, id string) error
}
