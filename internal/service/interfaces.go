package service

import (
	"context"

	"github.com/greedyapp/greedy/internal/domain"
)

// ClassUpdate carries the class fields an update may change. Nil pointers
// leave the stored value untouched. The name and slug are fixed at creation;
// renaming would orphan the slug-keyed assignment collection.
type ClassUpdate struct {
	Description *string
	Schedule    *string
	Color       *string
}

type ClassService interface {
	Create(ctx context.Context, name, description, schedule, color string) (*domain.Class, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Class, error)
	List(ctx context.Context) ([]*domain.Class, error)
	Update(ctx context.Context, slug string, fields ClassUpdate) (*domain.Class, error)
	Delete(ctx context.Context, slug string) error
}

type AssignmentService interface {
	Create(ctx context.Context, a *domain.Assignment) error
	GetByID(ctx context.Context, id string) (*domain.Assignment, error)
	ListByClass(ctx context.Context, classSlug string) ([]*domain.Assignment, error)
	ListAll(ctx context.Context) ([]*domain.Assignment, error)
	Update(ctx context.Context, a *domain.Assignment) error
	Delete(ctx context.Context, id string) error
}
