package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/greedyapp/greedy/internal/domain"
)

// Class options
type ClassOption func(*domain.Class)

func WithSchedule(s string) ClassOption {
	return func(c *domain.Class) {
		c.Schedule = s
	}
}

func WithColor(color string) ClassOption {
	return func(c *domain.Class) {
		c.Color = color
	}
}

// NewTestClass builds an in-memory class with a derived slug.
func NewTestClass(name string, opts ...ClassOption) *domain.Class {
	now := time.Now().UTC()
	c := &domain.Class{
		ID:        uuid.New().String(),
		Name:      name,
		Slug:      domain.Slugify(name),
		Color:     "blue",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Assignment options
type AssignmentOption func(*domain.Assignment)

func WithDates(start, end string) AssignmentOption {
	return func(a *domain.Assignment) {
		a.StartDate = start
		a.EndDate = end
	}
}

func WithProgress(p int) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Progress = p
	}
}

func WithPriority(p domain.PriorityLevel) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Priority = p
	}
}

func WithFiles(files ...domain.Attachment) AssignmentOption {
	return func(a *domain.Assignment) {
		a.Files = files
	}
}

// NewTestAssignment builds an in-memory assignment with defaults applied.
func NewTestAssignment(classSlug, name string, opts ...AssignmentOption) *domain.Assignment {
	now := time.Now().UTC()
	a := &domain.Assignment{
		ID:        uuid.New().String(),
		ClassSlug: classSlug,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	a.ApplyDefaults()
	for _, opt := range opts {
		opt(a)
	}
	return a
}
