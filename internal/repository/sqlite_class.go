package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/greedyapp/greedy/internal/contract"
	"github.com/greedyapp/greedy/internal/domain"
)

// SQLiteClassRepo implements ClassRepo using a SQLite database.
type SQLiteClassRepo struct {
	db *sql.DB
}

// NewSQLiteClassRepo creates a new SQLiteClassRepo.
func NewSQLiteClassRepo(db *sql.DB) *SQLiteClassRepo {
	return &SQLiteClassRepo{db: db}
}

func (r *SQLiteClassRepo) Create(ctx context.Context, c *domain.Class) error {
	query := `INSERT INTO classes (id, name, slug, description, schedule, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Slug,
		c.Description,
		c.Schedule,
		c.Color,
		formatTime(c.CreatedAt),
		formatTime(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting class: %w", err)
	}
	return nil
}

func (r *SQLiteClassRepo) GetBySlug(ctx context.Context, slug string) (*domain.Class, error) {
	query := `SELECT id, name, slug, description, schedule, color, created_at, updated_at
		FROM classes WHERE slug = ?`
	row := r.db.QueryRowContext(ctx, query, slug)

	var c domain.Class
	var createdAt, updatedAt string
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Schedule, &c.Color, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, contract.NotFoundError(fmt.Sprintf("no class with slug %q", slug))
		}
		return nil, fmt.Errorf("scanning class: %w", err)
	}
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return &c, nil
}

func (r *SQLiteClassRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM classes WHERE slug = ?`, slug).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking slug: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteClassRepo) List(ctx context.Context) ([]*domain.Class, error) {
	query := `SELECT id, name, slug, description, schedule, color, created_at, updated_at
		FROM classes ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing classes: %w", err)
	}
	defer rows.Close()

	var classes []*domain.Class
	for rows.Next() {
		var c domain.Class
		var createdAt, updatedAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Schedule, &c.Color, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning class row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		c.UpdatedAt = parseTime(updatedAt)
		classes = append(classes, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating classes: %w", err)
	}
	return classes, nil
}

func (r *SQLiteClassRepo) Update(ctx context.Context, c *domain.Class) error {
	query := `UPDATE classes SET name = ?, description = ?, schedule = ?, color = ?, updated_at = ?
		WHERE slug = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Description,
		c.Schedule,
		c.Color,
		formatTime(c.UpdatedAt),
		c.Slug,
	)
	if err != nil {
		return fmt.Errorf("updating class: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return contract.NotFoundError(fmt.Sprintf("no class with slug %q", c.Slug))
	}
	return nil
}

func (r *SQLiteClassRepo) Delete(ctx context.Context, slug string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE slug = ?`, slug)
	if err != nil {
		return fmt.Errorf("deleting class: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return contract.NotFoundError(fmt.Sprintf("no class with slug %q", slug))
	}
	return nil
}
