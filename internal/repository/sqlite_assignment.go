package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/greedyapp/greedy/internal/contract"
	"github.com/greedyapp/greedy/internal/domain"
)

// SQLiteAssignmentRepo implements AssignmentRepo using a SQLite database.
type SQLiteAssignmentRepo struct {
	db *sql.DB
}

// NewSQLiteAssignmentRepo creates a new SQLiteAssignmentRepo.
func NewSQLiteAssignmentRepo(db *sql.DB) *SQLiteAssignmentRepo {
	return &SQLiteAssignmentRepo{db: db}
}

const assignmentColumns = `id, class_slug, name, start_date, end_date, description, progress, priority, created_at, updated_at`

func (r *SQLiteAssignmentRepo) Create(ctx context.Context, a *domain.Assignment) error {
	query := `INSERT INTO assignments (` + assignmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.ClassSlug,
		a.Name,
		a.StartDate,
		a.EndDate,
		a.Description,
		a.Progress,
		string(a.Priority),
		formatTime(a.CreatedAt),
		formatTime(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	return r.replaceAttachments(ctx, a.ID, a.Files)
}

func (r *SQLiteAssignmentRepo) GetByID(ctx context.Context, id string) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	a, err := scanAssignment(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, contract.NotFoundError(fmt.Sprintf("no assignment with id %q", id))
		}
		return nil, fmt.Errorf("scanning assignment: %w", err)
	}

	files, err := r.loadAttachments(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Files = files
	return a, nil
}

func (r *SQLiteAssignmentRepo) ListByClass(ctx context.Context, classSlug string) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE class_slug = ? ORDER BY created_at`
	return r.list(ctx, query, classSlug)
}

func (r *SQLiteAssignmentRepo) ListAll(ctx context.Context) ([]*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments ORDER BY created_at`
	return r.list(ctx, query)
}

func (r *SQLiteAssignmentRepo) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*domain.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignments: %w", err)
	}

	for _, a := range assignments {
		files, err := r.loadAttachments(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		a.Files = files
	}
	return assignments, nil
}

func (r *SQLiteAssignmentRepo) Update(ctx context.Context, a *domain.Assignment) error {
	query := `UPDATE assignments SET name = ?, start_date = ?, end_date = ?, description = ?,
		progress = ?, priority = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.Name,
		a.StartDate,
		a.EndDate,
		a.Description,
		a.Progress,
		string(a.Priority),
		formatTime(a.UpdatedAt),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating assignment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return contract.NotFoundError(fmt.Sprintf("no assignment with id %q", a.ID))
	}
	return r.replaceAttachments(ctx, a.ID, a.Files)
}

func (r *SQLiteAssignmentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting assignment: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return contract.NotFoundError(fmt.Sprintf("no assignment with id %q", id))
	}
	return nil
}

func scanAssignment(scan func(...interface{}) error) (*domain.Assignment, error) {
	var a domain.Assignment
	var priority, createdAt, updatedAt string
	err := scan(
		&a.ID, &a.ClassSlug, &a.Name,
		&a.StartDate, &a.EndDate, &a.Description,
		&a.Progress, &priority,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.Priority = domain.PriorityLevel(priority)
	a.CreatedAt = parseTime(createdAt)
	a.UpdatedAt = parseTime(updatedAt)
	return &a, nil
}

func (r *SQLiteAssignmentRepo) loadAttachments(ctx context.Context, assignmentID string) ([]domain.Attachment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, type, size, data FROM attachments WHERE assignment_id = ? ORDER BY position`,
		assignmentID)
	if err != nil {
		return nil, fmt.Errorf("listing attachments: %w", err)
	}
	defer rows.Close()

	var files []domain.Attachment
	for rows.Next() {
		var f domain.Attachment
		if err := rows.Scan(&f.Name, &f.Type, &f.Size, &f.Data); err != nil {
			return nil, fmt.Errorf("scanning attachment: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// replaceAttachments rewrites the ordered attachment list for an assignment.
func (r *SQLiteAssignmentRepo) replaceAttachments(ctx context.Context, assignmentID string, files []domain.Attachment) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM attachments WHERE assignment_id = ?`, assignmentID); err != nil {
		return fmt.Errorf("clearing attachments: %w", err)
	}
	for i, f := range files {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO attachments (assignment_id, position, name, type, size, data) VALUES (?, ?, ?, ?, ?, ?)`,
			assignmentID, i, f.Name, f.Type, f.Size, f.Data)
		if err != nil {
			return fmt.Errorf("inserting attachment: %w", err)
		}
	}
	return nil
}
