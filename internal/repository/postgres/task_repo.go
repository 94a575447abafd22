package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-hackmate-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type taskRepo struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) domain.TaskRepository {
	return &taskRepo{db: db}
}

const taskColumns = `
	id, team_id, title, COALESCE(description, ''), assigned_to, created_by,
	status, priority, due_date, tags, created_at, updated_at, completed_at`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	var tags []string
	err := row.Scan(
		&t.ID, &t.TeamID, &t.Title, &t.Description, &t.AssignedTo, &t.CreatedBy,
		&t.Status, &t.Priority, &t.DueDate, pq.Array(&tags),
		&t.CreatedAt, &t.UpdatedAt, &t.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Tags = domain.NewSkillSet(tags...)
	return &t, nil
}

func (r *taskRepo) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (team_id, title, description, assigned_to, created_by, status, priority, due_date, tags, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		task.TeamID, task.Title, task.Description, task.AssignedTo, task.CreatedBy,
		task.Status, task.Priority, task.DueDate, pq.Array([]string(task.Tags)),
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

func (r *taskRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	t, err := scanTask(r.db.QueryRow(ctx, `SELECT`+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (r *taskRepo) Fetch(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := `SELECT` + taskColumns + ` FROM tasks WHERE 1=1`
	args := make([]interface{}, 0, 4)

	if filter.TeamID != nil {
		args = append(args, *filter.TeamID)
		query += fmt.Sprintf(" AND team_id = $%d", len(args))
	}
	if filter.AssignedTo != "" {
		args = append(args, filter.AssignedTo)
		query += fmt.Sprintf(" AND assigned_to = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Priority != nil {
		args = append(args, *filter.Priority)
		query += fmt.Sprintf(" AND priority = $%d", len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func (r *taskRepo) FetchByTeam(ctx context.Context, teamID int64) ([]domain.Task, error) {
	rows, err := r.db.Query(ctx, `SELECT`+taskColumns+` FROM tasks WHERE team_id = $1 ORDER BY id`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func collectTasks(rows pgx.Rows) ([]domain.Task, error) {
	tasks := make([]domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *taskRepo) Update(ctx context.Context, task *domain.Task) error {
	query := `
		UPDATE tasks SET title = $1, description = $2, assigned_to = $3, status = $4,
		       priority = $5, due_date = $6, tags = $7, completed_at = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`
	err := r.db.QueryRow(ctx, query,
		task.Title, task.Description, task.AssignedTo, task.Status,
		task.Priority, task.DueDate, pq.Array([]string(task.Tags)), task.CompletedAt, task.ID,
	).Scan(&task.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *taskRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *taskRepo) CountAssigned(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM tasks WHERE assigned_to = $1`, userID).Scan(&n)
	return n, err
}

func (r *taskRepo) CountCompleted(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks WHERE assigned_to = $1 AND status = 'done'`, userID).Scan(&n)
	return n, err
}

func (r *taskRepo) CountCompletedSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks WHERE assigned_to = $1 AND status = 'done' AND completed_at >= $2`,
		userID, since).Scan(&n)
	return n, err
}

func (r *taskRepo) CountCreatedSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM tasks WHERE created_by = $1 AND created_at >= $2`, userID, since).Scan(&n)
	return n, err
}
