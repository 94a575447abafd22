package domain

import (
	"context"
	"time"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskDone       TaskStatus = "done"
	TaskBlocked    TaskStatus = "blocked"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskReview, TaskDone, TaskBlocked:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Task struct {
	ID          int64        `json:"id"`
	TeamID      int64        `json:"team_id" validate:"required"`
	Title       string       `json:"title" validate:"required,max=200"`
	Description string       `json:"description"`
	AssignedTo  *string      `json:"assigned_to,omitempty"`
	CreatedBy   string       `json:"created_by"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	Tags        SkillSet     `json:"tags"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	CompletedAt *time.Time   `json:"completed_at,omitempty"`
}

// IsOverdue reports whether the task has a past due date and is not done.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.Status != TaskDone && now.After(*t.DueDate)
}

// SetStatus transitions the task, freezing CompletedAt when the task enters
// done and clearing it when it leaves done.
func (t *Task) SetStatus(status TaskStatus, now time.Time) {
	t.Status = status
	if status == TaskDone && t.CompletedAt == nil {
		completed := now
		t.CompletedAt = &completed
	} else if status != TaskDone && t.CompletedAt != nil {
		t.CompletedAt = nil
	}
}

// TaskFilter narrows task listings.
type TaskFilter struct {
	TeamID     *int64
	AssignedTo string
	Status     *TaskStatus
	Priority   *TaskPriority
}

type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	GetByID(ctx context.Context, id int64) (*Task, error)
	Fetch(ctx context.Context, filter TaskFilter) ([]Task, error)
	FetchByTeam(ctx context.Context, teamID int64) ([]Task, error)
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id int64) error
	CountAssigned(ctx context.Context, userID string) (int64, error)
	CountCompleted(ctx context.Context, userID string) (int64, error)
	CountCompletedSince(ctx context.Context, userID string, since time.Time) (int64, error)
	CountCreatedSince(ctx context.Context, userID string, since time.Time) (int64, error)
}

type TaskUsecase interface {
	CreateTask(ctx context.Context, userID string, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context, filter TaskFilter) ([]Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error
}
