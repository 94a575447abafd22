package usecase

import (
	"context"
	"time"

	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/pkg/apperror"
	"go-hackmate-backend/pkg/validation"
)

type taskUsecase struct {
	taskRepo domain.TaskRepository
	teamRepo domain.TeamRepository
}

func NewTaskUsecase(taskRepo domain.TaskRepository, teamRepo domain.TeamRepository) domain.TaskUsecase {
	return &taskUsecase{
		taskRepo: taskRepo,
		teamRepo: teamRepo,
	}
}

func (u *taskUsecase) CreateTask(ctx context.Context, userID string, task *domain.Task) error {
	if err := validation.Struct(task); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if task.Status == "" {
		task.Status = domain.TaskTodo
	}
	if !task.Status.Valid() {
		return apperror.InvalidEnum("status", string(task.Status))
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if !task.Priority.Valid() {
		return apperror.InvalidEnum("priority", string(task.Priority))
	}

	membership, err := u.teamRepo.GetMembership(ctx, task.TeamID, userID)
	if err != nil {
		return err
	}
	if membership == nil || membership.Status != domain.MembershipAccepted {
		return apperror.Forbidden("Only team members can create tasks")
	}

	task.CreatedBy = userID
	task.Tags = domain.NewSkillSet(task.Tags...)

	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	// A task created directly in done still gets its completion timestamp.
	task.CompletedAt = nil
	task.SetStatus(task.Status, now)

	return u.taskRepo.Create(ctx, task)
}

func (u *taskUsecase) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, err := u.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperror.NotFound("Task not found")
	}
	return task, nil
}

func (u *taskUsecase) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperror.InvalidEnum("status", string(*filter.Status))
	}
	if filter.Priority != nil && !filter.Priority.Valid() {
		return nil, apperror.InvalidEnum("priority", string(*filter.Priority))
	}
	return u.taskRepo.Fetch(ctx, filter)
}

// UpdateTask applies the incoming fields on top of the stored task so the
// completion timestamp freezes when the task enters done and clears when it
// leaves.
func (u *taskUsecase) UpdateTask(ctx context.Context, task *domain.Task) error {
	if !task.Status.Valid() {
		return apperror.InvalidEnum("status", string(task.Status))
	}
	if !task.Priority.Valid() {
		return apperror.InvalidEnum("priority", string(task.Priority))
	}

	current, err := u.taskRepo.GetByID(ctx, task.ID)
	if err != nil {
		return err
	}
	if current == nil {
		return apperror.NotFound("Task not found")
	}

	current.Title = task.Title
	current.Description = task.Description
	current.AssignedTo = task.AssignedTo
	current.Priority = task.Priority
	current.DueDate = task.DueDate
	current.Tags = domain.NewSkillSet(task.Tags...)
	current.SetStatus(task.Status, time.Now())

	if err := u.taskRepo.Update(ctx, current); err != nil {
		return err
	}
	*task = *current
	return nil
}

func (u *taskUsecase) DeleteTask(ctx context.Context, id int64) error {
	task, err := u.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return apperror.NotFound("Task not found")
	}
	return u.taskRepo.Delete(ctx, id)
}
