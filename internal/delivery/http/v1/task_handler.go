package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-hackmate-backend/internal/delivery/http/response"
	"go-hackmate-backend/internal/domain"
	"go-hackmate-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskUC domain.TaskUsecase
}

func NewTaskHandler(protected *gin.RouterGroup, taskUC domain.TaskUsecase) {
	handler := &TaskHandler{taskUC: taskUC}

	tasks := protected.Group("/tasks")
	{
		tasks.POST("", handler.Create)
		tasks.GET("", handler.List)
		tasks.GET("/:id", handler.Get)
		tasks.PUT("/:id", handler.Update)
		tasks.DELETE("/:id", handler.Delete)
	}
}

type TaskRequest struct {
	TeamID      int64      `json:"team_id" binding:"required"`
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description"`
	AssignedTo  string     `json:"assigned_to"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Tags        []string   `json:"tags"`
}

func (r *TaskRequest) toDomain() *domain.Task {
	var assignedTo *string
	if r.AssignedTo != "" {
		assignedTo = &r.AssignedTo
	}
	return &domain.Task{
		TeamID:      r.TeamID,
		Title:       r.Title,
		Description: r.Description,
		AssignedTo:  assignedTo,
		Status:      domain.TaskStatus(r.Status),
		Priority:    domain.TaskPriority(r.Priority),
		DueDate:     r.DueDate,
		Tags:        domain.NewSkillSet(r.Tags...),
	}
}

// Create godoc
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        task  body      TaskRequest  true  "Task JSON"
// @Success      201   {object}  response.Response{data=domain.Task}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /tasks [post]
// @Security     BearerAuth
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	task := req.toDomain()

	if err := h.taskUC.CreateTask(c.Request.Context(), userID, task); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Task created", task)
}

// List godoc
// @Summary      List tasks
// @Tags         tasks
// @Produce      json
// @Param        team_id      query     int     false  "Filter by team"
// @Param        assigned_to  query     string  false  "Filter by assignee"
// @Param        status       query     string  false  "Filter by status"
// @Param        priority     query     string  false  "Filter by priority"
// @Success      200          {object}  response.Response{data=[]domain.Task}
// @Failure      422          {object}  response.Response
// @Router       /tasks [get]
// @Security     BearerAuth
func (h *TaskHandler) List(c *gin.Context) {
	var filter domain.TaskFilter

	if raw := c.Query("team_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid team_id"))
			return
		}
		filter.TeamID = &id
	}
	filter.AssignedTo = c.Query("assigned_to")
	if raw := c.Query("status"); raw != "" {
		status := domain.TaskStatus(raw)
		filter.Status = &status
	}
	if raw := c.Query("priority"); raw != "" {
		priority := domain.TaskPriority(raw)
		filter.Priority = &priority
	}

	tasks, err := h.taskUC.ListTasks(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Tasks", tasks)
}

// Get godoc
// @Summary      Get task details
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  response.Response{data=domain.Task}
// @Failure      404  {object}  response.Response
// @Router       /tasks/{id} [get]
// @Security     BearerAuth
func (h *TaskHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid task id"))
		return
	}

	task, err := h.taskUC.GetTask(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Task", task)
}

// Update godoc
// @Summary      Update a task
// @Description  Replaces the task fields; completed_at freezes when the task enters done
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Task ID"
// @Param        task  body      TaskRequest  true  "Task JSON"
// @Success      200   {object}  response.Response{data=domain.Task}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      422   {object}  response.Response
// @Router       /tasks/{id} [put]
// @Security     BearerAuth
func (h *TaskHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid task id"))
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	task := req.toDomain()
	task.ID = id

	if err := h.taskUC.UpdateTask(c.Request.Context(), task); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Task updated", task)
}

// Delete godoc
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /tasks/{id} [delete]
// @Security     BearerAuth
func (h *TaskHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid task id"))
		return
	}

	if err := h.taskUC.DeleteTask(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Task deleted", nil)
}
