package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard/internal/api/metrics"
	apimiddleware "github.com/taskboard/taskboard/internal/api/middleware"
	"github.com/taskboard/taskboard/internal/core/domain"
	"github.com/taskboard/taskboard/internal/core/ports"
)

// TaskHandler serves the owner-scoped task operations. Every route it backs
// sits behind the session middleware, so the user id is always present.
type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type addTaskRequest struct {
	Text string `json:"task_text" form:"task_text"`
}

type listTasksResponse struct {
	Username string        `json:"username"`
	Tasks    []domain.Task `json:"tasks"`
}

// List returns all tasks owned by the caller in id order.
//
// @Summary      List own tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  listTasksResponse
// @Failure      401  {object}  map[string]string
// @Router       /tasks [get]
func (h *TaskHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	tasks, err := h.taskService.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	username, _ := c.Get(apimiddleware.CtxUsername).(string)
	return c.JSON(http.StatusOK, listTasksResponse{Username: username, Tasks: tasks})
}

// Add creates a task. Blank text is accepted and ignored, matching the
// original application's silent no-op.
//
// @Summary      Add a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      addTaskRequest  true  "Task text"
// @Success      201   {object}  domain.Task
// @Success      204   "blank text, nothing created"
// @Failure      401   {object}  map[string]string
// @Router       /add_task [post]
func (h *TaskHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	task, err := h.taskService.Add(c.Request().Context(), userID, req.Text)
	if err != nil {
		return err
	}
	if task == nil {
		return c.NoContent(http.StatusNoContent)
	}

	metrics.TasksCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, task)
}

// Toggle flips the completion flag of an owned task.
//
// @Summary      Toggle task completion
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task id"
// @Success      200  {object}  map[string]bool
// @Failure      404  {object}  map[string]string
// @Router       /toggle_task/{id} [post]
func (h *TaskHandler) Toggle(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	taskID, err := pathTaskID(c)
	if err != nil {
		return err
	}

	toggled, err := h.taskService.Toggle(c.Request().Context(), userID, taskID)
	if err != nil {
		return err
	}
	if !toggled {
		metrics.TaskMutationsTotal.WithLabelValues("toggle", "not_found").Inc()
		return domain.ErrTaskNotFound
	}

	metrics.TaskMutationsTotal.WithLabelValues("toggle", "ok").Inc()
	return c.JSON(http.StatusOK, map[string]bool{"toggled": true})
}

// Delete removes an owned task.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task id"
// @Success      204  "deleted"
// @Failure      404  {object}  map[string]string
// @Router       /delete_task/{id} [post]
func (h *TaskHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	taskID, err := pathTaskID(c)
	if err != nil {
		return err
	}

	deleted, err := h.taskService.Delete(c.Request().Context(), userID, taskID)
	if err != nil {
		return err
	}
	if !deleted {
		metrics.TaskMutationsTotal.WithLabelValues("delete", "not_found").Inc()
		return domain.ErrTaskNotFound
	}

	metrics.TaskMutationsTotal.WithLabelValues("delete", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}

// pathTaskID parses the :id path parameter. A malformed id maps to the same
// not-found error as a missing task so the route leaks nothing about which
// ids exist.
func pathTaskID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrTaskNotFound
	}
	return id, nil
}
