package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tareas-api/internal/application/dto"
	"github.com/jhoicas/inventario-tareas-api/internal/application/usecase"
	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/pkg/logger"
)

// TaskHandler maneja /api/tareas.
type TaskHandler struct {
	uc  *usecase.TaskUseCase
	log *logger.Logger
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *usecase.TaskUseCase, log *logger.Logger) *TaskHandler {
	return &TaskHandler{uc: uc, log: log}
}

// taskID interpreta :id; un id no numérico no puede existir en el archivo.
func taskID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	return id, err == nil
}

func taskNotFound(c *fiber.Ctx) error {
	return fail(c, fiber.StatusNotFound, "NOT_FOUND", "Tarea no encontrada")
}

// List godoc
// @Summary      Listar tareas visibles para el usuario
// @Tags         tareas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.TaskResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/tareas [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetIdentity(c))
	if err != nil {
		return internalError(c, h.log, "Error al leer tareas", err, false)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear tarea (admin)
// @Tags         tareas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTaskRequest  true  "title, assignedTo"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/tareas [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	if denied, resp := forbidUnlessAdmin(c, "Acceso denegado"); denied {
		return resp
	}
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return fail(c, fiber.StatusForbidden, "FORBIDDEN", "Acceso denegado")
		}
		if ok, resp := validationFailed(c, err); ok {
			return resp
		}
		return internalError(c, h.log, "Error al guardar la tarea", err, false)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar tarea
// @Description  Admin cambia title, assignedTo y status. El asignado solo cambia status.
// @Tags         tareas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la tarea"
// @Param        body  body  dto.UpdateTaskRequest  true  "status, title, assignedTo"
// @Success      200   {object}  dto.TaskResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tareas/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, ok := taskID(c)
	if !ok {
		return taskNotFound(c)
	}
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetIdentity(c), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return taskNotFound(c)
		case errors.Is(err, domain.ErrForbidden):
			return fail(c, fiber.StatusForbidden, "FORBIDDEN", "No puedes editar esta tarea")
		}
		if ok, resp := validationFailed(c, err); ok {
			return resp
		}
		return internalError(c, h.log, "Error al actualizar", err, false)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tarea (admin)
// @Tags         tareas
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la tarea"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tareas/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	if denied, resp := forbidUnlessAdmin(c, "Acceso denegado"); denied {
		return resp
	}
	id, ok := taskID(c)
	if !ok {
		return taskNotFound(c)
	}
	if err := h.uc.Delete(c.UserContext(), GetIdentity(c), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return taskNotFound(c)
		case errors.Is(err, domain.ErrForbidden):
			return fail(c, fiber.StatusForbidden, "FORBIDDEN", "Acceso denegado")
		}
		return internalError(c, h.log, "Error al eliminar", err, false)
	}
	return c.JSON(dto.MessageResponse{Message: "Tarea eliminada correctamente"})
}
