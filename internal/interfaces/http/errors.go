package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tareas-api/internal/application/dto"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/pkg/logger"
)

func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func invalidBody(c *fiber.Ctx) error {
	return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

// validationFailed responde 400 con la lista de campos si err es entity.ValidationErrors.
func validationFailed(c *fiber.Ctx, err error) (bool, error) {
	var verrs entity.ValidationErrors
	if !errors.As(err, &verrs) {
		return false, nil
	}
	return true, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code:    "VALIDATION",
		Message: "datos inválidos",
		Fields:  verrs,
	})
}

// internalError registra el error y responde 500. Con echo el detalle viaja en "error".
func internalError(c *fiber.Ctx, log *logger.Logger, message string, err error, echo bool) error {
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg(message)
	resp := dto.ErrorResponse{Code: "INTERNAL", Message: message}
	if echo {
		resp.Error = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}

// forbidUnlessAdmin responde 403 antes de leer el cuerpo cuando el token no es admin.
func forbidUnlessAdmin(c *fiber.Ctx, message string) (bool, error) {
	if GetIdentity(c).IsAdmin() {
		return false, nil
	}
	return true, fail(c, fiber.StatusForbidden, "FORBIDDEN", message)
}
