package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tareas-api/internal/application/auth"
	"github.com/jhoicas/inventario-tareas-api/internal/application/dto"
	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/pkg/logger"
)

// AuthHandler maneja registro, login y listado de usuarios.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, username, password, role (opcional)"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if _, err := h.uc.RegisterUser(c.UserContext(), in); err != nil {
		if ok, resp := validationFailed(c, err); ok {
			return resp
		}
		if errors.Is(err, domain.ErrUserExists) {
			return fail(c, fiber.StatusBadRequest, "USER_EXISTS", "El usuario ya existe")
		}
		return internalError(c, h.log, "Error al registrar en la base de datos", err, false)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Usuario registrado con éxito"})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Credenciales inválidas")
		}
		return internalError(c, h.log, "Error en el servidor al iniciar sesión", err, false)
	}
	return c.JSON(out)
}

// ListUsers godoc
// @Summary      Listar usuarios (sin password)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers(c.UserContext(), GetIdentity(c))
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			return fail(c, fiber.StatusForbidden, "FORBIDDEN", "Acceso denegado")
		}
		return internalError(c, h.log, "Error al obtener usuarios", err, false)
	}
	return c.JSON(out)
}
