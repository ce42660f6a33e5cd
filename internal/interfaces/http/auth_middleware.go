package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tareas-api/internal/application/dto"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/pkg/jwt"
)

// LocalIdentity key de la identidad {id, role, name} en c.Locals.
const LocalIdentity = "identity"

// AuthMiddleware valida el Bearer Token JWT y deja la identidad en c.Locals.
// Sin token responde 401; firma inválida o token expirado responde 403.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme, tokenString, _ := strings.Cut(strings.TrimSpace(c.Get(fiber.HeaderAuthorization)), " ")
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Token requerido"})
		}
		if !strings.EqualFold(scheme, "Bearer") {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Token inválido o expirado"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Token inválido o expirado"})
		}
		c.Locals(LocalIdentity, entity.Identity{ID: claims.UserID, Role: claims.Role, Name: claims.Name})
		return c.Next()
	}
}

// RequireRole permite continuar solo si el rol del token está en roles.
// Debe usarse DESPUÉS de AuthMiddleware. Token sin rol → 401 MISSING_ROLE.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := identityFrom(c)
		if !ok || id.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no contiene rol"})
		}
		if !id.HasRole(roles...) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Acceso denegado"})
		}
		return c.Next()
	}
}

func identityFrom(c *fiber.Ctx) (entity.Identity, bool) {
	id, ok := c.Locals(LocalIdentity).(entity.Identity)
	return id, ok
}

// GetIdentity devuelve la identidad del contexto (vacía si no pasó por AuthMiddleware).
func GetIdentity(c *fiber.Ctx) entity.Identity {
	id, _ := identityFrom(c)
	return id
}

// GetUserID devuelve el id de usuario del token.
func GetUserID(c *fiber.Ctx) string { return GetIdentity(c).ID }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) string { return GetIdentity(c).Role }
