package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tareas-api/internal/application/dto"
	"github.com/jhoicas/inventario-tareas-api/internal/application/usecase"
	"github.com/jhoicas/inventario-tareas-api/internal/domain"
	"github.com/jhoicas/inventario-tareas-api/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP para productos (solo admin).
type ProductHandler struct {
	uc     *usecase.ProductUseCase
	report *usecase.ReportUseCase
	log    *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, report *usecase.ReportUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, report: report, log: log}
}

// productError traduce los errores comunes de productos; nil si no aplica.
func (h *ProductHandler) productError(c *fiber.Ctx, err error) (bool, error) {
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return true, fail(c, fiber.StatusForbidden, "FORBIDDEN", "Acceso denegado.")
	case errors.Is(err, domain.ErrNotFound):
		return true, fail(c, fiber.StatusNotFound, "NOT_FOUND", "Producto no encontrado")
	}
	return validationFailed(c, err)
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	if denied, resp := forbidUnlessAdmin(c, "Acceso denegado."); denied {
		return resp
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		if ok, resp := h.productError(c, err); ok {
			return resp
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "DUPLICATE",
				Message: "Error al crear producto (Revisa si el SKU está duplicado)",
				Error:   err.Error(),
			})
		}
		return internalError(c, h.log, "Error al crear producto", err, true)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar inventario completo
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	if denied, resp := forbidUnlessAdmin(c, "Acceso denegado."); denied {
		return resp
	}
	out, err := h.uc.List(c.UserContext(), GetIdentity(c))
	if err != nil {
		if ok, resp := h.productError(c, err); ok {
			return resp
		}
		return internalError(c, h.log, "Error al obtener el inventario", err, true)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	if denied, resp := forbidUnlessAdmin(c, "Acceso denegado."); denied {
		return resp
	}
	out, err := h.uc.GetByID(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		if ok, resp := h.productError(c, err); ok {
			return resp
		}
		return internalError(c, h.log, "Error al obtener producto", err, true)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (parcial)
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	if denied, resp := forbidUnlessAdmin(c, "Acceso denegado."); denied {
		return resp
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), GetIdentity(c), c.Params("id"), in)
	if err != nil {
		if ok, resp := h.productError(c, err); ok {
			return resp
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "DUPLICATE",
				Message: "Error al actualizar producto (SKU duplicado)",
				Error:   err.Error(),
			})
		}
		return internalError(c, h.log, "Error al actualizar producto", err, true)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if denied, resp := forbidUnlessAdmin(c, "Acceso denegado."); denied {
		return resp
	}
	if err := h.uc.Delete(c.UserContext(), GetIdentity(c), c.Params("id")); err != nil {
		if ok, resp := h.productError(c, err); ok {
			return resp
		}
		return internalError(c, h.log, "Error al eliminar producto", err, true)
	}
	return c.JSON(dto.MessageResponse{Message: "Producto eliminado correctamente del inventario"})
}

// Report godoc
// @Summary      Reporte de inventario (PDF o XML)
// @Tags         productos
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/xml
// @Param        formato  query  string  false  "pdf | xml"  default(pdf)
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/productos/reporte [get]
func (h *ProductHandler) Report(c *fiber.Ctx) error {
	if denied, resp := forbidUnlessAdmin(c, "Acceso denegado."); denied {
		return resp
	}
	format := c.Query("formato", "pdf")
	content, contentType, err := h.report.Generate(c.UserContext(), GetIdentity(c), format)
	if err != nil {
		if ok, resp := h.productError(c, err); ok {
			return resp
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return fail(c, fiber.StatusBadRequest, "INVALID_FORMAT", "formato no soportado: use pdf o xml")
		}
		return internalError(c, h.log, "Error al generar el reporte", err, true)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.`+format+`"`)
	return c.Send(content)
}
