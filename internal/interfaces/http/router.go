package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tareas-api/internal/application/auth"
	"github.com/jhoicas/inventario-tareas-api/internal/application/usecase"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/entity"
	"github.com/jhoicas/inventario-tareas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	TaskUC    *usecase.TaskUseCase
	ReportUC  *usecase.ReportUseCase
	JWTSecret string
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, log)
	api.Post("/login", authHandler.Login)
	api.Post("/register", authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	requireAuth := AuthMiddleware(deps.JWTSecret)

	api.Get("/users", requireAuth, RequireRole(entity.RoleAdmin), authHandler.ListUsers)

	tareas := api.Group("/tareas", requireAuth)
	taskHandler := NewTaskHandler(deps.TaskUC, log)
	tareas.Get("/", taskHandler.List)
	tareas.Post("/", taskHandler.Create)
	tareas.Put("/:id", taskHandler.Update)
	tareas.Delete("/:id", taskHandler.Delete)

	// Productos: cada handler responde 403 a no-admin antes de leer el cuerpo; el caso de uso vuelve a autorizar.
	productos := api.Group("/productos", requireAuth)
	productHandler := NewProductHandler(deps.ProductUC, deps.ReportUC, log)
	productos.Get("/", productHandler.List)
	productos.Post("/", productHandler.Create)
	productos.Get("/reporte", productHandler.Report)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Delete("/:id", productHandler.Delete)
}
