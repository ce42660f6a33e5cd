package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/inventario-tareas-api/pkg/logger"
)

// ServerConfig opciones de la app Fiber fuera de las rutas de negocio.
type ServerConfig struct {
	AppName     string
	CORSOrigins string
	PublicDir   string // vacío: sin archivos estáticos
	LoginPage   string
	Extra       []fiber.Handler // middlewares adicionales (p. ej. Swagger UI)
}

// NewServer construye la app Fiber con middlewares, /health, redirección a login,
// archivos estáticos y las rutas de la API.
func NewServer(cfg ServerConfig, deps RouterDeps) *fiber.App {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
		deps.Log = log
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	for _, h := range cfg.Extra {
		app.Use(h)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})

	if cfg.LoginPage != "" {
		app.Get("/", func(c *fiber.Ctx) error {
			return c.Redirect(cfg.LoginPage, fiber.StatusFound)
		})
	}

	Router(app, deps)

	if cfg.PublicDir != "" {
		app.Static("/", cfg.PublicDir)
	}
	return app
}
