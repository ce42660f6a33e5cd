package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"

	_ "github.com/jhoicas/inventario-tareas-api/docs"
	"github.com/jhoicas/inventario-tareas-api/internal/application/auth"
	"github.com/jhoicas/inventario-tareas-api/internal/application/usecase"
	"github.com/jhoicas/inventario-tareas-api/internal/domain/repository"
	"github.com/jhoicas/inventario-tareas-api/internal/infrastructure/filestore"
	"github.com/jhoicas/inventario-tareas-api/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-tareas-api/internal/infrastructure/mongodb"
	infrapdf "github.com/jhoicas/inventario-tareas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-tareas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-tareas-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/inventario-tareas-api/internal/interfaces/http"
	"github.com/jhoicas/inventario-tareas-api/pkg/config"
	"github.com/jhoicas/inventario-tareas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	userRepo, productRepo, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	taskRepo := filestore.NewTaskRepository(afero.NewOsFs(), cfg.Tasks.FilePath)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	// El seed no es fatal: el servidor arranca aunque falle.
	if created, err := authUC.SeedAdmin(ctx); err != nil {
		log.Error().Err(err).Msg("seed de usuario admin")
	} else if created {
		log.Info().Str("username", auth.SeedAdminUsername).Msg("usuario admin inicial creado")
	}

	reportUC := usecase.NewReportUseCase(productRepo,
		infrapdf.NewInventoryRenderer(),
		xmlexport.NewInventoryRenderer(),
	)

	var extra []fiber.Handler
	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Static.DocsPath); err == nil {
		extra = append(extra, swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Static.DocsPath,
			Path:     "docs",
			Title:    "Inventario y Tareas API",
		}))
	} else {
		log.Warn().Str("path", cfg.Static.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app := httpRouter.NewServer(httpRouter.ServerConfig{
		AppName:     cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		PublicDir:   cfg.Static.PublicDir,
		LoginPage:   cfg.Static.LoginPage,
		Extra:       extra,
	}, httpRouter.RouterDeps{
		AuthUC:    authUC,
		ProductUC: usecase.NewProductUseCase(productRepo),
		TaskUC:    usecase.NewTaskUseCase(taskRepo),
		ReportUC:  reportUC,
		JWTSecret: cfg.JWT.Secret,
		Log:       log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openStore elige el almacén de usuarios y productos según DB_DRIVER.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (repository.UserRepository, repository.ProductRepository, func()) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema PostgreSQL")
		}
		log.Info().Msg("conectado a PostgreSQL")
		return postgres.NewUserRepository(pool), postgres.NewProductRepository(pool), pool.Close

	case config.DriverMemory:
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
		return memory.NewUserRepository(), memory.NewProductRepository(), func() {}

	default:
		client, err := mongodb.NewClient(ctx, cfg.Mongo)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MongoDB")
		}
		db := client.Database(cfg.Mongo.Database)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			log.Error().Err(err).Msg("índices únicos de MongoDB")
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("conectado a MongoDB")
		return mongodb.NewUserRepository(db), mongodb.NewProductRepository(db), func() {
			_ = client.Disconnect(context.Background())
		}
	}
}
