package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/catalogo-api/internal/application/auth"
	"github.com/tu-usuario/catalogo-api/internal/application/report"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
	infraai "github.com/tu-usuario/catalogo-api/internal/infrastructure/ai"
	inframail "github.com/tu-usuario/catalogo-api/internal/infrastructure/mail"
	infrapdf "github.com/tu-usuario/catalogo-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/catalogo-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/catalogo-api/internal/interfaces/http"
	"github.com/tu-usuario/catalogo-api/pkg/config"
	"github.com/tu-usuario/catalogo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)

	principals := usecase.NewPrincipalService(companyRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	companyUC := usecase.NewCompanyUseCase(companyRepo, productRepo)
	productUC := usecase.NewProductUseCase(productRepo, companyRepo, inventoryRepo)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo, productRepo, companyRepo)

	openAISvc := infraai.NewOpenAIService(cfg.AI.APIKey, cfg.AI.Model)
	recommendationUC := usecase.NewRecommendationUseCase(openAISvc)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	mailer := inframail.NewGomailSender(cfg.SMTP)
	reportUC := report.NewUseCase(
		inventoryRepo, productRepo, companyRepo, userRepo,
		pdfGenerator, mailer,
		report.Config{Debug: cfg.App.Debug, DevDir: cfg.Report.DevDir},
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:         cfg.JWT.Secret,
		ExpMinutes:     cfg.JWT.Expiration,
		RefreshMinutes: cfg.JWT.RefreshMinutes,
		Issuer:         cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		UserUC:           userUC,
		CompanyUC:        companyUC,
		ProductUC:        productUC,
		InventoryUC:      inventoryUC,
		RecommendationUC: recommendationUC,
		ReportUC:         reportUC,
		Principals:       principals,
		JWTSecret:        cfg.JWT.Secret,
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
