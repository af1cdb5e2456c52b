package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/enviagora/hub-api/internal/application/announcement"
	"github.com/enviagora/hub-api/internal/application/auth"
	"github.com/enviagora/hub-api/internal/application/colaborador"
	"github.com/enviagora/hub-api/internal/application/holerite"
	"github.com/enviagora/hub-api/internal/application/news"
	"github.com/enviagora/hub-api/internal/application/ponto"
	"github.com/enviagora/hub-api/internal/infrastructure/email"
	"github.com/enviagora/hub-api/internal/infrastructure/kairos"
	"github.com/enviagora/hub-api/internal/infrastructure/pdfext"
	"github.com/enviagora/hub-api/internal/infrastructure/postgres"
	"github.com/enviagora/hub-api/internal/infrastructure/storage"
	httpRouter "github.com/enviagora/hub-api/internal/interfaces/http"
	"github.com/enviagora/hub-api/pkg/config"
	"github.com/enviagora/hub-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	blobStore, err := storage.NewS3Storage(ctx, cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("storage de objetos")
	}

	userRepo := postgres.NewUserRepository(pool)
	holeriteRepo := postgres.NewHoleriteRepository(pool)
	tokenRepo := postgres.NewTokenRepository(pool)
	announcementRepo := postgres.NewAnnouncementRepository(pool)
	newsRepo := postgres.NewNewsRepository(pool)

	mailer := email.NewSMTPSender(cfg.SMTP)
	extractor := pdfext.NewExtractor()
	pontoProvider := kairos.NewClient(cfg.Kairos)

	authUC := auth.NewAuthUseCase(userRepo, tokenRepo, mailer, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	}, cfg.App.FrontendURL)
	colaboradorUC := colaborador.NewColaboradorUseCase(userRepo, mailer, log)
	holeriteUC := holerite.NewHoleriteUseCase(holeriteRepo, userRepo, blobStore, extractor, log)
	announcementUC := announcement.NewAnnouncementUseCase(announcementRepo)
	newsUC := news.NewNewsUseCase(newsRepo, userRepo, blobStore, mailer, log)
	pontoUC := ponto.NewPontoUseCase(pontoProvider, userRepo, log)

	// varredura periódica dos caches de ponto
	stopSweep := make(chan struct{})
	pontoUC.StartCacheSweepers(time.Minute, stopSweep)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    50 * 1024 * 1024, // lotes de PDF
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.FrontendURL,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Enviagora Hub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ColaboradorUC:  colaboradorUC,
		HoleriteUC:     holeriteUC,
		AnnouncementUC: announcementUC,
		NewsUC:         newsUC,
		PontoUC:        pontoUC,
		UserRepo:       userRepo,
		JWTSecret:      cfg.JWT.Secret,
		CookieTTL:      time.Duration(cfg.JWT.ExpHours) * time.Hour,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")
	close(stopSweep)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
