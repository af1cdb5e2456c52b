package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/enviagora/hub-api/internal/application/announcement"
	"github.com/enviagora/hub-api/internal/application/auth"
	"github.com/enviagora/hub-api/internal/application/colaborador"
	"github.com/enviagora/hub-api/internal/application/holerite"
	"github.com/enviagora/hub-api/internal/application/news"
	"github.com/enviagora/hub-api/internal/application/ponto"
	"github.com/enviagora/hub-api/internal/domain/entity"
	"github.com/enviagora/hub-api/internal/domain/repository"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ColaboradorUC  *colaborador.ColaboradorUseCase
	HoleriteUC     *holerite.HoleriteUseCase
	AnnouncementUC *announcement.AnnouncementUseCase
	NewsUC         *news.NewsUseCase
	PontoUC        *ponto.PontoUseCase
	UserRepo       repository.UserRepository
	JWTSecret      string
	CookieTTL      time.Duration
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := AuthMiddleware(deps.JWTSecret, deps.UserRepo)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.CookieTTL)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Get("/me", protected, authHandler.Me)
	authGroup.Post("/change-password", protected, authHandler.ChangePassword)

	// Colaboradores (gestão: assistente pra cima; a hierarquia fina fica no usecase)
	colaboradores := api.Group("/colaboradores", protected, RequireRole(entity.RoleAssistente))
	colaboradorHandler := NewColaboradorHandler(deps.ColaboradorUC)
	colaboradores.Post("/", colaboradorHandler.Create)
	colaboradores.Get("/", colaboradorHandler.List)
	colaboradores.Get("/:id", colaboradorHandler.Get)
	colaboradores.Put("/:id", colaboradorHandler.Update)
	colaboradores.Delete("/:id", colaboradorHandler.Delete)
	colaboradores.Put("/:id/password", colaboradorHandler.SetPassword)
	colaboradores.Post("/:id/resend-password", colaboradorHandler.ResendProvisional)

	// Holerites (ciclo de vida dos documentos é exclusivo do admin)
	holerites := api.Group("/holerites", protected)
	holeriteHandler := NewHoleriteHandler(deps.HoleriteUC)
	holerites.Post("/upload", RequireRole(entity.RoleAdmin), holeriteHandler.Upload)
	holerites.Get("/", holeriteHandler.List)
	holerites.Get("/stats/summary", RequireRole(entity.RoleAdmin), holeriteHandler.Stats)
	holerites.Get("/:id/download", holeriteHandler.Download)
	holerites.Put("/:id", RequireRole(entity.RoleAdmin), holeriteHandler.Update)
	holerites.Delete("/:id", RequireRole(entity.RoleAdmin), holeriteHandler.Delete)

	// Avisos internos
	announcements := api.Group("/announcements", protected)
	announcementHandler := NewAnnouncementHandler(deps.AnnouncementUC)
	announcements.Get("/", announcementHandler.List)
	announcements.Post("/", RequireRole(entity.RoleAdmin), announcementHandler.Create)
	announcements.Put("/:id", RequireRole(entity.RoleAdmin), announcementHandler.Update)
	announcements.Delete("/:id", RequireRole(entity.RoleAdmin), announcementHandler.Delete)

	// Informativo mensal
	newsGroup := api.Group("/news", protected)
	newsHandler := NewNewsHandler(deps.NewsUC)
	newsGroup.Get("/", newsHandler.List)
	newsGroup.Post("/", RequireRole(entity.RoleAdmin), newsHandler.Create)
	newsGroup.Delete("/:id", RequireRole(entity.RoleAdmin), newsHandler.Delete)

	// Controle de ponto (Kairos)
	pontoGroup := api.Group("/controle-ponto", protected)
	pontoHandler := NewPontoHandler(deps.PontoUC)
	pontoGroup.Get("/minha-matricula", pontoHandler.MinhaMatricula)
	pontoGroup.Post("/horas-extras", RequireRole(entity.RoleRH), pontoHandler.HorasExtrasTodos)
	pontoGroup.Post("/horas-extras/admin", RequireRole(entity.RoleAdmin), pontoHandler.RankingAdmin)
	pontoGroup.Post("/horas-extras/:cracha", pontoHandler.HorasExtrasIndividual)
}
