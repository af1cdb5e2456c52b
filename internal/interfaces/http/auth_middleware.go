package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/enviagora/hub-api/internal/application/dto"
	"github.com/enviagora/hub-api/internal/domain"
	"github.com/enviagora/hub-api/internal/domain/entity"
	"github.com/enviagora/hub-api/internal/domain/repository"
	"github.com/enviagora/hub-api/pkg/jwt"
)

// Locals key do usuário autenticado em Fiber.
const LocalUser = "current_user"

// CookieToken nome do cookie de sessão emitido no login.
const CookieToken = "token"

// AuthMiddleware valida o JWT (cookie de sessão ou Bearer) e carrega o usuário
// vivo do banco em c.Locals. Recarregar a cada requisição garante que papel e
// senha trocados valem de imediato, sem esperar o token expirar.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "autenticação requerida"})
		}

		userID, _, _, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}

		user, err := users.FindByID(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "usuário não existe mais"})
		}

		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequireRole limita a rota a quem tem nível >= ao de algum dos papéis dados.
func RequireRole(roles ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "autenticação requerida"})
		}
		if err := domain.AuthorizeRoles(user.Role, roles...); err != nil {
			return mapDomainError(c, err)
		}
		return c.Next()
	}
}

// CurrentUser devolve o usuário autenticado (após o AuthMiddleware).
func CurrentUser(c *fiber.Ctx) *entity.User {
	user, _ := c.Locals(LocalUser).(*entity.User)
	return user
}

func tokenFromRequest(c *fiber.Ctx) string {
	if cookie := c.Cookies(CookieToken); cookie != "" {
		return cookie
	}
	authHeader := c.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
