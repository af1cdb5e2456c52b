package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/enviagora/hub-api/internal/application/auth"
	"github.com/enviagora/hub-api/internal/application/dto"
)

// AuthHandler trata login, sessão e fluxos de senha.
type AuthHandler struct {
	uc        *auth.AuthUseCase
	cookieTTL time.Duration
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookieTTL time.Duration) *AuthHandler {
	return &AuthHandler{uc: uc, cookieTTL: cookieTTL}
}

// Login godoc
// @Summary      Autenticar colaborador
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e password são requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return mapDomainError(c, err)
	}

	// cookie de sessão para o front; o token também vai no corpo para
	// clientes que preferem Authorization Bearer
	c.Cookie(&fiber.Cookie{
		Name:     CookieToken,
		Value:    out.Token,
		Expires:  time.Now().Add(h.cookieTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Encerrar sessão
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     CookieToken,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})
	return c.JSON(dto.MessageResponse{Message: "Logout realizado com sucesso."})
}

// Me godoc
// @Summary      Perfil do usuário autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := CurrentUser(c)
	out, err := h.uc.Me(user.ID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ForgotPassword godoc
// @Summary      Solicitar redefinição de senha
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.MessageResponse
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email é requerido"})
	}
	if err := h.uc.ForgotPassword(c.Context(), in); err != nil {
		return mapDomainError(c, err)
	}
	// resposta idêntica com e sem cadastro, para não revelar e-mails válidos
	return c.JSON(dto.MessageResponse{Message: "Se o e-mail estiver cadastrado, enviaremos as instruções de redefinição."})
}

// ResetPassword godoc
// @Summary      Redefinir senha com token recebido por e-mail
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ResetPasswordRequest  true  "email, token, novaSenha"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.ResetPassword(in); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Senha redefinida com sucesso."})
}

// ChangePassword godoc
// @Summary      Trocar a própria senha
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "novaSenha"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user := CurrentUser(c)
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.ChangePassword(user.ID, in); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Senha alterada com sucesso."})
}
