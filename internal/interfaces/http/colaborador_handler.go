package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enviagora/hub-api/internal/application/colaborador"
	"github.com/enviagora/hub-api/internal/application/dto"
)

// ColaboradorHandler trata o cadastro administrativo de colaboradores.
type ColaboradorHandler struct {
	uc *colaborador.ColaboradorUseCase
}

// NewColaboradorHandler constrói o handler de colaboradores.
func NewColaboradorHandler(uc *colaborador.ColaboradorUseCase) *ColaboradorHandler {
	return &ColaboradorHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar colaborador
// @Tags         colaboradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateColaboradorRequest  true  "Dados do colaborador"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/colaboradores [post]
func (h *ColaboradorHandler) Create(c *fiber.Ctx) error {
	ator := CurrentUser(c)
	var in dto.CreateColaboradorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), ator.Role, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar colaboradores
// @Tags         colaboradores
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.UserResponse
// @Router       /api/colaboradores [get]
func (h *ColaboradorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	out, err := h.uc.List(page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obter colaborador por ID
// @Tags         colaboradores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do colaborador"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/colaboradores/{id} [get]
func (h *ColaboradorHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar colaborador
// @Tags         colaboradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do colaborador"
// @Param        body  body  dto.UpdateColaboradorRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/colaboradores/{id} [put]
func (h *ColaboradorHandler) Update(c *fiber.Ctx) error {
	ator := CurrentUser(c)
	var in dto.UpdateColaboradorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(ator.Role, c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir colaborador
// @Tags         colaboradores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do colaborador"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/colaboradores/{id} [delete]
func (h *ColaboradorHandler) Delete(c *fiber.Ctx) error {
	ator := CurrentUser(c)
	if err := h.uc.Delete(ator.Role, c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Colaborador excluído com sucesso."})
}

// SetPassword godoc
// @Summary      Definir senha de um colaborador
// @Tags         colaboradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do colaborador"
// @Param        body  body  dto.ChangePasswordRequest  true  "novaSenha"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/colaboradores/{id}/password [put]
func (h *ColaboradorHandler) SetPassword(c *fiber.Ctx) error {
	ator := CurrentUser(c)
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.SetSenha(ator.Role, c.Params("id"), in.NovaSenha); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Senha atualizada com sucesso."})
}

// ResendProvisional godoc
// @Summary      Reenviar credenciais provisórias
// @Tags         colaboradores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do colaborador"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/colaboradores/{id}/resend-password [post]
func (h *ColaboradorHandler) ResendProvisional(c *fiber.Ctx) error {
	ator := CurrentUser(c)
	if err := h.uc.ResendProvisional(c.Context(), ator.Role, c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Nova senha provisória enviada por e-mail."})
}
