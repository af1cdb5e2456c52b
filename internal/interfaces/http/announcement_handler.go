package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enviagora/hub-api/internal/application/announcement"
	"github.com/enviagora/hub-api/internal/application/dto"
)

// AnnouncementHandler trata o mural de avisos internos.
type AnnouncementHandler struct {
	uc *announcement.AnnouncementUseCase
}

// NewAnnouncementHandler constrói o handler de avisos.
func NewAnnouncementHandler(uc *announcement.AnnouncementUseCase) *AnnouncementHandler {
	return &AnnouncementHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar aviso
// @Tags         avisos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAnnouncementRequest  true  "titulo, conteudo, tipo"
// @Success      201   {object}  dto.AnnouncementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/announcements [post]
func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	user := CurrentUser(c)
	var in dto.CreateAnnouncementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(user.ID, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar avisos
// @Tags         avisos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AnnouncementResponse
// @Router       /api/announcements [get]
func (h *AnnouncementHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar aviso
// @Tags         avisos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do aviso"
// @Param        body  body  dto.UpdateAnnouncementRequest  true  "titulo, conteudo, tipo"
// @Success      200   {object}  dto.AnnouncementResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/announcements/{id} [put]
func (h *AnnouncementHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAnnouncementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir aviso
// @Tags         avisos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do aviso"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Aviso excluído com sucesso."})
}
