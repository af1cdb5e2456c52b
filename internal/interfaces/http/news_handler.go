package http

import (
	"io"
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/enviagora/hub-api/internal/application/dto"
	"github.com/enviagora/hub-api/internal/application/news"
)

// NewsHandler trata o informativo mensal.
type NewsHandler struct {
	uc *news.NewsUseCase
}

// NewNewsHandler constrói o handler do informativo.
func NewNewsHandler(uc *news.NewsUseCase) *NewsHandler {
	return &NewsHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar edição do informativo
// @Description  Recebe o PDF da edição e uma capa opcional; pode notificar os funcionários por e-mail.
// @Tags         informativo
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        titulo         formData  string  true   "Título da edição"
// @Param        mesReferencia  formData  int     true   "Mês de referência (1-12)"
// @Param        anoReferencia  formData  int     true   "Ano de referência"
// @Param        notificar      formData  bool    false  "Enviar e-mail aos funcionários"
// @Param        pdf            formData  file    true   "PDF da edição"
// @Param        capa           formData  file    false  "Imagem de capa"
// @Success      201  {object}  dto.NewsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/news [post]
func (h *NewsHandler) Create(c *fiber.Ctx) error {
	mes, _ := strconv.Atoi(c.FormValue("mesReferencia"))
	ano, _ := strconv.Atoi(c.FormValue("anoReferencia"))
	notificar, _ := strconv.ParseBool(c.FormValue("notificar"))
	in := dto.CreateNewsRequest{
		Titulo:        c.FormValue("titulo"),
		MesReferencia: mes,
		AnoReferencia: ano,
		Notificar:     notificar,
	}

	pdf, err := newsFormFile(c, "pdf")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "falha ao ler o PDF"})
	}
	capa, err := newsFormFile(c, "capa")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "falha ao ler a capa"})
	}

	out, err := h.uc.Create(c.Context(), in, pdf, capa)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar edições do informativo
// @Tags         informativo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NewsResponse
// @Router       /api/news [get]
func (h *NewsHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir edição do informativo
// @Tags         informativo
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da edição"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/news/{id} [delete]
func (h *NewsHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Informativo excluído com sucesso."})
}

// newsFormFile lê um arquivo do formulário; (nil, nil) quando o campo não veio.
func newsFormFile(c *fiber.Ctx, field string) (*news.File, error) {
	fh, err := c.FormFile(field)
	if err != nil || fh == nil {
		return nil, nil
	}
	return readNewsFile(fh)
}

func readNewsFile(fh *multipart.FileHeader) (*news.File, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return &news.File{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
