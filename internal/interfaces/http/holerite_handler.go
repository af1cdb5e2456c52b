package http

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/enviagora/hub-api/internal/application/dto"
	"github.com/enviagora/hub-api/internal/application/holerite"
)

// HoleriteHandler trata ingestão, consulta e download de holerites.
type HoleriteHandler struct {
	uc *holerite.HoleriteUseCase
}

// NewHoleriteHandler constrói o handler de holerites.
func NewHoleriteHandler(uc *holerite.HoleriteUseCase) *HoleriteHandler {
	return &HoleriteHandler{uc: uc}
}

// Upload godoc
// @Summary      Ingerir lote de holerites em PDF
// @Description  Cada PDF é casado com um colaborador pelo código extraído do texto.
// @Tags         holerites
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        competencia  formData  string  true  "Competência, ex.: 2025-06"
// @Param        files        formData  file    true  "PDFs do lote"
// @Success      200  {object}  dto.UploadBatchResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/holerites/upload [post]
func (h *HoleriteHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "formulário multipart inválido"})
	}

	files := make([]holerite.UploadFile, 0, len(form.File["files"]))
	for _, fh := range form.File["files"] {
		f, err := readMultipartFile(fh)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: fmt.Sprintf("falha ao ler %s", fh.Filename)})
		}
		files = append(files, f)
	}

	results, err := h.uc.Upload(c.Context(), c.FormValue("competencia"), files)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.UploadBatchResponse{Results: results})
}

// Update godoc
// @Summary      Substituir o arquivo de um holerite
// @Tags         holerites
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      string  true   "ID do holerite"
// @Param        competencia  formData  string  false  "Nova competência"
// @Param        file         formData  file    false  "Novo PDF"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/holerites/{id} [put]
func (h *HoleriteHandler) Update(c *fiber.Ctx) error {
	var file *holerite.UploadFile
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		f, err := readMultipartFile(fh)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "falha ao ler o arquivo"})
		}
		file = &f
	}

	if err := h.uc.Update(c.Context(), c.Params("id"), c.FormValue("competencia"), file); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Holerite atualizado com sucesso."})
}

// List godoc
// @Summary      Listar holerites
// @Description  Admin vê todos; os demais veem apenas os próprios.
// @Tags         holerites
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.HoleriteResponse
// @Router       /api/holerites [get]
func (h *HoleriteHandler) List(c *fiber.Ctx) error {
	user := CurrentUser(c)
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginação inválida"})
	}
	out, err := h.uc.List(user.ID, user.Role, page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Download godoc
// @Summary      Baixar o PDF de um holerite
// @Tags         holerites
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID do holerite"
// @Success      200  {file}    file
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/holerites/{id}/download [get]
func (h *HoleriteHandler) Download(c *fiber.Ctx) error {
	user := CurrentUser(c)
	data, meta, err := h.uc.Download(c.Context(), user.ID, user.Role, c.Params("id"))
	if err != nil {
		return mapDomainError(c, err)
	}

	filename := meta.OriginalFilename
	if filename == "" {
		filename = fmt.Sprintf("holerite_%s.pdf", meta.Competencia)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

// Delete godoc
// @Summary      Excluir holerite
// @Tags         holerites
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do holerite"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/holerites/{id} [delete]
func (h *HoleriteHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Holerite excluído com sucesso."})
}

// Stats godoc
// @Summary      Contagem agregada de holerites
// @Tags         holerites
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.HoleriteStatsResponse
// @Router       /api/holerites/stats/summary [get]
func (h *HoleriteHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats()
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

func readMultipartFile(fh *multipart.FileHeader) (holerite.UploadFile, error) {
	src, err := fh.Open()
	if err != nil {
		return holerite.UploadFile{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return holerite.UploadFile{}, err
	}
	return holerite.UploadFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
