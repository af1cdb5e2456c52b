package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/enviagora/hub-api/internal/application/ponto"
)

// PontoHandler trata as consultas de controle de ponto (horas extras via Kairos).
type PontoHandler struct {
	uc *ponto.PontoUseCase
}

// NewPontoHandler constrói o handler de ponto.
func NewPontoHandler(uc *ponto.PontoUseCase) *PontoHandler {
	return &PontoHandler{uc: uc}
}

type periodoRequest struct {
	DataInicio string `json:"dataInicio"`
	DataFim    string `json:"dataFim"`
}

// HorasExtrasTodos godoc
// @Summary      Horas extras de todos os funcionários ativos
// @Description  Período em DD-MM-YYYY; omitido, usa os últimos 30 dias.
// @Tags         controle-ponto
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  periodoRequest  false  "dataInicio, dataFim"
// @Success      200   {object}  dto.RankingHorasExtrasResponse
// @Router       /api/controle-ponto/horas-extras [post]
func (h *PontoHandler) HorasExtrasTodos(c *fiber.Ctx) error {
	var in periodoRequest
	_ = c.BodyParser(&in) // corpo vazio vale: período automático

	out, err := h.uc.HorasExtrasTodos(c.Context(), in.DataInicio, in.DataFim)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// HorasExtrasIndividual godoc
// @Summary      Horas extras de um funcionário por crachá
// @Tags         controle-ponto
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        cracha  path  string  true  "Crachá do funcionário"
// @Param        body    body  periodoRequest  false  "dataInicio, dataFim"
// @Success      200     {object}  dto.HorasExtrasFuncionarioResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/controle-ponto/horas-extras/{cracha} [post]
func (h *PontoHandler) HorasExtrasIndividual(c *fiber.Ctx) error {
	var in periodoRequest
	_ = c.BodyParser(&in)

	out, err := h.uc.HorasExtrasIndividual(c.Context(), c.Params("cracha"), in.DataInicio, in.DataFim)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// RankingAdmin godoc
// @Summary      Ranking de horas extras para o painel administrativo
// @Tags         controle-ponto
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  periodoRequest  false  "dataInicio, dataFim"
// @Success      200   {object}  dto.RankingHorasExtrasResponse
// @Router       /api/controle-ponto/horas-extras/admin [post]
func (h *PontoHandler) RankingAdmin(c *fiber.Ctx) error {
	var in periodoRequest
	_ = c.BodyParser(&in)

	out, err := h.uc.RankingAdmin(c.Context(), in.DataInicio, in.DataFim)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// MinhaMatricula godoc
// @Summary      Matrícula do usuário autenticado
// @Tags         controle-ponto
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MinhaMatriculaResponse
// @Router       /api/controle-ponto/minha-matricula [get]
func (h *PontoHandler) MinhaMatricula(c *fiber.Ctx) error {
	user := CurrentUser(c)
	out, err := h.uc.MinhaMatricula(user.ID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
