// Package ponto consulta horas extras na API externa de controle de ponto e
// agrega os resultados para o portal: visão geral, consulta individual e o
// ranking do painel administrativo.
package ponto

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/enviagora/hub-api/internal/application/dto"
	"github.com/enviagora/hub-api/internal/application/ports"
	"github.com/enviagora/hub-api/internal/domain"
	"github.com/enviagora/hub-api/internal/domain/entity"
	"github.com/enviagora/hub-api/internal/domain/repository"
	"github.com/enviagora/hub-api/pkg/cache"
	"github.com/enviagora/hub-api/pkg/logger"
)

const (
	// A API externa aguenta lotes largos na visão geral, mas as rotas quentes
	// (individual e painel) ficam com um limite conservador.
	maxConcurrentBatch = 30
	maxConcurrentLive  = 5

	batchCacheTTL = 5 * time.Minute
	liveCacheTTL  = 30 * time.Second

	periodoDias = 30
	dataLayout  = "02-01-2006" // DD-MM-YYYY, formato da API externa
)

// ErrSemFuncionarios a API externa não devolveu nenhum funcionário ativo.
var ErrSemFuncionarios = errors.New("nenhum funcionário retornado da API de ponto")

// PontoUseCase casos de uso de controle de ponto.
type PontoUseCase struct {
	provider ports.PontoProvider
	userRepo repository.UserRepository
	log      *logger.Logger
	now      func() time.Time

	batchCache *cache.TTLCache[[]dto.HorasExtrasFuncionarioResponse]
	indivCache *cache.TTLCache[*dto.HorasExtrasFuncionarioResponse]
	adminCache *cache.TTLCache[[]dto.HorasExtrasFuncionarioResponse]
}

// NewPontoUseCase constrói o caso de uso de ponto com os caches de TTL.
func NewPontoUseCase(provider ports.PontoProvider, userRepo repository.UserRepository, log *logger.Logger) *PontoUseCase {
	return &PontoUseCase{
		provider:   provider,
		userRepo:   userRepo,
		log:        log,
		now:        time.Now,
		batchCache: cache.New[[]dto.HorasExtrasFuncionarioResponse](batchCacheTTL, nil),
		indivCache: cache.New[*dto.HorasExtrasFuncionarioResponse](liveCacheTTL, nil),
		adminCache: cache.New[[]dto.HorasExtrasFuncionarioResponse](liveCacheTTL, nil),
	}
}

// WithClock troca o relógio usado no período automático; uso em testes.
func (uc *PontoUseCase) WithClock(now func() time.Time) *PontoUseCase {
	uc.now = now
	return uc
}

// StartCacheSweepers dispara a limpeza periódica dos três caches.
func (uc *PontoUseCase) StartCacheSweepers(interval time.Duration, stop <-chan struct{}) {
	uc.batchCache.StartSweeper(interval, stop)
	uc.indivCache.StartSweeper(interval, stop)
	uc.adminCache.StartSweeper(interval, stop)
}

// HorasExtrasTodos consulta as horas extras de todos os funcionários ativos no
// período, com leque de até 30 chamadas simultâneas e cache de 5 minutos.
// Datas vazias caem no período automático dos últimos 30 dias.
func (uc *PontoUseCase) HorasExtrasTodos(ctx context.Context, dataInicio, dataFim string) (*dto.RankingHorasExtrasResponse, error) {
	inicio, fim := uc.normalizePeriodo(dataInicio, dataFim)
	cacheKey := inicio + "_" + fim
	if hit, ok := uc.batchCache.Get(cacheKey); ok {
		return &dto.RankingHorasExtrasResponse{Periodo: dto.Periodo{DataInicio: inicio, DataFim: fim}, Itens: hit}, nil
	}

	itens, err := uc.consultaLote(ctx, inicio, fim, maxConcurrentBatch, true)
	if err != nil {
		return nil, err
	}
	uc.batchCache.Set(cacheKey, itens)
	return &dto.RankingHorasExtrasResponse{Periodo: dto.Periodo{DataInicio: inicio, DataFim: fim}, Itens: itens}, nil
}

// HorasExtrasIndividual consulta um único crachá, com cache de 30 segundos.
func (uc *PontoUseCase) HorasExtrasIndividual(ctx context.Context, cracha, dataInicio, dataFim string) (*dto.HorasExtrasFuncionarioResponse, error) {
	if _, err := strconv.Atoi(cracha); err != nil {
		return nil, fmt.Errorf("crachá %q não é numérico: %w", cracha, domain.ErrEntradaInvalida)
	}
	inicio, fim := uc.normalizePeriodo(dataInicio, dataFim)
	cacheKey := fmt.Sprintf("%s_%s_%s", cracha, inicio, fim)
	if hit, ok := uc.indivCache.Get(cacheKey); ok {
		return hit, nil
	}

	detalhes, err := uc.provider.HorasExtras(ctx, cracha, inicio, fim)
	if err != nil {
		return nil, err
	}
	out := &dto.HorasExtrasFuncionarioResponse{Cracha: cracha}
	preencherTotais(out, detalhes)
	uc.indivCache.Set(cacheKey, out)
	return out, nil
}

// RankingAdmin monta o painel administrativo: todos os funcionários ordenados
// por minutos acumulados, sem os detalhes diários. Concorrência reduzida a 5 e
// cache de 30 segundos: é a rota mais requisitada do painel.
func (uc *PontoUseCase) RankingAdmin(ctx context.Context, dataInicio, dataFim string) (*dto.RankingHorasExtrasResponse, error) {
	inicio, fim := uc.normalizePeriodo(dataInicio, dataFim)
	cacheKey := inicio + "_" + fim
	if hit, ok := uc.adminCache.Get(cacheKey); ok {
		return &dto.RankingHorasExtrasResponse{Periodo: dto.Periodo{DataInicio: inicio, DataFim: fim}, Itens: hit}, nil
	}

	itens, err := uc.consultaLote(ctx, inicio, fim, maxConcurrentLive, false)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(itens, func(i, j int) bool {
		return itens[i].TotalMinutos > itens[j].TotalMinutos
	})
	uc.adminCache.Set(cacheKey, itens)
	return &dto.RankingHorasExtrasResponse{Periodo: dto.Periodo{DataInicio: inicio, DataFim: fim}, Itens: itens}, nil
}

// MinhaMatricula devolve a matrícula do usuário logado para a consulta de ponto.
func (uc *PontoUseCase) MinhaMatricula(userID string) (*dto.MinhaMatriculaResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	mensagem := "Matrícula encontrada"
	if user.Matricula == "" {
		mensagem = "Matrícula não cadastrada. Contate o RH."
	}
	return &dto.MinhaMatriculaResponse{
		ID:        user.ID,
		Nome:      user.Nome,
		Email:     user.Email,
		CPF:       user.CPF,
		Matricula: user.Matricula,
		Mensagem:  mensagem,
	}, nil
}

// consultaLote busca os funcionários ativos e consulta as horas extras de cada
// um com concorrência limitada. A falha de um funcionário vira o campo Erro do
// item, nunca derruba o lote.
func (uc *PontoUseCase) consultaLote(ctx context.Context, inicio, fim string, limite int, comDetalhes bool) ([]dto.HorasExtrasFuncionarioResponse, error) {
	funcionarios, err := uc.provider.ListFuncionariosAtivos(ctx)
	if err != nil {
		return nil, err
	}
	if len(funcionarios) == 0 {
		return nil, ErrSemFuncionarios
	}
	uc.log.Info().Int("funcionarios", len(funcionarios)).Str("inicio", inicio).Str("fim", fim).Msg("consultando horas extras")

	itens := make([]dto.HorasExtrasFuncionarioResponse, len(funcionarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limite)
	for i, f := range funcionarios {
		g.Go(func() error {
			itens[i] = uc.consultaFuncionario(gctx, f, inicio, fim, comDetalhes)
			return nil
		})
	}
	// os workers nunca retornam erro; falhas individuais ficam no item
	_ = g.Wait()
	return itens, nil
}

func (uc *PontoUseCase) consultaFuncionario(ctx context.Context, f *entity.FuncionarioPonto, inicio, fim string, comDetalhes bool) dto.HorasExtrasFuncionarioResponse {
	out := dto.HorasExtrasFuncionarioResponse{
		Cracha:    f.Cracha,
		Matricula: f.Matricula,
		Nome:      f.Nome,
		Cargo:     f.Cargo,
	}
	detalhes, err := uc.provider.HorasExtras(ctx, f.Cracha, inicio, fim)
	if err != nil {
		uc.log.Warn().Err(err).Str("cracha", f.Cracha).Msg("falha na consulta de horas extras")
		out.Erro = err.Error()
		out.TotalHoras = MinutosParaHoras(0)
		out.TotalDecimal = MinutosParaDecimal(0)
		return out
	}
	preencherTotais(&out, detalhes)
	if !comDetalhes {
		out.Detalhes = nil
	}
	return out
}

func preencherTotais(out *dto.HorasExtrasFuncionarioResponse, detalhes []entity.HoraExtraDetalhe) {
	total := 0
	out.Detalhes = make([]dto.HoraExtraDetalheResponse, 0, len(detalhes))
	for _, d := range detalhes {
		total += d.QuantidadeMinutos
		out.Detalhes = append(out.Detalhes, dto.HoraExtraDetalheResponse{
			Data:              d.Data,
			TipoHoraExtra:     d.TipoHoraExtra,
			QuantidadeMinutos: d.QuantidadeMinutos,
			QuantidadeHoras:   d.QuantidadeHorasFmt,
		})
	}
	out.TotalMinutos = total
	out.TotalHoras = MinutosParaHoras(total)
	out.TotalDecimal = MinutosParaDecimal(total)
}

// normalizePeriodo aplica o período automático dos últimos 30 dias quando
// qualquer uma das datas vem vazia.
func (uc *PontoUseCase) normalizePeriodo(dataInicio, dataFim string) (string, string) {
	if dataInicio != "" && dataFim != "" {
		return dataInicio, dataFim
	}
	hoje := uc.now()
	return hoje.AddDate(0, 0, -periodoDias).Format(dataLayout), hoje.Format(dataLayout)
}

// MinutosParaHoras formata minutos como HH:MM com zero à esquerda.
func MinutosParaHoras(minutos int) string {
	return fmt.Sprintf("%02d:%02d", minutos/60, minutos%60)
}

// MinutosParaDecimal converte minutos em horas decimais com duas casas.
func MinutosParaDecimal(minutos int) string {
	return decimal.NewFromInt(int64(minutos)).
		Div(decimal.NewFromInt(60)).
		StringFixed(2)
}
