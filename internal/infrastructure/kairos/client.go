// Package kairos implementa o porto PontoProvider sobre a API REST do
// Kairos (Dimep), o sistema externo de controle de ponto.
package kairos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/enviagora/hub-api/internal/application/ports"
	"github.com/enviagora/hub-api/internal/domain/entity"
	"github.com/enviagora/hub-api/pkg/config"
)

var _ ports.PontoProvider = (*Client)(nil)

const requestTimeout = 15 * time.Second

// Client cliente HTTP autenticado da API Kairos.
type Client struct {
	httpClient *http.Client
	baseURL    string
	identifier string
	key        string
}

// NewClient constrói o cliente a partir da configuração.
func NewClient(cfg config.KairosConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		identifier: cfg.Identifier,
		key:        cfg.Key,
	}
}

type searchPeopleRequest struct {
	Excluido bool `json:"Excluido"`
	Pagina   int  `json:"Pagina"`
}

type searchPeopleResponse struct {
	Obj         []kairosPessoa `json:"Obj"`
	PaginaAtual int            `json:"PaginaAtual"`
	TotalPagina int            `json:"TotalPagina"`
}

type kairosPessoa struct {
	ID        int64       `json:"Id"`
	Cracha    json.Number `json:"Cracha"`
	Matricula json.Number `json:"Matricula"`
	Nome      string      `json:"Nome"`
	Cargo     *struct {
		Descricao string `json:"Descricao"`
	} `json:"Cargo"`
	PessoaStatus json.Number `json:"PessoaStatus"`
}

type extraHoursRequest struct {
	IdsPessoa    []int64 `json:"IdsPessoa"`
	DataInicio   string  `json:"DataInicio"`
	DataFim      string  `json:"DataFim"`
	RequestType  string  `json:"RequestType"`  // 2 = busca por crachá
	ResponseType string  `json:"ResponseType"` // AS400V1
}

type extraHoursResponse struct {
	Obj []struct {
		Ano        int `json:"Ano"`
		Mes        int `json:"Mes"`
		Dia        int `json:"Dia"`
		HorasExtra []struct {
			TipoHoraExtra   string      `json:"TipoHoraExtra"`
			Descricao       string      `json:"Descricao"`
			QuantidadeTempo json.Number `json:"QuantidadeTempo"`
		} `json:"HorasExtra"`
	} `json:"Obj"`
}

// ListFuncionariosAtivos varre todas as páginas de People/SearchPeople e
// devolve os funcionários ativos com crachá cadastrado.
func (c *Client) ListFuncionariosAtivos(ctx context.Context) ([]*entity.FuncionarioPonto, error) {
	var funcionarios []*entity.FuncionarioPonto

	pagina, totalPaginas := 1, 1
	for pagina <= totalPaginas {
		var resp searchPeopleResponse
		err := c.post(ctx, "/People/SearchPeople", searchPeopleRequest{Excluido: false, Pagina: pagina}, &resp)
		if err != nil {
			return nil, fmt.Errorf("search people page %d: %w", pagina, err)
		}
		if len(resp.Obj) == 0 {
			break
		}

		for _, p := range resp.Obj {
			cracha := p.Cracha.String()
			if cracha == "" || cracha == "0" {
				continue
			}
			f := &entity.FuncionarioPonto{
				ID:        p.ID,
				Cracha:    cracha,
				Matricula: p.Matricula.String(),
				Nome:      p.Nome,
				Status:    p.PessoaStatus.String(),
			}
			if p.Cargo != nil {
				f.Cargo = p.Cargo.Descricao
			}
			funcionarios = append(funcionarios, f)
		}

		pagina = resp.PaginaAtual + 1
		totalPaginas = resp.TotalPagina
	}

	return funcionarios, nil
}

// HorasExtras consulta ExtraHour/GetExtraHours para um crachá no período dado
// (datas em DD-MM-YYYY) e devolve uma ocorrência por tipo de hora extra por dia.
func (c *Client) HorasExtras(ctx context.Context, cracha, dataInicio, dataFim string) ([]entity.HoraExtraDetalhe, error) {
	id, err := strconv.ParseInt(cracha, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("crachá inválido %q: %w", cracha, err)
	}

	payload := extraHoursRequest{
		IdsPessoa:    []int64{id},
		DataInicio:   dataInicio,
		DataFim:      dataFim,
		RequestType:  "2",
		ResponseType: "AS400V1",
	}
	var resp extraHoursResponse
	if err := c.post(ctx, "/ExtraHour/GetExtraHours", payload, &resp); err != nil {
		return nil, fmt.Errorf("get extra hours cracha %s: %w", cracha, err)
	}

	var detalhes []entity.HoraExtraDetalhe
	for _, dia := range resp.Obj {
		data := fmt.Sprintf("%04d-%02d-%02d", dia.Ano, dia.Mes, dia.Dia)
		for _, extra := range dia.HorasExtra {
			minutos, _ := extra.QuantidadeTempo.Int64()
			tipo := extra.TipoHoraExtra
			if tipo == "" {
				tipo = extra.Descricao
			}
			detalhes = append(detalhes, entity.HoraExtraDetalhe{
				Data:               data,
				TipoHoraExtra:      tipo,
				QuantidadeMinutos:  int(minutos),
				QuantidadeHorasFmt: fmt.Sprintf("%02d:%02d", minutos/60, minutos%60),
			})
		}
	}
	return detalhes, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("identifier", c.identifier)
	req.Header.Set("key", c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
