package ports

import (
	"context"

	"github.com/enviagora/hub-api/internal/domain/entity"
)

// PontoProvider define o porto de saída para a API externa de controle de
// ponto. O contexto deve carregar timeout: são chamadas de rede paginadas.
type PontoProvider interface {
	// ListFuncionariosAtivos percorre todas as páginas de pessoas e devolve
	// apenas os funcionários com crachá ativo.
	ListFuncionariosAtivos(ctx context.Context) ([]*entity.FuncionarioPonto, error)
	// HorasExtras consulta as ocorrências de hora extra de um crachá no
	// período; datas em DD-MM-YYYY.
	HorasExtras(ctx context.Context, cracha, dataInicio, dataFim string) ([]entity.HoraExtraDetalhe, error)
}
