package dto

// FuncionarioPontoResponse funcionário ativo conforme a API externa de ponto.
type FuncionarioPontoResponse struct {
	ID        int64  `json:"id"`
	Cracha    string `json:"cracha"`
	Matricula string `json:"matricula"`
	Nome      string `json:"nome"`
	Cargo     string `json:"cargo"`
	Status    string `json:"status"`
}

// HoraExtraDetalheResponse uma ocorrência de hora extra em um dia.
type HoraExtraDetalheResponse struct {
	Data              string `json:"data"`
	TipoHoraExtra     string `json:"tipoHoraExtra"`
	QuantidadeMinutos int    `json:"quantidadeMinutos"`
	QuantidadeHoras   string `json:"quantidadeHoras"`
}

// HorasExtrasFuncionarioResponse agregado de horas extras de um funcionário no
// período consultado. Erro preenchido indica que a consulta deste funcionário
// falhou sem derrubar o lote.
type HorasExtrasFuncionarioResponse struct {
	Cracha       string                     `json:"cracha"`
	Matricula    string                     `json:"matricula"`
	Nome         string                     `json:"nome"`
	Cargo        string                     `json:"cargo"`
	TotalMinutos int                        `json:"totalMinutos"`
	TotalHoras   string                     `json:"totalHoras"`
	TotalDecimal string                     `json:"totalDecimal"`
	Detalhes     []HoraExtraDetalheResponse `json:"detalhes,omitempty"`
	Erro         string                     `json:"erro,omitempty"`
}

// MinhaMatriculaResponse matrícula do usuário logado para consulta de ponto.
type MinhaMatriculaResponse struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	CPF       string `json:"cpf"`
	Matricula string `json:"matricula"`
	Mensagem  string `json:"mensagem"`
}

// RankingHorasExtrasResponse ranking decrescente por minutos acumulados.
type RankingHorasExtrasResponse struct {
	Periodo Periodo                          `json:"periodo"`
	Itens   []HorasExtrasFuncionarioResponse `json:"itens"`
}

// Periodo intervalo consultado, datas em DD-MM-YYYY.
type Periodo struct {
	DataInicio string `json:"dataInicio"`
	DataFim    string `json:"dataFim"`
}
