package entity

// FuncionarioPonto funcionário ativo cadastrado na API externa de ponto.
// Cracha é a chave usada nas consultas de horas extras.
type FuncionarioPonto struct {
	ID        int64
	Cracha    string
	Matricula string
	Nome      string
	Cargo     string
	Status    string
}

// HoraExtraDetalhe uma ocorrência de hora extra em um dia.
type HoraExtraDetalhe struct {
	Data               string // YYYY-MM-DD
	TipoHoraExtra      string
	QuantidadeMinutos  int
	QuantidadeHorasFmt string // HH:MM
}
