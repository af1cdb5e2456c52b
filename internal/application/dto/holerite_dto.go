package dto

import "time"

// UploadFileResult resultado de um arquivo dentro de um lote de ingestão.
// O lote sempre responde 200; o sucesso de cada arquivo vem em Ok.
type UploadFileResult struct {
	File           string `json:"file"`
	Ok             bool   `json:"ok"`
	CodigoExtraido string `json:"codigoExtraido,omitempty"`
	TextoExtraido  string `json:"textoExtraido,omitempty"`
	Message        string `json:"message"`
}

// UploadBatchResponse resultado completo de um lote.
type UploadBatchResponse struct {
	Results []UploadFileResult `json:"results"`
}

// HoleriteResponse metadados de um holerite persistido.
type HoleriteResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	NomeColaborador  string    `json:"nomeColaborador,omitempty"`
	CPF              string    `json:"cpf"`
	Competencia      string    `json:"competencia"`
	OriginalFilename string    `json:"originalFilename"`
	CreatedAt        time.Time `json:"createdAt"`
}

// HoleriteStatsResponse contagem agregada para o painel administrativo.
type HoleriteStatsResponse struct {
	Total int64 `json:"total"`
}
