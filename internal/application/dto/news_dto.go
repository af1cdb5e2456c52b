package dto

import "time"

// CreateNewsRequest campos de formulário que acompanham o PDF do informativo.
type CreateNewsRequest struct {
	Titulo        string `json:"titulo" validate:"required,min=1,max=200"`
	MesReferencia int    `json:"mesReferencia" validate:"required,min=1,max=12"`
	AnoReferencia int    `json:"anoReferencia" validate:"required"`
	Notificar     bool   `json:"notificar"`
}

// NewsResponse saída de uma edição do informativo.
type NewsResponse struct {
	ID            string    `json:"id"`
	Titulo        string    `json:"titulo"`
	MesReferencia int       `json:"mesReferencia"`
	AnoReferencia int       `json:"anoReferencia"`
	PDFURL        string    `json:"pdfUrl"`
	CapaURL       string    `json:"capaUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
