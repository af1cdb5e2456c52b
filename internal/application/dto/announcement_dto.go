package dto

import "time"

// CreateAnnouncementRequest entrada para publicar um aviso interno.
type CreateAnnouncementRequest struct {
	Titulo   string `json:"titulo" validate:"required,min=1,max=200"`
	Conteudo string `json:"conteudo" validate:"required"`
	Tipo     string `json:"tipo"`
}

// UpdateAnnouncementRequest entrada para editar um aviso.
type UpdateAnnouncementRequest struct {
	Titulo   string `json:"titulo"`
	Conteudo string `json:"conteudo"`
	Tipo     string `json:"tipo"`
}

// AnnouncementResponse saída de um aviso.
type AnnouncementResponse struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Conteudo  string    `json:"conteudo"`
	Tipo      string    `json:"tipo"`
	AdminID   string    `json:"adminId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
