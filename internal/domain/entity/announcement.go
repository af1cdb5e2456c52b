package entity

import "time"

// Announcement aviso interno publicado por um admin.
type Announcement struct {
	ID        string
	Titulo    string
	Conteudo  string
	Tipo      string // informativo, urgente...
	AdminID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
