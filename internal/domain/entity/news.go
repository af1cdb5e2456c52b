package entity

import "time"

// News edição do informativo mensal (PDF + capa opcional no storage).
type News struct {
	ID            string
	Titulo        string
	MesReferencia int
	AnoReferencia int
	PDFURL        string
	CapaURL       string
	CreatedAt     time.Time
}
