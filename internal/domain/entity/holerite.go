package entity

import "time"

// Holerite metadados de um holerite ingerido. O arquivo em si vive no storage
// de objetos em StoragePath. No máximo um holerite por (UserID, Competencia);
// duplicatas são rejeitadas na ingestão, nunca sobrescritas.
type Holerite struct {
	ID               string
	UserID           string
	CPF              string // snapshot do CPF do dono no momento da ingestão
	Competencia      string // período de competência, ex.: "2025-06"
	StoragePath      string
	OriginalFilename string
	CreatedAt        time.Time
}
