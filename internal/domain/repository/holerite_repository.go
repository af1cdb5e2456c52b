package repository

import "github.com/enviagora/hub-api/internal/domain/entity"

// HoleriteRepository define o porto de persistência para metadados de holerite (DIP).
type HoleriteRepository interface {
	Create(h *entity.Holerite) error
	// FindByID retorna o holerite junto com o codigo_holerite do dono,
	// necessário na troca de arquivo para validar o código extraído.
	FindByID(id string) (*entity.Holerite, string, error)
	ExistsByUserAndCompetencia(userID, competencia string) (bool, error)
	ListAll(limit, offset int) ([]*entity.Holerite, error)
	ListByUser(userID string) ([]*entity.Holerite, error)
	Update(h *entity.Holerite) error
	Delete(id string) error
	Count() (int64, error)
}
