package repository

import "github.com/enviagora/hub-api/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	// FindByCodigoHolerite localiza o dono de um código extraído de holerite.
	FindByCodigoHolerite(codigo string) (*entity.User, error)
	ExistsByCPFOrEmail(cpf, email string) (bool, error)
	Update(user *entity.User) error
	UpdateSenha(id, senhaHash string, mustChange bool) error
	List(limit, offset int) ([]*entity.User, error)
	ListByRole(role entity.Role) ([]*entity.User, error)
	Delete(id string) error
}
