package repository

import "github.com/enviagora/hub-api/internal/domain/entity"

// NewsRepository define o porto de persistência para edições do informativo (DIP).
type NewsRepository interface {
	Create(n *entity.News) error
	FindByID(id string) (*entity.News, error)
	List() ([]*entity.News, error)
	Delete(id string) error
}
