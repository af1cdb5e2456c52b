package repository

import "github.com/enviagora/hub-api/internal/domain/entity"

// AnnouncementRepository define o porto de persistência para avisos internos (DIP).
type AnnouncementRepository interface {
	Create(a *entity.Announcement) error
	FindByID(id string) (*entity.Announcement, error)
	List() ([]*entity.Announcement, error)
	Update(a *entity.Announcement) error
	Delete(id string) error
}
