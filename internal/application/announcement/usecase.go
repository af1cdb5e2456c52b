package announcement

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/enviagora/hub-api/internal/application/dto"
	"github.com/enviagora/hub-api/internal/domain"
	"github.com/enviagora/hub-api/internal/domain/entity"
	"github.com/enviagora/hub-api/internal/domain/repository"
)

const tipoPadrao = "informativo"

// AnnouncementUseCase casos de uso do mural de avisos internos.
type AnnouncementUseCase struct {
	repo repository.AnnouncementRepository
	now  func() time.Time
}

// NewAnnouncementUseCase constrói o caso de uso de avisos.
func NewAnnouncementUseCase(repo repository.AnnouncementRepository) *AnnouncementUseCase {
	return &AnnouncementUseCase{repo: repo, now: time.Now}
}

// WithClock troca o relógio; uso em testes.
func (uc *AnnouncementUseCase) WithClock(now func() time.Time) *AnnouncementUseCase {
	uc.now = now
	return uc
}

// Create publica um aviso assinado pelo admin autor. Tipo vazio vira
// "informativo".
func (uc *AnnouncementUseCase) Create(adminID string, in dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	titulo := strings.TrimSpace(in.Titulo)
	conteudo := strings.TrimSpace(in.Conteudo)
	if titulo == "" || conteudo == "" {
		return nil, domain.ErrEntradaInvalida
	}
	tipo := in.Tipo
	if tipo == "" {
		tipo = tipoPadrao
	}

	agora := uc.now()
	a := &entity.Announcement{
		ID:        uuid.New().String(),
		Titulo:    titulo,
		Conteudo:  conteudo,
		Tipo:      tipo,
		AdminID:   adminID,
		CreatedAt: agora,
		UpdatedAt: agora,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toResponse(a), nil
}

// Update edita um aviso existente. Título e conteúdo continuam obrigatórios.
func (uc *AnnouncementUseCase) Update(id string, in dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	titulo := strings.TrimSpace(in.Titulo)
	conteudo := strings.TrimSpace(in.Conteudo)
	if titulo == "" || conteudo == "" {
		return nil, domain.ErrEntradaInvalida
	}

	a, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNaoEncontrado
	}

	a.Titulo = titulo
	a.Conteudo = conteudo
	a.Tipo = in.Tipo
	if a.Tipo == "" {
		a.Tipo = tipoPadrao
	}
	a.UpdatedAt = uc.now()

	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toResponse(a), nil
}

// List devolve os avisos do mais recente para o mais antigo.
func (uc *AnnouncementUseCase) List() ([]dto.AnnouncementResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AnnouncementResponse, 0, len(items))
	for _, a := range items {
		out = append(out, *toResponse(a))
	}
	return out, nil
}

// Delete remove um aviso.
func (uc *AnnouncementUseCase) Delete(id string) error {
	a, err := uc.repo.FindByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.Delete(id)
}

func toResponse(a *entity.Announcement) *dto.AnnouncementResponse {
	return &dto.AnnouncementResponse{
		ID:        a.ID,
		Titulo:    a.Titulo,
		Conteudo:  a.Conteudo,
		Tipo:      a.Tipo,
		AdminID:   a.AdminID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
