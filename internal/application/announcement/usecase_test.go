package announcement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enviagora/hub-api/internal/application/dto"
	"github.com/enviagora/hub-api/internal/domain"
	"github.com/enviagora/hub-api/internal/domain/entity"
)

type fakeRepo struct {
	items map[string]*entity.Announcement
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]*entity.Announcement{}}
}

func (r *fakeRepo) Create(a *entity.Announcement) error { r.items[a.ID] = a; return nil }
func (r *fakeRepo) FindByID(id string) (*entity.Announcement, error) {
	return r.items[id], nil
}
func (r *fakeRepo) List() ([]*entity.Announcement, error) {
	var out []*entity.Announcement
	for _, a := range r.items {
		out = append(out, a)
	}
	return out, nil
}
func (r *fakeRepo) Update(a *entity.Announcement) error { r.items[a.ID] = a; return nil }
func (r *fakeRepo) Delete(id string) error              { delete(r.items, id); return nil }

func TestCreate_TipoPadraoInformativo(t *testing.T) {
	uc := NewAnnouncementUseCase(newFakeRepo())

	out, err := uc.Create("admin-1", dto.CreateAnnouncementRequest{Titulo: "Recesso", Conteudo: "Sexta não haverá expediente."})
	require.NoError(t, err)
	assert.Equal(t, "informativo", out.Tipo)
	assert.Equal(t, "admin-1", out.AdminID)
}

func TestCreate_TituloEConteudoObrigatorios(t *testing.T) {
	uc := NewAnnouncementUseCase(newFakeRepo())

	_, err := uc.Create("admin-1", dto.CreateAnnouncementRequest{Titulo: "  ", Conteudo: "x"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = uc.Create("admin-1", dto.CreateAnnouncementRequest{Titulo: "x", Conteudo: ""})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestUpdate_AtualizaCamposEMantemAutor(t *testing.T) {
	repo := newFakeRepo()
	uc := NewAnnouncementUseCase(repo)

	criado, err := uc.Create("admin-1", dto.CreateAnnouncementRequest{Titulo: "Recesso", Conteudo: "Sexta.", Tipo: "urgente"})
	require.NoError(t, err)

	depois := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	uc.WithClock(func() time.Time { return depois })

	out, err := uc.Update(criado.ID, dto.UpdateAnnouncementRequest{Titulo: "Recesso prolongado", Conteudo: "Sexta e segunda."})
	require.NoError(t, err)
	assert.Equal(t, "Recesso prolongado", out.Titulo)
	assert.Equal(t, "informativo", out.Tipo, "tipo vazio na edição volta ao padrão")
	assert.Equal(t, "admin-1", out.AdminID)
	assert.Equal(t, depois, out.UpdatedAt)
}

func TestUpdate_NaoEncontrado(t *testing.T) {
	uc := NewAnnouncementUseCase(newFakeRepo())
	_, err := uc.Update("nope", dto.UpdateAnnouncementRequest{Titulo: "a", Conteudo: "b"})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	uc := NewAnnouncementUseCase(repo)

	criado, err := uc.Create("admin-1", dto.CreateAnnouncementRequest{Titulo: "a", Conteudo: "b"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(criado.ID))
	assert.Empty(t, repo.items)

	assert.ErrorIs(t, uc.Delete(criado.ID), domain.ErrNaoEncontrado)
}
