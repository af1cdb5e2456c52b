// Package news publica as edições mensais do informativo interno: o PDF e a
// capa sobem para o storage e, quando pedido, os funcionários recebem o aviso
// por e-mail.
package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/enviagora/hub-api/internal/application/dto"
	"github.com/enviagora/hub-api/internal/application/ports"
	"github.com/enviagora/hub-api/internal/domain"
	"github.com/enviagora/hub-api/internal/domain/entity"
	"github.com/enviagora/hub-api/internal/domain/repository"
	"github.com/enviagora/hub-api/pkg/logger"
)

// File um arquivo recebido no formulário de publicação, já em memória.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

var meses = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// NomeMes devolve o nome do mês em português; vazio fora de 1..12.
func NomeMes(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return meses[m-1]
}

// NewsUseCase casos de uso do informativo mensal.
type NewsUseCase struct {
	repo     repository.NewsRepository
	userRepo repository.UserRepository
	storage  ports.BlobStorage
	mailer   ports.EmailSender
	log      *logger.Logger
	now      func() time.Time
}

// NewNewsUseCase constrói o caso de uso do informativo.
func NewNewsUseCase(
	repo repository.NewsRepository,
	userRepo repository.UserRepository,
	storage ports.BlobStorage,
	mailer ports.EmailSender,
	log *logger.Logger,
) *NewsUseCase {
	return &NewsUseCase{repo: repo, userRepo: userRepo, storage: storage, mailer: mailer, log: log, now: time.Now}
}

// WithClock troca o relógio; uso em testes.
func (uc *NewsUseCase) WithClock(now func() time.Time) *NewsUseCase {
	uc.now = now
	return uc
}

// Create publica uma edição: sobe o PDF (obrigatório) e a capa (opcional) e
// grava o registro. Com Notificar ligado, o aviso por e-mail sai em segundo
// plano; a publicação não espera o broadcast.
func (uc *NewsUseCase) Create(ctx context.Context, in dto.CreateNewsRequest, pdf *File, capa *File) (*dto.NewsResponse, error) {
	titulo := strings.TrimSpace(in.Titulo)
	if titulo == "" || in.MesReferencia < 1 || in.MesReferencia > 12 || in.AnoReferencia == 0 {
		return nil, domain.ErrEntradaInvalida
	}
	if pdf == nil {
		return nil, domain.ErrEntradaInvalida
	}

	pdfKey := fmt.Sprintf("news/%d/%d_%s", in.AnoReferencia, uc.now().UnixMilli(), pdf.Filename)
	if err := uc.storage.Upload(ctx, pdfKey, pdf.Data, "application/pdf"); err != nil {
		return nil, err
	}

	capaURL := ""
	if capa != nil {
		contentType := capa.ContentType
		if contentType == "" {
			contentType = "image/jpeg"
		}
		capaKey := fmt.Sprintf("news/%d/capas/%d_%s", in.AnoReferencia, uc.now().UnixMilli(), capa.Filename)
		if err := uc.storage.Upload(ctx, capaKey, capa.Data, contentType); err != nil {
			return nil, err
		}
		capaURL = uc.storage.URL(capaKey)
	}

	n := &entity.News{
		ID:            uuid.New().String(),
		Titulo:        titulo,
		MesReferencia: in.MesReferencia,
		AnoReferencia: in.AnoReferencia,
		PDFURL:        uc.storage.URL(pdfKey),
		CapaURL:       capaURL,
		CreatedAt:     uc.now(),
	}
	if err := uc.repo.Create(n); err != nil {
		return nil, err
	}

	if in.Notificar {
		go uc.broadcast(n)
	}
	return toResponse(n), nil
}

// broadcast avisa os funcionários sobre a nova edição. Roda desatado da
// requisição; falhas individuais só geram log.
func (uc *NewsUseCase) broadcast(n *entity.News) {
	ctx := context.Background()
	users, err := uc.userRepo.ListByRole(entity.RoleFuncionario)
	if err != nil {
		uc.log.Error().Err(err).Msg("broadcast do informativo: falha ao listar funcionários")
		return
	}
	titulo := fmt.Sprintf("%s - %s/%d", n.Titulo, NomeMes(n.MesReferencia), n.AnoReferencia)
	enviados := 0
	for _, u := range users {
		if err := uc.mailer.SendNewsEmail(ctx, u.Email, u.Nome, titulo, n.PDFURL); err != nil {
			uc.log.Warn().Err(err).Str("email", u.Email).Msg("broadcast do informativo: envio falhou")
			continue
		}
		enviados++
	}
	uc.log.Info().Int("enviados", enviados).Int("total", len(users)).Msg("broadcast do informativo concluído")
}

// List devolve as edições da mais recente para a mais antiga.
func (uc *NewsUseCase) List() ([]dto.NewsResponse, error) {
	items, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.NewsResponse, 0, len(items))
	for _, n := range items {
		out = append(out, *toResponse(n))
	}
	return out, nil
}

// Delete remove o registro da edição. Os blobs ficam: o caminho relativo não é
// recuperável com segurança a partir da URL pública gravada.
func (uc *NewsUseCase) Delete(id string) error {
	n, err := uc.repo.FindByID(id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.Delete(id)
}

func toResponse(n *entity.News) *dto.NewsResponse {
	return &dto.NewsResponse{
		ID:            n.ID,
		Titulo:        n.Titulo,
		MesReferencia: n.MesReferencia,
		AnoReferencia: n.AnoReferencia,
		PDFURL:        n.PDFURL,
		CapaURL:       n.CapaURL,
		CreatedAt:     n.CreatedAt,
	}
}
