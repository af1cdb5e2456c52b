package holerite

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
	"github.com/enviagora/hub-api/internal/domain/extraction"
	"github.com/enviagora/hub-api/internal/domain/repository"
	"github.com/enviagora/hub-api/pkg/logger"
)

const pdfContentType = "application/pdf"

// UploadFile um arquivo recebido no lote de ingestão, já em memória.
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ValidationError erro de entrada com a mensagem pronta para o cliente.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
func (e *ValidationError) Unwrap() error { return domain.ErrEntradaInvalida }

// HoleriteUseCase casos de uso de ingestão e consulta de holerites.
type HoleriteUseCase struct {
	holeriteRepo repository.HoleriteRepository
	userRepo     repository.UserRepository
	storage      ports.BlobStorage
	extractor    ports.TextExtractor
	log          *logger.Logger
	now          func() time.Time
}

// NewHoleriteUseCase constrói o caso de uso de holerites.
func NewHoleriteUseCase(
	holeriteRepo repository.HoleriteRepository,
	userRepo repository.UserRepository,
	storage ports.BlobStorage,
	extractor ports.TextExtractor,
	log *logger.Logger,
) *HoleriteUseCase {
	return &HoleriteUseCase{
		holeriteRepo: holeriteRepo,
		userRepo:     userRepo,
		storage:      storage,
		extractor:    extractor,
		log:          log,
		now:          time.Now,
	}
}

// WithClock troca o relógio; uso em testes.
func (uc *HoleriteUseCase) WithClock(now func() time.Time) *HoleriteUseCase {
	uc.now = now
	return uc
}

// Upload processa um lote de holerites: para cada PDF extrai o código do
// funcionário, localiza o dono, checa duplicidade na competência, grava o blob
// e persiste os metadados. O lote nunca falha como um todo; cada arquivo
// carrega seu próprio resultado. Os arquivos são processados em sequência
// para manter a memória sob controle com lotes grandes.
func (uc *HoleriteUseCase) Upload(ctx context.Context, competencia string, files []UploadFile) ([]dto.UploadFileResult, error) {
	if len(files) == 0 {
		return nil, &ValidationError{Message: "Nenhum arquivo enviado."}
	}
	if strings.TrimSpace(competencia) == "" {
		return nil, &ValidationError{Message: "Competência é obrigatória."}
	}

	start := uc.now()
	uc.log.Info().Int("arquivos", len(files)).Str("competencia", competencia).Msg("iniciando lote de holerites")

	results := make([]dto.UploadFileResult, 0, len(files))
	for _, f := range files {
		results = append(results, uc.processFile(ctx, competencia, f))
	}

	uc.log.Info().Dur("duracao", uc.now().Sub(start)).Msg("lote de holerites finalizado")
	return results, nil
}

func (uc *HoleriteUseCase) processFile(ctx context.Context, competencia string, f UploadFile) dto.UploadFileResult {
	if f.ContentType != pdfContentType {
		return dto.UploadFileResult{
			File:    f.Filename,
			Ok:      false,
			Message: "Apenas arquivos PDF são permitidos.",
		}
	}

	var info extraction.Result
	text, err := uc.extractor.ExtractText(f.Data)
	if err != nil {
		uc.log.Warn().Err(err).Str("arquivo", f.Filename).Msg("falha na extração de texto")
		// a descrição do erro vira o texto do resultado, para diagnóstico no cliente
		info = extraction.Result{FullText: "Erro na extração: " + err.Error()}
	} else {
		info = extraction.Resolve(text)
	}

	if info.Codigo == "" {
		return dto.UploadFileResult{
			File:          f.Filename,
			Ok:            false,
			TextoExtraido: info.FullText,
			Message:       "Código do funcionário não encontrado no PDF.",
		}
	}
	codigo := strings.TrimSpace(info.Codigo)

	user, err := uc.userRepo.FindByCodigoHolerite(codigo)
	if err != nil || user == nil {
		return dto.UploadFileResult{
			File:           f.Filename,
			Ok:             false,
			CodigoExtraido: codigo,
			TextoExtraido:  info.FullText,
			Message:        "Nenhum funcionário encontrado com esse código.",
		}
	}

	existe, err := uc.holeriteRepo.ExistsByUserAndCompetencia(user.ID, competencia)
	if err == nil && existe {
		return dto.UploadFileResult{
			File:           f.Filename,
			Ok:             false,
			CodigoExtraido: codigo,
			TextoExtraido:  info.FullText,
			Message:        "Já existe holerite cadastrado para esse funcionário nessa competência.",
		}
	}

	key := fmt.Sprintf("holerites/%s_%s_%d.pdf", codigo, competencia, uc.now().UnixMilli())
	if err := uc.storage.Upload(ctx, key, f.Data, pdfContentType); err != nil {
		uc.log.Error().Err(err).Str("arquivo", f.Filename).Msg("erro de upload no storage")
		return dto.UploadFileResult{
			File:           f.Filename,
			Ok:             false,
			CodigoExtraido: codigo,
			TextoExtraido:  info.FullText,
			Message:        "Erro ao fazer upload no storage.",
		}
	}

	h := &entity.Holerite{
		ID:               uuid.New().String(),
		UserID:           user.ID,
		CPF:              user.CPF,
		Competencia:      competencia,
		StoragePath:      key,
		OriginalFilename: f.Filename,
		CreatedAt:        uc.now(),
	}
	if err := uc.holeriteRepo.Create(h); err != nil {
		// o blob já gravado fica órfão; preferimos isso a falhar o lote inteiro
		uc.log.Error().Err(err).Str("arquivo", f.Filename).Str("key", key).Msg("erro ao salvar metadados")
		return dto.UploadFileResult{
			File:           f.Filename,
			Ok:             false,
			CodigoExtraido: codigo,
			TextoExtraido:  info.FullText,
			Message:        "Erro ao salvar no banco.",
		}
	}

	return dto.UploadFileResult{
		File:           f.Filename,
		Ok:             true,
		CodigoExtraido: codigo,
		TextoExtraido:  info.FullText,
		Message:        fmt.Sprintf("Holerite cadastrado com sucesso para %s.", user.Nome),
	}
}

// Update troca a competência e/ou o arquivo de um holerite. Um arquivo novo só
// é aceito se o código extraído dele bate com o código do dono do registro; o
// blob novo sobe antes de o antigo ser removido para nunca deixar o registro
// sem arquivo.
func (uc *HoleriteUseCase) Update(ctx context.Context, id, competencia string, file *UploadFile) error {
	h, ownerCodigo, err := uc.holeriteRepo.FindByID(id)
	if err != nil {
		return err
	}
	if h == nil {
		return domain.ErrNaoEncontrado
	}

	if competencia != "" {
		h.Competencia = competencia
	}

	if file != nil {
		if file.ContentType != pdfContentType {
			return &ValidationError{Message: "Apenas arquivos PDF são permitidos."}
		}
		var info extraction.Result
		text, err := uc.extractor.ExtractText(file.Data)
		if err != nil {
			info = extraction.Result{FullText: "Erro na extração: " + err.Error()}
		} else {
			info = extraction.Resolve(text)
		}
		if info.Codigo == "" {
			return &ValidationError{Message: "Não foi possível identificar o código no PDF."}
		}
		pdfCodigo := strings.TrimSpace(info.Codigo)
		userCodigo := strings.TrimSpace(ownerCodigo)
		if pdfCodigo != userCodigo {
			return &ValidationError{Message: fmt.Sprintf(
				"Divergência de código! PDF: %s | Usuário: %s. O arquivo não pertence a este colaborador.",
				pdfCodigo, userCodigo,
			)}
		}

		key := fmt.Sprintf("holerites/updated_%d_%s", uc.now().UnixMilli(), file.Filename)
		if err := uc.storage.Upload(ctx, key, file.Data, pdfContentType); err != nil {
			return err
		}
		if err := uc.storage.Delete(ctx, h.StoragePath); err != nil {
			uc.log.Warn().Err(err).Str("key", h.StoragePath).Msg("não foi possível remover o blob antigo")
		}
		h.StoragePath = key
		h.OriginalFilename = file.Filename
	}

	return uc.holeriteRepo.Update(h)
}

// Download devolve o conteúdo do PDF. Somente o dono ou admin podem baixar.
func (uc *HoleriteUseCase) Download(ctx context.Context, requesterID string, requesterRole entity.Role, id string) ([]byte, *entity.Holerite, error) {
	h, _, err := uc.holeriteRepo.FindByID(id)
	if err != nil {
		return nil, nil, err
	}
	if h == nil {
		return nil, nil, domain.ErrNaoEncontrado
	}
	if requesterRole != entity.RoleAdmin && h.UserID != requesterID {
		return nil, nil, domain.ErrProibido
	}
	data, err := uc.storage.Download(ctx, h.StoragePath)
	if err != nil {
		return nil, nil, err
	}
	return data, h, nil
}

// List devolve os holerites visíveis ao solicitante: admin vê todos, os demais
// só os próprios.
func (uc *HoleriteUseCase) List(requesterID string, requesterRole entity.Role, page dto.PageRequest) ([]dto.HoleriteResponse, error) {
	var (
		items []*entity.Holerite
		err   error
	)
	if requesterRole == entity.RoleAdmin {
		page.DefaultPage()
		items, err = uc.holeriteRepo.ListAll(page.Limit, page.Offset)
	} else {
		items, err = uc.holeriteRepo.ListByUser(requesterID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.HoleriteResponse, 0, len(items))
	for _, h := range items {
		out = append(out, dto.HoleriteResponse{
			ID:               h.ID,
			UserID:           h.UserID,
			CPF:              h.CPF,
			Competencia:      h.Competencia,
			OriginalFilename: h.OriginalFilename,
			CreatedAt:        h.CreatedAt,
		})
	}
	return out, nil
}

// Delete remove o blob e depois o registro. A remoção do blob é tolerante a
// falha: um blob órfão é melhor que um registro apontando para arquivo nenhum.
func (uc *HoleriteUseCase) Delete(ctx context.Context, id string) error {
	h, _, err := uc.holeriteRepo.FindByID(id)
	if err != nil {
		return err
	}
	if h == nil {
		return domain.ErrNaoEncontrado
	}
	if err := uc.storage.Delete(ctx, h.StoragePath); err != nil {
		uc.log.Warn().Err(err).Str("key", h.StoragePath).Msg("não foi possível remover o blob")
	}
	return uc.holeriteRepo.Delete(id)
}

// Stats contagem agregada para o painel administrativo.
func (uc *HoleriteUseCase) Stats() (*dto.HoleriteStatsResponse, error) {
	total, err := uc.holeriteRepo.Count()
	if err != nil {
		return nil, err
	}
	return &dto.HoleriteStatsResponse{Total: total}, nil
}
