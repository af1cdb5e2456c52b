package holerite

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enviagora/hub-api/internal/application/dto"
	"github.com/enviagora/hub-api/internal/domain"
	"github.com/enviagora/hub-api/internal/domain/entity"
	"github.com/enviagora/hub-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error              { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) FindByCodigoHolerite(codigo string) (*entity.User, error) {
	for _, u := range r.users {
		if u.CodigoHolerite == codigo {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) ExistsByCPFOrEmail(cpf, email string) (bool, error) { return false, nil }
func (r *fakeUserRepo) Update(u *entity.User) error                        { return nil }
func (r *fakeUserRepo) UpdateSenha(id, hash string, mustChange bool) error { return nil }
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error)     { return nil, nil }
func (r *fakeUserRepo) ListByRole(role entity.Role) ([]*entity.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) Delete(id string) error { delete(r.users, id); return nil }

type fakeHoleriteRepo struct {
	items      map[string]*entity.Holerite
	ownerCodes map[string]string // holerite ID -> codigo_holerite do dono
	failCreate bool
}

func newFakeHoleriteRepo() *fakeHoleriteRepo {
	return &fakeHoleriteRepo{items: map[string]*entity.Holerite{}, ownerCodes: map[string]string{}}
}

func (r *fakeHoleriteRepo) Create(h *entity.Holerite) error {
	if r.failCreate {
		return errors.New("banco fora do ar")
	}
	r.items[h.ID] = h
	return nil
}
func (r *fakeHoleriteRepo) FindByID(id string) (*entity.Holerite, string, error) {
	return r.items[id], r.ownerCodes[id], nil
}
func (r *fakeHoleriteRepo) ExistsByUserAndCompetencia(userID, competencia string) (bool, error) {
	for _, h := range r.items {
		if h.UserID == userID && h.Competencia == competencia {
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeHoleriteRepo) ListAll(limit, offset int) ([]*entity.Holerite, error) {
	var out []*entity.Holerite
	for _, h := range r.items {
		out = append(out, h)
	}
	return out, nil
}
func (r *fakeHoleriteRepo) ListByUser(userID string) ([]*entity.Holerite, error) {
	var out []*entity.Holerite
	for _, h := range r.items {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}
func (r *fakeHoleriteRepo) Update(h *entity.Holerite) error { r.items[h.ID] = h; return nil }
func (r *fakeHoleriteRepo) Delete(id string) error          { delete(r.items, id); return nil }
func (r *fakeHoleriteRepo) Count() (int64, error)           { return int64(len(r.items)), nil }

type fakeStorage struct {
	blobs      map[string][]byte
	deleted    []string
	failUpload bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{blobs: map[string][]byte{}}
}

func (s *fakeStorage) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	if s.failUpload {
		return errors.New("storage indisponível")
	}
	s.blobs[key] = body
	return nil
}
func (s *fakeStorage) Download(ctx context.Context, key string) ([]byte, error) {
	b, ok := s.blobs[key]
	if !ok {
		return nil, errors.New("objeto não existe")
	}
	return b, nil
}
func (s *fakeStorage) Delete(ctx context.Context, key string) error {
	s.deleted = append(s.deleted, key)
	delete(s.blobs, key)
	return nil
}
func (s *fakeStorage) URL(key string) string { return "https://blobs.local/" + key }

// fakeExtractor devolve o próprio conteúdo do arquivo como texto: os testes
// escrevem o "texto do PDF" direto nos bytes.
type fakeExtractor struct {
	calls int
	fail  bool
}

func (e *fakeExtractor) ExtractText(data []byte) (string, error) {
	e.calls++
	if e.fail {
		return "", errors.New("pdf corrompido")
	}
	return string(data), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc        *HoleriteUseCase
	users     *fakeUserRepo
	holerites *fakeHoleriteRepo
	storage   *fakeStorage
	extractor *fakeExtractor
}

func newFixture(users ...*entity.User) *fixture {
	f := &fixture{
		users:     newFakeUserRepo(users...),
		holerites: newFakeHoleriteRepo(),
		storage:   newFakeStorage(),
		extractor: &fakeExtractor{},
	}
	f.uc = NewHoleriteUseCase(f.holerites, f.users, f.storage, f.extractor, logger.Nop())
	return f
}

func maria() *entity.User {
	return &entity.User{ID: "u1", Nome: "Maria Souza", CPF: "11122233344", CodigoHolerite: "4521", Role: entity.RoleFuncionario}
}

func pdfFile(name, texto string) UploadFile {
	return UploadFile{Filename: name, ContentType: "application/pdf", Data: []byte(texto)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Upload
// ──────────────────────────────────────────────────────────────────────────────

func TestUpload_ArquivoValido(t *testing.T) {
	f := newFixture(maria())

	results, err := f.uc.Upload(context.Background(), "07-2025", []UploadFile{pdfFile("julho.pdf", "CC: 4521")})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.True(t, r.Ok)
	assert.Equal(t, "julho.pdf", r.File)
	assert.Equal(t, "4521", r.CodigoExtraido)
	assert.Equal(t, "Holerite cadastrado com sucesso para Maria Souza.", r.Message)

	require.Len(t, f.holerites.items, 1)
	for _, h := range f.holerites.items {
		assert.Equal(t, "u1", h.UserID)
		assert.Equal(t, "11122233344", h.CPF, "o CPF vem do cadastro do dono")
		assert.Equal(t, "07-2025", h.Competencia)
		assert.True(t, strings.HasPrefix(h.StoragePath, "holerites/4521_07-2025_"))
		assert.True(t, strings.HasSuffix(h.StoragePath, ".pdf"))
		_, gravado := f.storage.blobs[h.StoragePath]
		assert.True(t, gravado, "o blob deve existir no storage")
	}
}

func TestUpload_TipoNaoPDFRejeitadoSemExtrair(t *testing.T) {
	f := newFixture(maria())

	results, err := f.uc.Upload(context.Background(), "07-2025", []UploadFile{{
		Filename: "foto.png", ContentType: "image/png", Data: []byte("..."),
	}})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Ok)
	assert.Equal(t, "Apenas arquivos PDF são permitidos.", results[0].Message)
	assert.Zero(t, f.extractor.calls, "arquivo rejeitado por tipo não passa pela extração")
}

func TestUpload_CodigoNaoEncontrado(t *testing.T) {
	f := newFixture(maria())

	results, err := f.uc.Upload(context.Background(), "07-2025", []UploadFile{pdfFile("x.pdf", "documento sem identificador")})
	require.NoError(t, err)
	assert.False(t, results[0].Ok)
	assert.Equal(t, "Código do funcionário não encontrado no PDF.", results[0].Message)
	assert.Empty(t, results[0].CodigoExtraido)
}

func TestUpload_FuncionarioDesconhecido(t *testing.T) {
	f := newFixture(maria())

	results, err := f.uc.Upload(context.Background(), "07-2025", []UploadFile{pdfFile("x.pdf", "CC: 9999")})
	require.NoError(t, err)
	assert.False(t, results[0].Ok)
	assert.Equal(t, "9999", results[0].CodigoExtraido)
	assert.Equal(t, "Nenhum funcionário encontrado com esse código.", results[0].Message)
	assert.Empty(t, f.storage.blobs, "nada deve ter subido para o storage")
}

func TestUpload_DuplicadoNaCompetencia(t *testing.T) {
	f := newFixture(maria())

	_, err := f.uc.Upload(context.Background(), "07-2025", []UploadFile{pdfFile("a.pdf", "CC: 4521")})
	require.NoError(t, err)

	results, err := f.uc.Upload(context.Background(), "07-2025", []UploadFile{pdfFile("b.pdf", "CC: 4521")})
	require.NoError(t, err)
	assert.False(t, results[0].Ok)
	assert.Equal(t, "Já existe holerite cadastrado para esse funcionário nessa competência.", results[0].Message)

	// competência diferente é aceita
	results, err = f.uc.Upload(context.Background(), "08-2025", []UploadFile{pdfFile("c.pdf", "CC: 4521")})
	require.NoError(t, err)
	assert.True(t, results[0].Ok)
}

// Um arquivo ruim não derruba o restante do lote.
func TestUpload_LoteMistoIndependente(t *testing.T) {
	f := newFixture(maria())

	results, err := f.uc.Upload(context.Background(), "07-2025", []UploadFile{
		pdfFile("ruim.pdf", "sem codigo nenhum"),
		pdfFile("bom.pdf", "CC: 4521"),
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.False(t, results[0].Ok)
	assert.True(t, results[1].Ok)
}

func TestUpload_LoteVazioOuSemCompetencia(t *testing.T) {
	f := newFixture(maria())

	_, err := f.uc.Upload(context.Background(), "07-2025", nil)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Nenhum arquivo enviado.", verr.Message)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)

	_, err = f.uc.Upload(context.Background(), "  ", []UploadFile{pdfFile("a.pdf", "CC: 4521")})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Competência é obrigatória.", verr.Message)
}

func TestUpload_FalhaNoStorage(t *testing.T) {
	f := newFixture(maria())
	f.storage.failUpload = true

	results, err := f.uc.Upload(context.Background(), "07-2025", []UploadFile{pdfFile("a.pdf", "CC: 4521")})
	require.NoError(t, err)
	assert.False(t, results[0].Ok)
	assert.Equal(t, "Erro ao fazer upload no storage.", results[0].Message)
	assert.Empty(t, f.holerites.items, "sem blob não pode haver metadados")
}

func TestUpload_FalhaDeExtracaoRegistraErroNoTexto(t *testing.T) {
	f := newFixture(maria())
	f.extractor.fail = true

	results, err := f.uc.Upload(context.Background(), "07-2025", []UploadFile{pdfFile("a.pdf", "CC: 4521")})
	require.NoError(t, err)
	assert.False(t, results[0].Ok)
	assert.Equal(t, "Código do funcionário não encontrado no PDF.", results[0].Message)
	assert.Empty(t, results[0].CodigoExtraido, "texto de erro nunca resolve código")
	assert.Equal(t, "Erro na extração: pdf corrompido", results[0].TextoExtraido,
		"a descrição da falha deve voltar no textoExtraido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func seedHolerite(f *fixture, id, userID, ownerCodigo, competencia, path string) {
	f.holerites.items[id] = &entity.Holerite{
		ID: id, UserID: userID, Competencia: competencia, StoragePath: path, OriginalFilename: "antigo.pdf",
	}
	f.holerites.ownerCodes[id] = ownerCodigo
	f.storage.blobs[path] = []byte("conteudo antigo")
}

func TestUpdate_ArquivoDeOutroColaborador(t *testing.T) {
	f := newFixture(maria())
	seedHolerite(f, "h1", "u1", "4521", "07-2025", "holerites/antigo.pdf")

	file := pdfFile("novo.pdf", "CC: 9999")
	err := f.uc.Update(context.Background(), "h1", "", &file)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "PDF: 9999")
	assert.Contains(t, verr.Message, "Usuário: 4521")
	assert.Contains(t, f.storage.blobs, "holerites/antigo.pdf", "o blob antigo deve permanecer intacto")
}

func TestUpdate_TrocaArquivoDoMesmoDono(t *testing.T) {
	f := newFixture(maria())
	seedHolerite(f, "h1", "u1", "4521", "07-2025", "holerites/antigo.pdf")

	file := pdfFile("novo.pdf", "CC: 4521")
	require.NoError(t, f.uc.Update(context.Background(), "h1", "08-2025", &file))

	h := f.holerites.items["h1"]
	assert.Equal(t, "08-2025", h.Competencia)
	assert.Equal(t, "novo.pdf", h.OriginalFilename)
	assert.True(t, strings.HasPrefix(h.StoragePath, "holerites/updated_"))
	assert.True(t, strings.HasSuffix(h.StoragePath, "_novo.pdf"))
	assert.Contains(t, f.storage.deleted, "holerites/antigo.pdf", "o blob antigo deve ser removido")
	assert.Contains(t, f.storage.blobs, h.StoragePath)
}

func TestUpdate_SoCompetenciaSemArquivo(t *testing.T) {
	f := newFixture(maria())
	seedHolerite(f, "h1", "u1", "4521", "07-2025", "holerites/antigo.pdf")

	require.NoError(t, f.uc.Update(context.Background(), "h1", "09-2025", nil))
	assert.Equal(t, "09-2025", f.holerites.items["h1"].Competencia)
	assert.Equal(t, "holerites/antigo.pdf", f.holerites.items["h1"].StoragePath)
}

func TestUpdate_FalhaDeExtracaoRejeitaArquivo(t *testing.T) {
	f := newFixture(maria())
	seedHolerite(f, "h1", "u1", "4521", "07-2025", "holerites/antigo.pdf")
	f.extractor.fail = true

	file := pdfFile("novo.pdf", "CC: 4521")
	err := f.uc.Update(context.Background(), "h1", "", &file)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Não foi possível identificar o código no PDF.", verr.Message)
	assert.Contains(t, f.storage.blobs, "holerites/antigo.pdf", "o blob antigo deve permanecer intacto")
}

func TestUpdate_NaoEncontrado(t *testing.T) {
	f := newFixture()
	err := f.uc.Update(context.Background(), "nope", "07-2025", nil)
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Download / List / Delete / Stats
// ──────────────────────────────────────────────────────────────────────────────

func TestDownload_DonoOuAdmin(t *testing.T) {
	f := newFixture(maria())
	seedHolerite(f, "h1", "u1", "4521", "07-2025", "holerites/a.pdf")

	data, h, err := f.uc.Download(context.Background(), "u1", entity.RoleFuncionario, "h1")
	require.NoError(t, err)
	assert.Equal(t, []byte("conteudo antigo"), data)
	assert.Equal(t, "h1", h.ID)

	_, _, err = f.uc.Download(context.Background(), "admin-1", entity.RoleAdmin, "h1")
	assert.NoError(t, err)

	_, _, err = f.uc.Download(context.Background(), "u2", entity.RoleFuncionario, "h1")
	assert.ErrorIs(t, err, domain.ErrProibido)

	_, _, err = f.uc.Download(context.Background(), "u2", entity.RoleRH, "h1")
	assert.ErrorIs(t, err, domain.ErrProibido, "rh não baixa holerite alheio; só admin")
}

func TestList_EscopoPorPapel(t *testing.T) {
	f := newFixture(maria())
	seedHolerite(f, "h1", "u1", "4521", "07-2025", "holerites/a.pdf")
	seedHolerite(f, "h2", "u2", "7777", "07-2025", "holerites/b.pdf")

	todos, err := f.uc.List("admin-1", entity.RoleAdmin, dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, todos, 2)

	meus, err := f.uc.List("u1", entity.RoleFuncionario, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, meus, 1)
	assert.Equal(t, "h1", meus[0].ID)
}

func TestDelete_RemoveBlobERegistro(t *testing.T) {
	f := newFixture(maria())
	seedHolerite(f, "h1", "u1", "4521", "07-2025", "holerites/a.pdf")

	require.NoError(t, f.uc.Delete(context.Background(), "h1"))
	assert.Empty(t, f.holerites.items)
	assert.Contains(t, f.storage.deleted, "holerites/a.pdf")
}

func TestStats_Contagem(t *testing.T) {
	f := newFixture(maria())
	seedHolerite(f, "h1", "u1", "4521", "07-2025", "holerites/a.pdf")
	seedHolerite(f, "h2", "u1", "4521", "08-2025", "holerites/b.pdf")

	out, err := f.uc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Total)
}
