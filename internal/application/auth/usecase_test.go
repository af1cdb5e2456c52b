package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/enviagora/hub-api/internal/application/dto"
	"github.com/enviagora/hub-api/internal/domain"
	"github.com/enviagora/hub-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users      map[string]*entity.User // por ID
	senhaCalls []string                // hashes gravados via UpdateSenha
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) FindByID(id string) (*entity.User, error) {
	return r.users[id], nil
}
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
func (r *fakeUserRepo) ExistsByCPFOrEmail(cpf, email string) (bool, error) {
	for _, u := range r.users {
		if u.CPF == cpf || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}
func (r *fakeUserRepo) Update(u *entity.User) error { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) UpdateSenha(id, hash string, mustChange bool) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUsuarioNaoEncontrado
	}
	u.SenhaHash = hash
	u.MustChangePassword = mustChange
	r.senhaCalls = append(r.senhaCalls, hash)
	return nil
}
func (r *fakeUserRepo) List(limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}
func (r *fakeUserRepo) ListByRole(role entity.Role) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}
func (r *fakeUserRepo) Delete(id string) error { delete(r.users, id); return nil }

type fakeTokenRepo struct {
	tokens map[string]*entity.VerificationToken // por identifier
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*entity.VerificationToken{}}
}

func (r *fakeTokenRepo) Create(t *entity.VerificationToken) error {
	r.tokens[t.Identifier] = t
	return nil
}
func (r *fakeTokenRepo) Find(identifier, token string) (*entity.VerificationToken, error) {
	vt := r.tokens[identifier]
	if vt == nil || vt.Token != token {
		return nil, nil
	}
	return vt, nil
}
func (r *fakeTokenRepo) Delete(identifier, token string) error {
	delete(r.tokens, identifier)
	return nil
}

type fakeMailer struct {
	resetLinks []string
	failAll    bool
}

func (m *fakeMailer) SendAccessEmail(ctx context.Context, to, nome, email, senha string) error {
	if m.failAll {
		return errors.New("smtp indisponível")
	}
	return nil
}
func (m *fakeMailer) SendPasswordResetEmail(ctx context.Context, to, nome, link string) error {
	if m.failAll {
		return errors.New("smtp indisponível")
	}
	m.resetLinks = append(m.resetLinks, link)
	return nil
}
func (m *fakeMailer) SendNewsEmail(ctx context.Context, to, nome, titulo, url string) error {
	if m.failAll {
		return errors.New("smtp indisponível")
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var jwtCfg = JWTConfig{Secret: "segredo-de-teste", ExpHours: 8, Issuer: "hub-api-test"}

func userComSenha(t *testing.T, senha string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:        "u1",
		Nome:      "Maria Souza",
		Email:     "maria@empresa.com.br",
		SenhaHash: string(hash),
		Role:      entity.RoleFuncionario,
	}
}

func buildUseCase(users *fakeUserRepo, tokens *fakeTokenRepo, mailer *fakeMailer) *AuthUseCase {
	return NewAuthUseCase(users, tokens, mailer, jwtCfg, "https://portal.empresa.com.br")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_SenhaCorreta(t *testing.T) {
	user := userComSenha(t, "minha-senha")
	uc := buildUseCase(newFakeUserRepo(user), newFakeTokenRepo(), &fakeMailer{})

	out, err := uc.Login(dto.LoginRequest{Email: "maria@empresa.com.br", Password: "minha-senha"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, "funcionario", out.User.Role)
}

func TestLogin_EmailNormalizado(t *testing.T) {
	user := userComSenha(t, "minha-senha")
	uc := buildUseCase(newFakeUserRepo(user), newFakeTokenRepo(), &fakeMailer{})

	out, err := uc.Login(dto.LoginRequest{Email: "  MARIA@EMPRESA.COM.BR ", Password: "minha-senha"})
	require.NoError(t, err)
	assert.Equal(t, "u1", out.User.ID)
}

func TestLogin_SenhaErrada(t *testing.T) {
	user := userComSenha(t, "minha-senha")
	uc := buildUseCase(newFakeUserRepo(user), newFakeTokenRepo(), &fakeMailer{})

	_, err := uc.Login(dto.LoginRequest{Email: "maria@empresa.com.br", Password: "outra"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

// Usuário inexistente e senha errada retornam o mesmo erro.
func TestLogin_UsuarioInexistenteMesmoErro(t *testing.T) {
	uc := buildUseCase(newFakeUserRepo(), newFakeTokenRepo(), &fakeMailer{})

	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@empresa.com.br", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}

func TestLogin_CamposVazios(t *testing.T) {
	uc := buildUseCase(newFakeUserRepo(), newFakeTokenRepo(), &fakeMailer{})
	_, err := uc.Login(dto.LoginRequest{})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Esqueci minha senha
// ──────────────────────────────────────────────────────────────────────────────

func TestForgotPassword_GeraTokenEEnviaLink(t *testing.T) {
	user := userComSenha(t, "minha-senha")
	tokens := newFakeTokenRepo()
	mailer := &fakeMailer{}
	uc := buildUseCase(newFakeUserRepo(user), tokens, mailer)

	err := uc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: "maria@empresa.com.br"})
	require.NoError(t, err)

	vt := tokens.tokens["maria@empresa.com.br"]
	require.NotNil(t, vt, "token deve ter sido persistido")
	assert.Len(t, vt.Token, 64, "32 bytes em hex")

	require.Len(t, mailer.resetLinks, 1)
	assert.Contains(t, mailer.resetLinks[0], vt.Token)
	assert.True(t, strings.HasPrefix(mailer.resetLinks[0], "https://portal.empresa.com.br/redefinir-senha?"))
}

// E-mail não cadastrado: sucesso silencioso, nada enviado.
func TestForgotPassword_EmailDesconhecidoSilencioso(t *testing.T) {
	tokens := newFakeTokenRepo()
	mailer := &fakeMailer{}
	uc := buildUseCase(newFakeUserRepo(), tokens, mailer)

	err := uc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: "ninguem@empresa.com.br"})
	assert.NoError(t, err)
	assert.Empty(t, tokens.tokens)
	assert.Empty(t, mailer.resetLinks)
}

func TestForgotPassword_SegundoPedidoSubstituiToken(t *testing.T) {
	user := userComSenha(t, "minha-senha")
	tokens := newFakeTokenRepo()
	uc := buildUseCase(newFakeUserRepo(user), tokens, &fakeMailer{})

	require.NoError(t, uc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: user.Email}))
	primeiro := tokens.tokens[user.Email].Token
	require.NoError(t, uc.ForgotPassword(context.Background(), dto.ForgotPasswordRequest{Email: user.Email}))

	assert.Len(t, tokens.tokens, 1, "apenas um token vivo por identificador")
	assert.NotEqual(t, primeiro, tokens.tokens[user.Email].Token)
}

// ──────────────────────────────────────────────────────────────────────────────
// Redefinição de senha
// ──────────────────────────────────────────────────────────────────────────────

func TestResetPassword_TokenValido(t *testing.T) {
	user := userComSenha(t, "antiga")
	user.MustChangePassword = true
	users := newFakeUserRepo(user)
	tokens := newFakeTokenRepo()
	uc := buildUseCase(users, tokens, &fakeMailer{})

	require.NoError(t, tokens.Create(&entity.VerificationToken{
		Identifier: user.Email,
		Token:      "tok-123",
		Expires:    time.Now().Add(time.Hour),
	}))

	err := uc.ResetPassword(dto.ResetPasswordRequest{Email: user.Email, Token: "tok-123", NovaSenha: "nova-senha"})
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte("nova-senha")))
	assert.False(t, user.MustChangePassword, "flag de senha provisória deve ser limpa")
	assert.Empty(t, tokens.tokens, "token usado deve ser apagado")
}

func TestResetPassword_TokenExpirado(t *testing.T) {
	user := userComSenha(t, "antiga")
	tokens := newFakeTokenRepo()
	uc := buildUseCase(newFakeUserRepo(user), tokens, &fakeMailer{})

	agora := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	uc.WithClock(func() time.Time { return agora })
	require.NoError(t, tokens.Create(&entity.VerificationToken{
		Identifier: user.Email,
		Token:      "tok-velho",
		Expires:    agora.Add(-time.Minute),
	}))

	err := uc.ResetPassword(dto.ResetPasswordRequest{Email: user.Email, Token: "tok-velho", NovaSenha: "nova-senha"})
	assert.ErrorIs(t, err, domain.ErrTokenInvalido)
	assert.Empty(t, tokens.tokens, "token expirado deve ser apagado na tentativa")
}

func TestResetPassword_TokenErrado(t *testing.T) {
	user := userComSenha(t, "antiga")
	tokens := newFakeTokenRepo()
	uc := buildUseCase(newFakeUserRepo(user), tokens, &fakeMailer{})

	require.NoError(t, tokens.Create(&entity.VerificationToken{
		Identifier: user.Email,
		Token:      "tok-certo",
		Expires:    time.Now().Add(time.Hour),
	}))

	err := uc.ResetPassword(dto.ResetPasswordRequest{Email: user.Email, Token: "tok-errado", NovaSenha: "nova-senha"})
	assert.ErrorIs(t, err, domain.ErrTokenInvalido)
}

func TestResetPassword_SenhaCurta(t *testing.T) {
	uc := buildUseCase(newFakeUserRepo(), newFakeTokenRepo(), &fakeMailer{})
	err := uc.ResetPassword(dto.ResetPasswordRequest{Email: "a@b.com", Token: "t", NovaSenha: "12345"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Troca de senha autenticada
// ──────────────────────────────────────────────────────────────────────────────

func TestChangePassword_LimpaFlagProvisoria(t *testing.T) {
	user := userComSenha(t, "provisoria")
	user.MustChangePassword = true
	users := newFakeUserRepo(user)
	uc := buildUseCase(users, newFakeTokenRepo(), &fakeMailer{})

	err := uc.ChangePassword("u1", dto.ChangePasswordRequest{NovaSenha: "definitiva"})
	require.NoError(t, err)
	assert.False(t, user.MustChangePassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte("definitiva")))
}

func TestChangePassword_SenhaCurta(t *testing.T) {
	uc := buildUseCase(newFakeUserRepo(), newFakeTokenRepo(), &fakeMailer{})
	err := uc.ChangePassword("u1", dto.ChangePasswordRequest{NovaSenha: "abc"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
