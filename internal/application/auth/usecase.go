package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/enviagora/hub-api/internal/application/dto"
	"github.com/enviagora/hub-api/internal/application/ports"
	"github.com/enviagora/hub-api/internal/domain"
	"github.com/enviagora/hub-api/internal/domain/entity"
	"github.com/enviagora/hub-api/internal/domain/repository"
	"github.com/enviagora/hub-api/pkg/jwt"
)

const (
	bcryptCost       = 10
	resetTokenBytes  = 32
	resetTokenExpiry = time.Hour
	minSenhaLen      = 6
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
}

// AuthUseCase casos de uso de autenticação: login, perfil, esqueci/redefinir
// senha e troca de senha.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	tokenRepo   repository.TokenRepository
	mailer      ports.EmailSender
	jwtCfg      JWTConfig
	frontendURL string
	now         func() time.Time
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	mailer ports.EmailSender,
	jwtCfg JWTConfig,
	frontendURL string,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		mailer:      mailer,
		jwtCfg:      jwtCfg,
		frontendURL: frontendURL,
		now:         time.Now,
	}
}

// WithClock troca o relógio; uso em testes.
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// Login verifica email/senha, gera o JWT e retorna token + perfil.
// Credenciais inválidas e usuário inexistente retornam o mesmo erro para não
// revelar quais e-mails existem.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrEntradaInvalida
	}
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrCredenciaisInvalidas
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpHours)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Me devolve o perfil do usuário autenticado.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	return toUserResponse(user), nil
}

// ForgotPassword gera um token de redefinição e envia o link por e-mail.
// Se o e-mail não está cadastrado, retorna sucesso silencioso: a resposta não
// pode revelar quais contas existem.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, in dto.ForgotPasswordRequest) error {
	email := normalizeEmail(in.Email)
	if email == "" {
		return domain.ErrEntradaInvalida
	}
	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("gerar token de redefinição: %w", err)
	}
	token := hex.EncodeToString(raw)

	// Create apaga tokens anteriores do identificador: no máximo um token vivo.
	if err := uc.tokenRepo.Create(&entity.VerificationToken{
		Identifier: email,
		Token:      token,
		Expires:    uc.now().Add(resetTokenExpiry),
	}); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/redefinir-senha?token=%s&email=%s", strings.TrimRight(uc.frontendURL, "/"), token, email)
	return uc.mailer.SendPasswordResetEmail(ctx, user.Email, user.Nome, link)
}

// ResetPassword consome o token recebido por e-mail e grava a nova senha.
// Token expirado é apagado e rejeitado; token usado com sucesso também é
// apagado.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	email := normalizeEmail(in.Email)
	if email == "" || in.Token == "" {
		return domain.ErrEntradaInvalida
	}
	if len(in.NovaSenha) < minSenhaLen {
		return domain.ErrEntradaInvalida
	}

	vt, err := uc.tokenRepo.Find(email, in.Token)
	if err != nil {
		return err
	}
	if vt == nil {
		return domain.ErrTokenInvalido
	}
	if vt.ExpiredAt(uc.now()) {
		_ = uc.tokenRepo.Delete(email, in.Token)
		return domain.ErrTokenInvalido
	}

	user, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUsuarioNaoEncontrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.NovaSenha), bcryptCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdateSenha(user.ID, string(hash), false); err != nil {
		return err
	}
	return uc.tokenRepo.Delete(email, in.Token)
}

// ChangePassword troca a senha do próprio usuário autenticado e limpa a flag
// de senha provisória.
func (uc *AuthUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	if len(in.NovaSenha) < minSenhaLen {
		return domain.ErrEntradaInvalida
	}
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUsuarioNaoEncontrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NovaSenha), bcryptCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdateSenha(user.ID, string(hash), false)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:                  u.ID,
		Nome:                u.Nome,
		CPF:                 u.CPF,
		Email:               u.Email,
		Role:                string(u.Role),
		CodigoHolerite:      u.CodigoHolerite,
		Matricula:           u.Matricula,
		CNPJRegistro:        u.CNPJRegistro,
		Setor:               u.Setor,
		Cargo:               u.Cargo,
		TelefonePessoal:     u.TelefonePessoal,
		TelefoneEmergencial: u.TelefoneEmergencial,
		DataNascimento:      u.DataNascimento,
		Idade:               u.Idade,
		EnderecoCompleto:    u.EnderecoCompleto,
		Bairro:              u.Bairro,
		Cidade:              u.Cidade,
		MustChangePassword:  u.MustChangePassword,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}
