package colaborador

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/enviagora/hub-api/internal/application/dto"
	"github.com/enviagora/hub-api/internal/application/ports"
	"github.com/enviagora/hub-api/internal/domain"
	"github.com/enviagora/hub-api/internal/domain/entity"
	"github.com/enviagora/hub-api/internal/domain/repository"
	"github.com/enviagora/hub-api/pkg/logger"
	"github.com/enviagora/hub-api/pkg/password"
)

const (
	bcryptCost         = 10
	senhaProvisoriaLen = 10
)

// ColaboradorUseCase casos de uso de gestão de colaboradores. Toda mutação
// passa pela hierarquia de papéis antes de tocar a persistência.
type ColaboradorUseCase struct {
	userRepo repository.UserRepository
	mailer   ports.EmailSender
	log      *logger.Logger
	now      func() time.Time
}

// NewColaboradorUseCase constrói o caso de uso de colaboradores.
func NewColaboradorUseCase(userRepo repository.UserRepository, mailer ports.EmailSender, log *logger.Logger) *ColaboradorUseCase {
	return &ColaboradorUseCase{userRepo: userRepo, mailer: mailer, log: log, now: time.Now}
}

// WithClock troca o relógio; uso em testes.
func (uc *ColaboradorUseCase) WithClock(now func() time.Time) *ColaboradorUseCase {
	uc.now = now
	return uc
}

// Create cadastra um colaborador: valida hierarquia e duplicidade, gera senha
// provisória, persiste e envia as credenciais por e-mail. Se o envio falha, o
// cadastro é desfeito: um colaborador sem e-mail de acesso ficaria trancado
// para fora com uma senha que ninguém conhece.
func (uc *ColaboradorUseCase) Create(ctx context.Context, atorRole entity.Role, in dto.CreateColaboradorRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if role == "" {
		// papel omitido entra como funcionario
		role = entity.RoleFuncionario
	}
	if err := domain.AuthorizeMutation(atorRole, role); err != nil {
		return nil, err
	}
	nome := strings.TrimSpace(in.Nome)
	cpf := strings.TrimSpace(in.CPF)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if nome == "" || cpf == "" || email == "" || !role.Valid() {
		return nil, domain.ErrEntradaInvalida
	}

	existe, err := uc.userRepo.ExistsByCPFOrEmail(cpf, email)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, domain.ErrDuplicado
	}

	senha, err := password.Provisoria(senhaProvisoriaLen)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcryptCost)
	if err != nil {
		return nil, err
	}

	agora := uc.now()
	user := &entity.User{
		ID:                  uuid.New().String(),
		Nome:                nome,
		CPF:                 cpf,
		Email:               email,
		SenhaHash:           string(hash),
		Role:                role,
		CodigoHolerite:      strings.TrimSpace(in.CodigoHolerite),
		Matricula:           in.Matricula,
		CNPJRegistro:        in.CNPJRegistro,
		Setor:               in.Setor,
		Cargo:               in.Cargo,
		TelefonePessoal:     in.TelefonePessoal,
		TelefoneEmergencial: in.TelefoneEmergencial,
		DataNascimento:      in.DataNascimento,
		Idade:               in.Idade,
		EnderecoCompleto:    in.EnderecoCompleto,
		Bairro:              in.Bairro,
		Cidade:              in.Cidade,
		MustChangePassword:  true,
		CreatedAt:           agora,
		UpdatedAt:           agora,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	if err := uc.mailer.SendAccessEmail(ctx, user.Email, user.Nome, user.Email, senha); err != nil {
		// ação compensatória: sem o e-mail a conta nasce inacessível
		if delErr := uc.userRepo.Delete(user.ID); delErr != nil {
			uc.log.Error().Err(delErr).Str("user_id", user.ID).Msg("falha ao desfazer cadastro após erro de e-mail")
		}
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update edita um colaborador. A hierarquia é checada contra o papel atual do
// alvo e, quando a edição troca o papel, também contra o papel pretendido.
func (uc *ColaboradorUseCase) Update(atorRole entity.Role, id string, in dto.UpdateColaboradorRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	if err := domain.AuthorizeMutation(atorRole, user.Role); err != nil {
		return nil, err
	}
	if in.Role != "" && entity.Role(in.Role) != user.Role {
		novoRole := entity.Role(in.Role)
		if !novoRole.Valid() {
			return nil, domain.ErrEntradaInvalida
		}
		if err := domain.AuthorizeMutation(atorRole, novoRole); err != nil {
			return nil, err
		}
		user.Role = novoRole
	}

	applyIfSet(&user.Nome, in.Nome)
	applyIfSet(&user.CPF, in.CPF)
	if in.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	applyIfSet(&user.CodigoHolerite, strings.TrimSpace(in.CodigoHolerite))
	applyIfSet(&user.Matricula, in.Matricula)
	applyIfSet(&user.CNPJRegistro, in.CNPJRegistro)
	applyIfSet(&user.Setor, in.Setor)
	applyIfSet(&user.Cargo, in.Cargo)
	applyIfSet(&user.TelefonePessoal, in.TelefonePessoal)
	applyIfSet(&user.TelefoneEmergencial, in.TelefoneEmergencial)
	applyIfSet(&user.DataNascimento, in.DataNascimento)
	applyIfSet(&user.EnderecoCompleto, in.EnderecoCompleto)
	applyIfSet(&user.Bairro, in.Bairro)
	applyIfSet(&user.Cidade, in.Cidade)
	if in.Idade > 0 {
		user.Idade = in.Idade
	}
	user.UpdatedAt = uc.now()

	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// SetSenha define uma senha nova para o colaborador, respeitando a hierarquia.
// A troca obrigatória é desligada: a senha foi escolhida por quem mandou.
func (uc *ColaboradorUseCase) SetSenha(atorRole entity.Role, id, novaSenha string) error {
	if len(novaSenha) < 6 {
		return fmt.Errorf("%w: senha deve ter pelo menos 6 caracteres", domain.ErrEntradaInvalida)
	}
	user, err := uc.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUsuarioNaoEncontrado
	}
	if err := domain.AuthorizeMutation(atorRole, user.Role); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(novaSenha), bcryptCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdateSenha(user.ID, string(hash), false)
}

// Delete remove um colaborador respeitando a hierarquia.
func (uc *ColaboradorUseCase) Delete(atorRole entity.Role, id string) error {
	user, err := uc.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUsuarioNaoEncontrado
	}
	if err := domain.AuthorizeMutation(atorRole, user.Role); err != nil {
		return err
	}
	return uc.userRepo.Delete(id)
}

// Get devolve um colaborador por ID.
func (uc *ColaboradorUseCase) Get(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	return toUserResponse(user), nil
}

// List devolve colaboradores paginados.
func (uc *ColaboradorUseCase) List(page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// ResendProvisional gera uma nova senha provisória e reenvia o e-mail de
// acesso. Diferente do Create, a falha de envio não desfaz nada: a conta já
// existia antes.
func (uc *ColaboradorUseCase) ResendProvisional(ctx context.Context, atorRole entity.Role, id string) error {
	user, err := uc.userRepo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUsuarioNaoEncontrado
	}
	if err := domain.AuthorizeMutation(atorRole, user.Role); err != nil {
		return err
	}

	senha, err := password.Provisoria(senhaProvisoriaLen)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcryptCost)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdateSenha(user.ID, string(hash), true); err != nil {
		return err
	}
	return uc.mailer.SendAccessEmail(ctx, user.Email, user.Nome, user.Email, senha)
}

func applyIfSet(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
