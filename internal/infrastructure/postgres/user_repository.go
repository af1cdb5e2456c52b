package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enviagora/hub-api/internal/domain"
	"github.com/enviagora/hub-api/internal/domain/entity"
	"github.com/enviagora/hub-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

const userColumns = `id, nome, cpf, email, senha_hash, role, codigo_holerite, matricula,
	cnpj_registro, setor, cargo, telefone_pessoal, telefone_emergencial,
	data_nascimento, idade, endereco_completo, bairro, cidade,
	must_change_password, created_at, updated_at`

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository constrói o adaptador de persistência para colaboradores.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste um novo colaborador.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, nome, cpf, email, senha_hash, role, codigo_holerite, matricula,
			cnpj_registro, setor, cargo, telefone_pessoal, telefone_emergencial,
			data_nascimento, idade, endereco_completo, bairro, cidade,
			must_change_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Nome, user.CPF, user.Email, user.SenhaHash, user.Role,
		user.CodigoHolerite, user.Matricula, user.CNPJRegistro, user.Setor, user.Cargo,
		user.TelefonePessoal, user.TelefoneEmergencial, user.DataNascimento, user.Idade,
		user.EnderecoCompleto, user.Bairro, user.Cidade, user.MustChangePassword,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID busca um colaborador por ID; (nil, nil) quando não existe.
func (r *UserRepo) FindByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.queryOne(query, id)
}

// FindByEmail busca um colaborador pelo e-mail normalizado.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return r.queryOne(query, email)
}

// FindByCodigoHolerite localiza o dono de um código extraído de holerite.
func (r *UserRepo) FindByCodigoHolerite(codigo string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE codigo_holerite = $1 AND codigo_holerite <> '' LIMIT 1`
	return r.queryOne(query, codigo)
}

// ExistsByCPFOrEmail informa se já há cadastro com o CPF ou o e-mail dados.
func (r *UserRepo) ExistsByCPFOrEmail(cpf, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE cpf = $1 OR email = $2)`
	var exists bool
	if err := r.pool.QueryRow(context.Background(), query, cpf, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}

// Update grava o estado completo do colaborador.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users SET
			nome = $2, cpf = $3, email = $4, role = $5, codigo_holerite = $6,
			matricula = $7, cnpj_registro = $8, setor = $9, cargo = $10,
			telefone_pessoal = $11, telefone_emergencial = $12, data_nascimento = $13,
			idade = $14, endereco_completo = $15, bairro = $16, cidade = $17,
			updated_at = now()
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		user.ID, user.Nome, user.CPF, user.Email, user.Role, user.CodigoHolerite,
		user.Matricula, user.CNPJRegistro, user.Setor, user.Cargo,
		user.TelefonePessoal, user.TelefoneEmergencial, user.DataNascimento,
		user.Idade, user.EnderecoCompleto, user.Bairro, user.Cidade,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNaoEncontrado
	}
	return nil
}

// UpdateSenha troca o hash de senha e a flag de troca obrigatória.
func (r *UserRepo) UpdateSenha(id, senhaHash string, mustChange bool) error {
	query := `UPDATE users SET senha_hash = $2, must_change_password = $3, updated_at = now() WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query, id, senhaHash, mustChange)
	if err != nil {
		return fmt.Errorf("update user password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNaoEncontrado
	}
	return nil
}

// List devolve colaboradores paginados, mais recentes primeiro.
func (r *UserRepo) List(limit, offset int) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

// ListByRole devolve todos os colaboradores com o papel dado.
func (r *UserRepo) ListByRole(role entity.Role) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY nome`
	rows, err := r.pool.Query(context.Background(), query, role)
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

// Delete remove o colaborador e, por cascata, seus holerites.
func (r *UserRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUsuarioNaoEncontrado
	}
	return nil
}

func (r *UserRepo) queryOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(userFields(&u)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

func scanUsers(rows pgx.Rows) ([]*entity.User, error) {
	var users []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(userFields(&u)...); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

// userFields devolve os destinos de Scan na mesma ordem de userColumns.
func userFields(u *entity.User) []any {
	return []any{
		&u.ID, &u.Nome, &u.CPF, &u.Email, &u.SenhaHash, &u.Role,
		&u.CodigoHolerite, &u.Matricula, &u.CNPJRegistro, &u.Setor, &u.Cargo,
		&u.TelefonePessoal, &u.TelefoneEmergencial, &u.DataNascimento, &u.Idade,
		&u.EnderecoCompleto, &u.Bairro, &u.Cidade, &u.MustChangePassword,
		&u.CreatedAt, &u.UpdatedAt,
	}
}
