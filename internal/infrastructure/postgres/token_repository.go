package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enviagora/hub-api/internal/domain/entity"
	"github.com/enviagora/hub-api/internal/domain/repository"
)

var _ repository.TokenRepository = (*TokenRepo)(nil)

// TokenRepo implementação do porto TokenRepository sobre PostgreSQL.
type TokenRepo struct {
	pool *pgxpool.Pool
}

// NewTokenRepository constrói o adaptador de persistência para tokens de redefinição.
func NewTokenRepository(pool *pgxpool.Pool) *TokenRepo {
	return &TokenRepo{pool: pool}
}

// Create grava o token, apagando na mesma transação os anteriores do identificador.
func (r *TokenRepo) Create(t *entity.VerificationToken) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin token tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM verification_tokens WHERE identifier = $1`, t.Identifier); err != nil {
		return fmt.Errorf("delete previous tokens: %w", err)
	}
	query := `INSERT INTO verification_tokens (identifier, token, expires) VALUES ($1, $2, $3)`
	if _, err := tx.Exec(ctx, query, t.Identifier, t.Token, t.Expires); err != nil {
		return fmt.Errorf("insert token: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit token tx: %w", err)
	}
	return nil
}

// Find busca o token do identificador; (nil, nil) quando não existe.
func (r *TokenRepo) Find(identifier, token string) (*entity.VerificationToken, error) {
	query := `SELECT identifier, token, expires FROM verification_tokens WHERE identifier = $1 AND token = $2`
	var t entity.VerificationToken
	err := r.pool.QueryRow(context.Background(), query, identifier, token).Scan(&t.Identifier, &t.Token, &t.Expires)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get token: %w", err)
	}
	return &t, nil
}

// Delete remove o token; não é erro se ele já não existe.
func (r *TokenRepo) Delete(identifier, token string) error {
	query := `DELETE FROM verification_tokens WHERE identifier = $1 AND token = $2`
	if _, err := r.pool.Exec(context.Background(), query, identifier, token); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
