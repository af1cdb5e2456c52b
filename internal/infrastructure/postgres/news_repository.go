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

var _ repository.NewsRepository = (*NewsRepo)(nil)

// NewsRepo implementação do porto NewsRepository sobre PostgreSQL.
type NewsRepo struct {
	pool *pgxpool.Pool
}

// NewNewsRepository constrói o adaptador de persistência para o informativo.
func NewNewsRepository(pool *pgxpool.Pool) *NewsRepo {
	return &NewsRepo{pool: pool}
}

// Create persiste uma nova edição do informativo.
func (r *NewsRepo) Create(n *entity.News) error {
	query := `
		INSERT INTO news (id, titulo, mes_referencia, ano_referencia, pdf_url, capa_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		n.ID, n.Titulo, n.MesReferencia, n.AnoReferencia, n.PDFURL, n.CapaURL, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert news: %w", err)
	}
	return nil
}

// FindByID busca uma edição por ID; (nil, nil) quando não existe.
func (r *NewsRepo) FindByID(id string) (*entity.News, error) {
	query := `
		SELECT id, titulo, mes_referencia, ano_referencia, pdf_url, capa_url, created_at
		FROM news WHERE id = $1`
	var n entity.News
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&n.ID, &n.Titulo, &n.MesReferencia, &n.AnoReferencia, &n.PDFURL, &n.CapaURL, &n.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get news by id: %w", err)
	}
	return &n, nil
}

// List devolve as edições ordenadas por referência, mais recentes primeiro.
func (r *NewsRepo) List() ([]*entity.News, error) {
	query := `
		SELECT id, titulo, mes_referencia, ano_referencia, pdf_url, capa_url, created_at
		FROM news ORDER BY ano_referencia DESC, mes_referencia DESC, created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list news: %w", err)
	}
	defer rows.Close()

	var items []*entity.News
	for rows.Next() {
		var n entity.News
		if err := rows.Scan(&n.ID, &n.Titulo, &n.MesReferencia, &n.AnoReferencia, &n.PDFURL, &n.CapaURL, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan news: %w", err)
		}
		items = append(items, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate news: %w", err)
	}
	return items, nil
}

// Delete remove a edição.
func (r *NewsRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
