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

var _ repository.HoleriteRepository = (*HoleriteRepo)(nil)

// HoleriteRepo implementação do porto HoleriteRepository sobre PostgreSQL.
type HoleriteRepo struct {
	pool *pgxpool.Pool
}

// NewHoleriteRepository constrói o adaptador de persistência para holerites.
func NewHoleriteRepository(pool *pgxpool.Pool) *HoleriteRepo {
	return &HoleriteRepo{pool: pool}
}

// Create persiste os metadados de um holerite ingerido.
func (r *HoleriteRepo) Create(h *entity.Holerite) error {
	query := `
		INSERT INTO holerites (id, user_id, cpf, competencia, storage_path, original_filename, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		h.ID, h.UserID, h.CPF, h.Competencia, h.StoragePath, h.OriginalFilename, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert holerite: %w", err)
	}
	return nil
}

// FindByID retorna o holerite e o codigo_holerite do dono; (nil, "", nil) se não existe.
func (r *HoleriteRepo) FindByID(id string) (*entity.Holerite, string, error) {
	query := `
		SELECT h.id, h.user_id, h.cpf, h.competencia, h.storage_path, h.original_filename, h.created_at,
			u.codigo_holerite
		FROM holerites h
		JOIN users u ON u.id = h.user_id
		WHERE h.id = $1`
	var (
		h           entity.Holerite
		ownerCodigo string
	)
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&h.ID, &h.UserID, &h.CPF, &h.Competencia, &h.StoragePath, &h.OriginalFilename, &h.CreatedAt,
		&ownerCodigo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("get holerite by id: %w", err)
	}
	return &h, ownerCodigo, nil
}

// ExistsByUserAndCompetencia informa se o colaborador já tem holerite na competência.
func (r *HoleriteRepo) ExistsByUserAndCompetencia(userID, competencia string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM holerites WHERE user_id = $1 AND competencia = $2)`
	var exists bool
	if err := r.pool.QueryRow(context.Background(), query, userID, competencia).Scan(&exists); err != nil {
		return false, fmt.Errorf("check holerite exists: %w", err)
	}
	return exists, nil
}

// ListAll devolve holerites paginados, mais recentes primeiro.
func (r *HoleriteRepo) ListAll(limit, offset int) ([]*entity.Holerite, error) {
	query := `
		SELECT id, user_id, cpf, competencia, storage_path, original_filename, created_at
		FROM holerites ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list holerites: %w", err)
	}
	defer rows.Close()
	return scanHolerites(rows)
}

// ListByUser devolve os holerites do colaborador, competências recentes primeiro.
func (r *HoleriteRepo) ListByUser(userID string) ([]*entity.Holerite, error) {
	query := `
		SELECT id, user_id, cpf, competencia, storage_path, original_filename, created_at
		FROM holerites WHERE user_id = $1 ORDER BY competencia DESC, created_at DESC`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list holerites by user: %w", err)
	}
	defer rows.Close()
	return scanHolerites(rows)
}

// Update grava competência e arquivo atuais do holerite.
func (r *HoleriteRepo) Update(h *entity.Holerite) error {
	query := `
		UPDATE holerites SET competencia = $2, storage_path = $3, original_filename = $4
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query,
		h.ID, h.Competencia, h.StoragePath, h.OriginalFilename,
	)
	if err != nil {
		return fmt.Errorf("update holerite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Delete remove os metadados do holerite.
func (r *HoleriteRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM holerites WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete holerite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Count devolve o total de holerites cadastrados.
func (r *HoleriteRepo) Count() (int64, error) {
	var total int64
	if err := r.pool.QueryRow(context.Background(), `SELECT count(*) FROM holerites`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count holerites: %w", err)
	}
	return total, nil
}

func scanHolerites(rows pgx.Rows) ([]*entity.Holerite, error) {
	var items []*entity.Holerite
	for rows.Next() {
		var h entity.Holerite
		if err := rows.Scan(&h.ID, &h.UserID, &h.CPF, &h.Competencia, &h.StoragePath, &h.OriginalFilename, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan holerite: %w", err)
		}
		items = append(items, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate holerites: %w", err)
	}
	return items, nil
}
