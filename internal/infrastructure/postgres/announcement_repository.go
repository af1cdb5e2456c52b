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

var _ repository.AnnouncementRepository = (*AnnouncementRepo)(nil)

// AnnouncementRepo implementação do porto AnnouncementRepository sobre PostgreSQL.
type AnnouncementRepo struct {
	pool *pgxpool.Pool
}

// NewAnnouncementRepository constrói o adaptador de persistência para avisos.
func NewAnnouncementRepository(pool *pgxpool.Pool) *AnnouncementRepo {
	return &AnnouncementRepo{pool: pool}
}

// Create persiste um novo aviso.
func (r *AnnouncementRepo) Create(a *entity.Announcement) error {
	query := `
		INSERT INTO announcements (id, titulo, conteudo, tipo, admin_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Titulo, a.Conteudo, a.Tipo, nullIfEmpty(a.AdminID), a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert announcement: %w", err)
	}
	return nil
}

// FindByID busca um aviso por ID; (nil, nil) quando não existe.
func (r *AnnouncementRepo) FindByID(id string) (*entity.Announcement, error) {
	query := `
		SELECT id, titulo, conteudo, tipo, COALESCE(admin_id::text, ''), created_at, updated_at
		FROM announcements WHERE id = $1`
	var a entity.Announcement
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Titulo, &a.Conteudo, &a.Tipo, &a.AdminID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get announcement by id: %w", err)
	}
	return &a, nil
}

// List devolve todos os avisos, mais recentes primeiro.
func (r *AnnouncementRepo) List() ([]*entity.Announcement, error) {
	query := `
		SELECT id, titulo, conteudo, tipo, COALESCE(admin_id::text, ''), created_at, updated_at
		FROM announcements ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list announcements: %w", err)
	}
	defer rows.Close()

	var items []*entity.Announcement
	for rows.Next() {
		var a entity.Announcement
		if err := rows.Scan(&a.ID, &a.Titulo, &a.Conteudo, &a.Tipo, &a.AdminID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan announcement: %w", err)
		}
		items = append(items, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate announcements: %w", err)
	}
	return items, nil
}

// Update grava título, conteúdo e tipo do aviso.
func (r *AnnouncementRepo) Update(a *entity.Announcement) error {
	query := `
		UPDATE announcements SET titulo = $2, conteudo = $3, tipo = $4, updated_at = now()
		WHERE id = $1`
	tag, err := r.pool.Exec(context.Background(), query, a.ID, a.Titulo, a.Conteudo, a.Tipo)
	if err != nil {
		return fmt.Errorf("update announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Delete remove o aviso.
func (r *AnnouncementRepo) Delete(id string) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}
