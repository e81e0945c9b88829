package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/store"
	"github.com/renato-dev-nws/autoshop-api/internal/infrastructure/database"
)

// PostgresStoreRepository implementa a interface store.Repository usando
// PostgreSQL
type PostgresStoreRepository struct {
	db *database.PostgresDB
}

// NewPostgresStoreRepository cria uma nova instância de
// PostgresStoreRepository
func NewPostgresStoreRepository(db *database.PostgresDB) *PostgresStoreRepository {
	return &PostgresStoreRepository{db: db}
}

const storeColumns = "id, name, cnpj, address, phone, parent_id, created_at, updated_at"

// Create implementa store.Repository.Create
func (r *PostgresStoreRepository) Create(ctx context.Context, s *store.Store) error {
	query := `
		INSERT INTO stores (id, name, cnpj, address, phone, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Pool().Exec(ctx, query,
		s.ID,
		s.Name,
		s.CNPJ,
		s.Address,
		s.Phone,
		s.ParentID,
		s.CreatedAt,
		s.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return store.ErrCNPJDuplicate
		}
		return fmt.Errorf("falha ao inserir loja: %w", err)
	}

	return nil
}

// FindByID implementa store.Repository.FindByID. Matriz e filiais diretas
// vêm carregadas.
func (r *PostgresStoreRepository) FindByID(ctx context.Context, id string) (*store.Store, error) {
	s, err := r.findStoreByQuery(ctx,
		"SELECT "+storeColumns+" FROM stores WHERE id = $1 AND deleted_at IS NULL", id)
	if err != nil {
		return nil, err
	}

	if s.ParentID != nil {
		parent, err := r.findStoreByQuery(ctx,
			"SELECT "+storeColumns+" FROM stores WHERE id = $1 AND deleted_at IS NULL", *s.ParentID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		s.Parent = parent
	}

	children, err := r.FindChildren(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Children = children

	return s, nil
}

// FindByCNPJ implementa store.Repository.FindByCNPJ
func (r *PostgresStoreRepository) FindByCNPJ(ctx context.Context, cnpj string) (*store.Store, error) {
	return r.findStoreByQuery(ctx,
		"SELECT "+storeColumns+" FROM stores WHERE cnpj = $1 AND deleted_at IS NULL", cnpj)
}

func (r *PostgresStoreRepository) findStoreByQuery(ctx context.Context, query string, args ...interface{}) (*store.Store, error) {
	s := &store.Store{}

	err := r.db.Pool().QueryRow(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.CNPJ,
		&s.Address,
		&s.Phone,
		&s.ParentID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("falha ao buscar loja: %w", err)
	}

	return s, nil
}

// FindAll implementa store.Repository.FindAll
func (r *PostgresStoreRepository) FindAll(ctx context.Context) ([]*store.Store, error) {
	query := "SELECT " + storeColumns + " FROM stores WHERE deleted_at IS NULL ORDER BY name ASC"

	stores, err := r.scanStores(ctx, query)
	if err != nil {
		return nil, err
	}

	// Resolve matriz e filiais em memória; o conjunto completo já está
	// carregado
	byID := make(map[string]*store.Store, len(stores))
	for _, s := range stores {
		byID[s.ID] = s
	}
	for _, s := range stores {
		if s.ParentID != nil {
			if parent, ok := byID[*s.ParentID]; ok {
				s.Parent = parent
				parent.Children = append(parent.Children, s)
			}
		}
	}

	return stores, nil
}

// FindChildren implementa store.Repository.FindChildren
func (r *PostgresStoreRepository) FindChildren(ctx context.Context, parentID string) ([]*store.Store, error) {
	query := "SELECT " + storeColumns + " FROM stores WHERE parent_id = $1 AND deleted_at IS NULL ORDER BY name ASC"
	return r.scanStores(ctx, query, parentID)
}

func (r *PostgresStoreRepository) scanStores(ctx context.Context, query string, args ...interface{}) ([]*store.Store, error) {
	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar lojas: %w", err)
	}
	defer rows.Close()

	var stores []*store.Store
	for rows.Next() {
		s := &store.Store{}
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.CNPJ,
			&s.Address,
			&s.Phone,
			&s.ParentID,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler loja: %w", err)
		}
		stores = append(stores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return stores, nil
}

// CountChildren implementa store.Repository.CountChildren
func (r *PostgresStoreRepository) CountChildren(ctx context.Context, parentID string) (int, error) {
	var count int
	err := r.db.Pool().QueryRow(ctx,
		"SELECT COUNT(*) FROM stores WHERE parent_id = $1 AND deleted_at IS NULL", parentID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar filiais: %w", err)
	}
	return count, nil
}

// Update implementa store.Repository.Update
func (r *PostgresStoreRepository) Update(ctx context.Context, s *store.Store) error {
	query := `
		UPDATE stores
		SET name = $1, cnpj = $2, address = $3, phone = $4, parent_id = $5, updated_at = $6
		WHERE id = $7 AND deleted_at IS NULL
	`

	result, err := r.db.Pool().Exec(ctx, query,
		s.Name,
		s.CNPJ,
		s.Address,
		s.Phone,
		s.ParentID,
		time.Now(),
		s.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return store.ErrCNPJDuplicate
		}
		return fmt.Errorf("falha ao atualizar loja: %w", err)
	}

	if result.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}

// SoftDelete implementa store.Repository.SoftDelete
func (r *PostgresStoreRepository) SoftDelete(ctx context.Context, id string) error {
	result, err := r.db.Pool().Exec(ctx,
		"UPDATE stores SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL", time.Now(), id)
	if err != nil {
		return fmt.Errorf("falha ao remover loja: %w", err)
	}

	if result.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	return nil
}

// Exists verifica se uma loja existe pelo ID; usado pelo serviço de
// usuários
func (r *PostgresStoreRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.Pool().QueryRow(ctx,
		"SELECT EXISTS(SELECT 1 FROM stores WHERE id = $1 AND deleted_at IS NULL)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar existência da loja: %w", err)
	}
	return exists, nil
}
