package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/user"
	"github.com/renato-dev-nws/autoshop-api/internal/infrastructure/database"
)

// PostgresUserRepository implementa a interface user.Repository usando
// PostgreSQL
type PostgresUserRepository struct {
	db *database.PostgresDB
}

// NewPostgresUserRepository cria uma nova instância de PostgresUserRepository
func NewPostgresUserRepository(db *database.PostgresDB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = "id, name, email, password, role, store_id, active, created_at, updated_at"

// Create implementa user.Repository.Create
func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, name, email, password, role, store_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Pool().Exec(ctx, query,
		u.ID,
		u.Name,
		u.Email,
		u.Password,
		u.Role,
		u.StoreID,
		u.Active,
		u.CreatedAt,
		u.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrEmailDuplicate
		}
		return fmt.Errorf("falha ao inserir usuário: %w", err)
	}

	return nil
}

// FindByID implementa user.Repository.FindByID
func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.findUserByQuery(ctx,
		"SELECT "+userColumns+" FROM users WHERE id = $1 AND deleted_at IS NULL", id)
}

// FindByEmail implementa user.Repository.FindByEmail
func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findUserByQuery(ctx,
		"SELECT "+userColumns+" FROM users WHERE email = $1 AND deleted_at IS NULL", email)
}

func (r *PostgresUserRepository) findUserByQuery(ctx context.Context, query string, args ...interface{}) (*user.User, error) {
	u := &user.User{}

	err := r.db.Pool().QueryRow(ctx, query, args...).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Password,
		&u.Role,
		&u.StoreID,
		&u.Active,
		&u.CreatedAt,
		&u.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	return u, nil
}

// FindAll implementa user.Repository.FindAll
func (r *PostgresUserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE deleted_at IS NULL ORDER BY name ASC"

	rows, err := r.db.Pool().Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u := &user.User{}
		err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.Password,
			&u.Role,
			&u.StoreID,
			&u.Active,
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler usuário: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return users, nil
}

// Update implementa user.Repository.Update
func (r *PostgresUserRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password = $3, role = $4, store_id = $5, active = $6, updated_at = $7
		WHERE id = $8 AND deleted_at IS NULL
	`

	result, err := r.db.Pool().Exec(ctx, query,
		u.Name,
		u.Email,
		u.Password,
		u.Role,
		u.StoreID,
		u.Active,
		time.Now(),
		u.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrEmailDuplicate
		}
		return fmt.Errorf("falha ao atualizar usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}

// SoftDelete implementa user.Repository.SoftDelete
func (r *PostgresUserRepository) SoftDelete(ctx context.Context, id string) error {
	result, err := r.db.Pool().Exec(ctx,
		"UPDATE users SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL", time.Now(), id)
	if err != nil {
		return fmt.Errorf("falha ao remover usuário: %w", err)
	}

	if result.RowsAffected() == 0 {
		return user.ErrNotFound
	}

	return nil
}
