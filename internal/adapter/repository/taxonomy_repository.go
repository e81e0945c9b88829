package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/taxonomy"
	"github.com/renato-dev-nws/autoshop-api/internal/infrastructure/database"
)

// PostgresCategoryRepository implementa taxonomy.CategoryRepository
type PostgresCategoryRepository struct {
	db *database.PostgresDB
}

// NewPostgresCategoryRepository cria uma nova instância de
// PostgresCategoryRepository
func NewPostgresCategoryRepository(db *database.PostgresDB) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{db: db}
}

const categoryColumns = "id, name, icon, active, created_at, updated_at"

// Create implementa taxonomy.CategoryRepository.Create
func (r *PostgresCategoryRepository) Create(ctx context.Context, c *taxonomy.Category) error {
	query := `
		INSERT INTO categories (id, name, icon, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Pool().Exec(ctx, query, c.ID, c.Name, nullIfEmpty(c.Icon), c.Active, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return taxonomy.ErrCategoryDuplicate
		}
		return fmt.Errorf("falha ao inserir categoria: %w", err)
	}

	return nil
}

// FindByID implementa taxonomy.CategoryRepository.FindByID
func (r *PostgresCategoryRepository) FindByID(ctx context.Context, id string) (*taxonomy.Category, error) {
	return r.findCategoryByQuery(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE id = $1 AND deleted_at IS NULL", id)
}

// FindByName implementa taxonomy.CategoryRepository.FindByName
func (r *PostgresCategoryRepository) FindByName(ctx context.Context, name string) (*taxonomy.Category, error) {
	return r.findCategoryByQuery(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE name = $1 AND deleted_at IS NULL", name)
}

func (r *PostgresCategoryRepository) findCategoryByQuery(ctx context.Context, query string, args ...interface{}) (*taxonomy.Category, error) {
	c := &taxonomy.Category{}
	var icon *string

	err := r.db.Pool().QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.Name, &icon, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxonomy.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("falha ao buscar categoria: %w", err)
	}

	if icon != nil {
		c.Icon = *icon
	}
	return c, nil
}

// FindAll implementa taxonomy.CategoryRepository.FindAll
func (r *PostgresCategoryRepository) FindAll(ctx context.Context) ([]*taxonomy.Category, error) {
	return r.scanCategories(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE deleted_at IS NULL ORDER BY name ASC")
}

// FindActive implementa taxonomy.CategoryRepository.FindActive
func (r *PostgresCategoryRepository) FindActive(ctx context.Context) ([]*taxonomy.Category, error) {
	return r.scanCategories(ctx,
		"SELECT "+categoryColumns+" FROM categories WHERE active = true AND deleted_at IS NULL ORDER BY name ASC")
}

func (r *PostgresCategoryRepository) scanCategories(ctx context.Context, query string, args ...interface{}) ([]*taxonomy.Category, error) {
	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar categorias: %w", err)
	}
	defer rows.Close()

	var categories []*taxonomy.Category
	for rows.Next() {
		c := &taxonomy.Category{}
		var icon *string
		if err := rows.Scan(&c.ID, &c.Name, &icon, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler categoria: %w", err)
		}
		if icon != nil {
			c.Icon = *icon
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return categories, nil
}

// Update implementa taxonomy.CategoryRepository.Update
func (r *PostgresCategoryRepository) Update(ctx context.Context, c *taxonomy.Category) error {
	query := `
		UPDATE categories
		SET name = $1, icon = $2, active = $3, updated_at = $4
		WHERE id = $5 AND deleted_at IS NULL
	`

	result, err := r.db.Pool().Exec(ctx, query, c.Name, nullIfEmpty(c.Icon), c.Active, time.Now(), c.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return taxonomy.ErrCategoryDuplicate
		}
		return fmt.Errorf("falha ao atualizar categoria: %w", err)
	}

	if result.RowsAffected() == 0 {
		return taxonomy.ErrCategoryNotFound
	}

	return nil
}

// SoftDelete implementa taxonomy.CategoryRepository.SoftDelete
func (r *PostgresCategoryRepository) SoftDelete(ctx context.Context, id string) error {
	result, err := r.db.Pool().Exec(ctx,
		"UPDATE categories SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL", time.Now(), id)
	if err != nil {
		return fmt.Errorf("falha ao remover categoria: %w", err)
	}

	if result.RowsAffected() == 0 {
		return taxonomy.ErrCategoryNotFound
	}

	return nil
}

// PostgresBrandRepository implementa taxonomy.BrandRepository
type PostgresBrandRepository struct {
	db *database.PostgresDB
}

// NewPostgresBrandRepository cria uma nova instância de
// PostgresBrandRepository
func NewPostgresBrandRepository(db *database.PostgresDB) *PostgresBrandRepository {
	return &PostgresBrandRepository{db: db}
}

const brandColumns = "id, name, brand_fipe_id, logo, created_at, updated_at"

// Create implementa taxonomy.BrandRepository.Create
func (r *PostgresBrandRepository) Create(ctx context.Context, b *taxonomy.Brand) error {
	query := `
		INSERT INTO brands (id, name, brand_fipe_id, logo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Pool().Exec(ctx, query,
		b.ID, b.Name, nullIfEmpty(b.BrandFipeID), nullIfEmpty(b.Logo), b.CreatedAt, b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return taxonomy.ErrBrandDuplicate
		}
		return fmt.Errorf("falha ao inserir marca: %w", err)
	}

	return nil
}

// FindByID implementa taxonomy.BrandRepository.FindByID
func (r *PostgresBrandRepository) FindByID(ctx context.Context, id string) (*taxonomy.Brand, error) {
	return r.findBrandByQuery(ctx,
		"SELECT "+brandColumns+" FROM brands WHERE id = $1 AND deleted_at IS NULL", id)
}

// FindByName implementa taxonomy.BrandRepository.FindByName
func (r *PostgresBrandRepository) FindByName(ctx context.Context, name string) (*taxonomy.Brand, error) {
	return r.findBrandByQuery(ctx,
		"SELECT "+brandColumns+" FROM brands WHERE name = $1 AND deleted_at IS NULL", name)
}

func (r *PostgresBrandRepository) findBrandByQuery(ctx context.Context, query string, args ...interface{}) (*taxonomy.Brand, error) {
	b := &taxonomy.Brand{}
	var fipeID, logo *string

	err := r.db.Pool().QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.Name, &fipeID, &logo, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxonomy.ErrBrandNotFound
		}
		return nil, fmt.Errorf("falha ao buscar marca: %w", err)
	}

	if fipeID != nil {
		b.BrandFipeID = *fipeID
	}
	if logo != nil {
		b.Logo = *logo
	}
	return b, nil
}

// FindAll implementa taxonomy.BrandRepository.FindAll
func (r *PostgresBrandRepository) FindAll(ctx context.Context) ([]*taxonomy.Brand, error) {
	rows, err := r.db.Pool().Query(ctx,
		"SELECT "+brandColumns+" FROM brands WHERE deleted_at IS NULL ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("falha ao listar marcas: %w", err)
	}
	defer rows.Close()

	var brands []*taxonomy.Brand
	for rows.Next() {
		b := &taxonomy.Brand{}
		var fipeID, logo *string
		if err := rows.Scan(&b.ID, &b.Name, &fipeID, &logo, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler marca: %w", err)
		}
		if fipeID != nil {
			b.BrandFipeID = *fipeID
		}
		if logo != nil {
			b.Logo = *logo
		}
		brands = append(brands, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return brands, nil
}

// Update implementa taxonomy.BrandRepository.Update
func (r *PostgresBrandRepository) Update(ctx context.Context, b *taxonomy.Brand) error {
	query := `
		UPDATE brands
		SET name = $1, brand_fipe_id = $2, logo = $3, updated_at = $4
		WHERE id = $5 AND deleted_at IS NULL
	`

	result, err := r.db.Pool().Exec(ctx, query,
		b.Name, nullIfEmpty(b.BrandFipeID), nullIfEmpty(b.Logo), time.Now(), b.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return taxonomy.ErrBrandDuplicate
		}
		return fmt.Errorf("falha ao atualizar marca: %w", err)
	}

	if result.RowsAffected() == 0 {
		return taxonomy.ErrBrandNotFound
	}

	return nil
}

// SoftDelete implementa taxonomy.BrandRepository.SoftDelete
func (r *PostgresBrandRepository) SoftDelete(ctx context.Context, id string) error {
	result, err := r.db.Pool().Exec(ctx,
		"UPDATE brands SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL", time.Now(), id)
	if err != nil {
		return fmt.Errorf("falha ao remover marca: %w", err)
	}

	if result.RowsAffected() == 0 {
		return taxonomy.ErrBrandNotFound
	}

	return nil
}

// PostgresModelRepository implementa taxonomy.ModelRepository
type PostgresModelRepository struct {
	db *database.PostgresDB
}

// NewPostgresModelRepository cria uma nova instância de
// PostgresModelRepository
func NewPostgresModelRepository(db *database.PostgresDB) *PostgresModelRepository {
	return &PostgresModelRepository{db: db}
}

const modelColumns = "id, brand_id, name, model_fipe_id, created_at, updated_at"

// Create implementa taxonomy.ModelRepository.Create
func (r *PostgresModelRepository) Create(ctx context.Context, m *taxonomy.Model) error {
	query := `
		INSERT INTO models (id, brand_id, name, model_fipe_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Pool().Exec(ctx, query,
		m.ID, m.BrandID, m.Name, nullIfEmpty(m.ModelFipeID), m.CreatedAt, m.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return taxonomy.ErrModelDuplicate
		}
		return fmt.Errorf("falha ao inserir modelo: %w", err)
	}

	return nil
}

// FindByID implementa taxonomy.ModelRepository.FindByID
func (r *PostgresModelRepository) FindByID(ctx context.Context, id string) (*taxonomy.Model, error) {
	return r.findModelByQuery(ctx,
		"SELECT "+modelColumns+" FROM models WHERE id = $1 AND deleted_at IS NULL", id)
}

// FindByBrandAndName implementa taxonomy.ModelRepository.FindByBrandAndName
func (r *PostgresModelRepository) FindByBrandAndName(ctx context.Context, brandID, name string) (*taxonomy.Model, error) {
	return r.findModelByQuery(ctx,
		"SELECT "+modelColumns+" FROM models WHERE brand_id = $1 AND name = $2 AND deleted_at IS NULL", brandID, name)
}

func (r *PostgresModelRepository) findModelByQuery(ctx context.Context, query string, args ...interface{}) (*taxonomy.Model, error) {
	m := &taxonomy.Model{}
	var fipeID *string

	err := r.db.Pool().QueryRow(ctx, query, args...).Scan(
		&m.ID, &m.BrandID, &m.Name, &fipeID, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxonomy.ErrModelNotFound
		}
		return nil, fmt.Errorf("falha ao buscar modelo: %w", err)
	}

	if fipeID != nil {
		m.ModelFipeID = *fipeID
	}
	return m, nil
}

// FindAll implementa taxonomy.ModelRepository.FindAll
func (r *PostgresModelRepository) FindAll(ctx context.Context) ([]*taxonomy.Model, error) {
	return r.scanModels(ctx,
		"SELECT "+modelColumns+" FROM models WHERE deleted_at IS NULL ORDER BY name ASC")
}

// FindByBrand implementa taxonomy.ModelRepository.FindByBrand
func (r *PostgresModelRepository) FindByBrand(ctx context.Context, brandID string) ([]*taxonomy.Model, error) {
	return r.scanModels(ctx,
		"SELECT "+modelColumns+" FROM models WHERE brand_id = $1 AND deleted_at IS NULL ORDER BY name ASC", brandID)
}

func (r *PostgresModelRepository) scanModels(ctx context.Context, query string, args ...interface{}) ([]*taxonomy.Model, error) {
	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar modelos: %w", err)
	}
	defer rows.Close()

	var models []*taxonomy.Model
	for rows.Next() {
		m := &taxonomy.Model{}
		var fipeID *string
		if err := rows.Scan(&m.ID, &m.BrandID, &m.Name, &fipeID, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler modelo: %w", err)
		}
		if fipeID != nil {
			m.ModelFipeID = *fipeID
		}
		models = append(models, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return models, nil
}

// Update implementa taxonomy.ModelRepository.Update
func (r *PostgresModelRepository) Update(ctx context.Context, m *taxonomy.Model) error {
	query := `
		UPDATE models
		SET brand_id = $1, name = $2, model_fipe_id = $3, updated_at = $4
		WHERE id = $5 AND deleted_at IS NULL
	`

	result, err := r.db.Pool().Exec(ctx, query,
		m.BrandID, m.Name, nullIfEmpty(m.ModelFipeID), time.Now(), m.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return taxonomy.ErrModelDuplicate
		}
		return fmt.Errorf("falha ao atualizar modelo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return taxonomy.ErrModelNotFound
	}

	return nil
}

// SoftDelete implementa taxonomy.ModelRepository.SoftDelete
func (r *PostgresModelRepository) SoftDelete(ctx context.Context, id string) error {
	result, err := r.db.Pool().Exec(ctx,
		"UPDATE models SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL", time.Now(), id)
	if err != nil {
		return fmt.Errorf("falha ao remover modelo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return taxonomy.ErrModelNotFound
	}

	return nil
}

// nullIfEmpty converte string vazia em NULL na gravação
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
