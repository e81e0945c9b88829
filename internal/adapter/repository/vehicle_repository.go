package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/photo"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/scope"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/store"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/taxonomy"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/vehicle"
	"github.com/renato-dev-nws/autoshop-api/internal/infrastructure/database"
)

// PostgresVehicleRepository implementa a interface vehicle.Repository usando
// PostgreSQL
type PostgresVehicleRepository struct {
	db     *database.PostgresDB
	photos photo.Repository
}

// NewPostgresVehicleRepository cria uma nova instância de
// PostgresVehicleRepository
func NewPostgresVehicleRepository(db *database.PostgresDB, photos photo.Repository) *PostgresVehicleRepository {
	return &PostgresVehicleRepository{db: db, photos: photos}
}

const vehicleSelectColumns = `
	v.id, v.store_id, v.category_id, v.brand_id, v.model_id, v.plate,
	v.manufacture_year, v.model_year, v.mileage, v.color, v.fuel_type,
	v.price, v.fipe_code, v.fipe_value, v.description, v.status,
	v.home_highlight, v.brand_highlight, v.features, v.specifications,
	v.created_at, v.updated_at,
	s.name, c.name, c.icon, b.name, b.brand_fipe_id, b.logo, m.name, m.model_fipe_id`

// Create implementa vehicle.Repository.Create
func (r *PostgresVehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	features, specifications, err := marshalVehicleJSON(v)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO vehicles (
			id, store_id, category_id, brand_id, model_id, plate,
			manufacture_year, model_year, mileage, color, fuel_type,
			price, fipe_code, fipe_value, description, status,
			home_highlight, brand_highlight, features, specifications,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
	`

	_, err = r.db.Pool().Exec(ctx, query,
		v.ID, v.StoreID, v.CategoryID, v.BrandID, v.ModelID, v.Plate,
		v.ManufactureYear, v.ModelYear, v.Mileage, nullIfEmpty(v.Color), nullIfEmpty(v.FuelType),
		v.Price, nullIfEmpty(v.FipeCode), v.FipeValue, nullIfEmpty(v.Description), v.Status,
		v.HomeHighlight, v.BrandHighlight, features, specifications,
		v.CreatedAt, v.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return vehicle.ErrPlateDuplicate
		}
		return fmt.Errorf("falha ao inserir veículo: %w", err)
	}

	return nil
}

// FindByID implementa vehicle.Repository.FindByID
func (r *PostgresVehicleRepository) FindByID(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	query := "SELECT " + vehicleSelectColumns + vehicleFromClause +
		"WHERE v.id = $1 AND v.deleted_at IS NULL"

	v, err := r.scanVehicle(r.db.Pool().QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}

	photos, err := r.photos.ListByVehicle(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	v.Photos = photos

	return v, nil
}

// FindByPlate implementa vehicle.Repository.FindByPlate
func (r *PostgresVehicleRepository) FindByPlate(ctx context.Context, plate string) (*vehicle.Vehicle, error) {
	query := "SELECT " + vehicleSelectColumns + vehicleFromClause +
		"WHERE v.plate = $1 AND v.deleted_at IS NULL"

	return r.scanVehicle(r.db.Pool().QueryRow(ctx, query, plate))
}

// Search implementa vehicle.Repository.Search. O COUNT roda com os mesmos
// predicados da página, antes dos argumentos de paginação entrarem na
// consulta.
func (r *PostgresVehicleRepository) Search(ctx context.Context, filters vehicle.SearchFilters, sc scope.Scope) ([]*vehicle.Vehicle, int, error) {
	q := buildVehicleQuery(filters, sc)

	var total int
	if err := r.db.Pool().QueryRow(ctx, q.countSQL(), q.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("falha ao contar veículos: %w", err)
	}

	rows, err := r.db.Pool().Query(ctx, q.selectSQL(filters), q.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("falha ao buscar veículos: %w", err)
	}
	defer rows.Close()

	var vehicles []*vehicle.Vehicle
	for rows.Next() {
		v, err := r.scanVehicle(rows)
		if err != nil {
			return nil, 0, err
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	if err := r.loadPhotos(ctx, vehicles); err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

// loadPhotos carrega as fotos de todos os veículos da página em uma única
// consulta
func (r *PostgresVehicleRepository) loadPhotos(ctx context.Context, vehicles []*vehicle.Vehicle) error {
	if len(vehicles) == 0 {
		return nil
	}

	ids := make([]string, len(vehicles))
	byID := make(map[string]*vehicle.Vehicle, len(vehicles))
	for i, v := range vehicles {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	rows, err := r.db.Pool().Query(ctx,
		"SELECT "+photoColumns+" FROM vehicle_photos WHERE vehicle_id = ANY($1) ORDER BY display_order ASC", ids)
	if err != nil {
		return fmt.Errorf("falha ao carregar fotos: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p := &photo.Photo{}
		if err := rows.Scan(&p.ID, &p.VehicleID, &p.URL, &p.IsCover, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return fmt.Errorf("falha ao ler foto: %w", err)
		}
		if v, ok := byID[p.VehicleID]; ok {
			v.Photos = append(v.Photos, p)
		}
	}

	return rows.Err()
}

// Update implementa vehicle.Repository.Update
func (r *PostgresVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	features, specifications, err := marshalVehicleJSON(v)
	if err != nil {
		return err
	}

	query := `
		UPDATE vehicles
		SET store_id = $1, category_id = $2, brand_id = $3, model_id = $4, plate = $5,
			manufacture_year = $6, model_year = $7, mileage = $8, color = $9, fuel_type = $10,
			price = $11, fipe_code = $12, fipe_value = $13, description = $14, status = $15,
			home_highlight = $16, brand_highlight = $17, features = $18, specifications = $19,
			updated_at = $20
		WHERE id = $21 AND deleted_at IS NULL
	`

	result, err := r.db.Pool().Exec(ctx, query,
		v.StoreID, v.CategoryID, v.BrandID, v.ModelID, v.Plate,
		v.ManufactureYear, v.ModelYear, v.Mileage, nullIfEmpty(v.Color), nullIfEmpty(v.FuelType),
		v.Price, nullIfEmpty(v.FipeCode), v.FipeValue, nullIfEmpty(v.Description), v.Status,
		v.HomeHighlight, v.BrandHighlight, features, specifications,
		time.Now(), v.ID,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return vehicle.ErrPlateDuplicate
		}
		return fmt.Errorf("falha ao atualizar veículo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return vehicle.ErrNotFound
	}

	return nil
}

// UpdateStatus implementa vehicle.Repository.UpdateStatus
func (r *PostgresVehicleRepository) UpdateStatus(ctx context.Context, id string, status vehicle.Status) error {
	result, err := r.db.Pool().Exec(ctx,
		"UPDATE vehicles SET status = $1, updated_at = $2 WHERE id = $3 AND deleted_at IS NULL",
		status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status do veículo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return vehicle.ErrNotFound
	}

	return nil
}

// SoftDelete implementa vehicle.Repository.SoftDelete
func (r *PostgresVehicleRepository) SoftDelete(ctx context.Context, id string) error {
	result, err := r.db.Pool().Exec(ctx,
		"UPDATE vehicles SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL", time.Now(), id)
	if err != nil {
		return fmt.Errorf("falha ao remover veículo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return vehicle.ErrNotFound
	}

	return nil
}

// CountByStore implementa vehicle.Repository.CountByStore
func (r *PostgresVehicleRepository) CountByStore(ctx context.Context, storeID string) (int, error) {
	return r.countBy(ctx, "store_id", storeID)
}

// CountByCategory implementa vehicle.Repository.CountByCategory
func (r *PostgresVehicleRepository) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	return r.countBy(ctx, "category_id", categoryID)
}

// CountByBrand implementa vehicle.Repository.CountByBrand
func (r *PostgresVehicleRepository) CountByBrand(ctx context.Context, brandID string) (int, error) {
	return r.countBy(ctx, "brand_id", brandID)
}

// CountByModel implementa vehicle.Repository.CountByModel
func (r *PostgresVehicleRepository) CountByModel(ctx context.Context, modelID string) (int, error) {
	return r.countBy(ctx, "model_id", modelID)
}

func (r *PostgresVehicleRepository) countBy(ctx context.Context, column, id string) (int, error) {
	var count int
	err := r.db.Pool().QueryRow(ctx,
		"SELECT COUNT(*) FROM vehicles WHERE "+column+" = $1 AND deleted_at IS NULL", id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar veículos: %w", err)
	}
	return count, nil
}

// OwningStore retorna a loja dona de um veículo; usado pelo serviço de fotos
func (r *PostgresVehicleRepository) OwningStore(ctx context.Context, vehicleID string) (string, error) {
	var storeID string
	err := r.db.Pool().QueryRow(ctx,
		"SELECT store_id FROM vehicles WHERE id = $1 AND deleted_at IS NULL", vehicleID).Scan(&storeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", vehicle.ErrNotFound
		}
		return "", fmt.Errorf("falha ao buscar loja do veículo: %w", err)
	}
	return storeID, nil
}

// scanVehicle lê uma linha do SELECT de veículos, incluindo os campos das
// tabelas relacionadas
func (r *PostgresVehicleRepository) scanVehicle(row pgx.Row) (*vehicle.Vehicle, error) {
	v := &vehicle.Vehicle{
		Store:    &store.Store{},
		Category: &taxonomy.Category{},
		Brand:    &taxonomy.Brand{},
		Model:    &taxonomy.Model{},
	}

	var color, fuelType, fipeCode, description *string
	var features, specifications []byte
	var categoryIcon, brandFipeID, brandLogo, modelFipeID *string

	err := row.Scan(
		&v.ID, &v.StoreID, &v.CategoryID, &v.BrandID, &v.ModelID, &v.Plate,
		&v.ManufactureYear, &v.ModelYear, &v.Mileage, &color, &fuelType,
		&v.Price, &fipeCode, &v.FipeValue, &description, &v.Status,
		&v.HomeHighlight, &v.BrandHighlight, &features, &specifications,
		&v.CreatedAt, &v.UpdatedAt,
		&v.Store.Name, &v.Category.Name, &categoryIcon, &v.Brand.Name, &brandFipeID, &brandLogo,
		&v.Model.Name, &modelFipeID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vehicle.ErrNotFound
		}
		return nil, fmt.Errorf("falha ao ler veículo: %w", err)
	}

	if color != nil {
		v.Color = *color
	}
	if fuelType != nil {
		v.FuelType = *fuelType
	}
	if fipeCode != nil {
		v.FipeCode = *fipeCode
	}
	if description != nil {
		v.Description = *description
	}
	if categoryIcon != nil {
		v.Category.Icon = *categoryIcon
	}
	if brandFipeID != nil {
		v.Brand.BrandFipeID = *brandFipeID
	}
	if brandLogo != nil {
		v.Brand.Logo = *brandLogo
	}
	if modelFipeID != nil {
		v.Model.ModelFipeID = *modelFipeID
	}

	v.Store.ID = v.StoreID
	v.Category.ID = v.CategoryID
	v.Brand.ID = v.BrandID
	v.Model.ID = v.ModelID
	v.Model.BrandID = v.BrandID

	if len(features) > 0 {
		if err := json.Unmarshal(features, &v.Features); err != nil {
			return nil, fmt.Errorf("falha ao decodificar características: %w", err)
		}
	}
	if len(specifications) > 0 {
		if err := json.Unmarshal(specifications, &v.Specifications); err != nil {
			return nil, fmt.Errorf("falha ao decodificar especificações: %w", err)
		}
	}

	return v, nil
}

// marshalVehicleJSON serializa os campos JSONB do veículo para gravação
func marshalVehicleJSON(v *vehicle.Vehicle) ([]byte, []byte, error) {
	var features, specifications []byte
	var err error

	if v.Features != nil {
		features, err = json.Marshal(v.Features)
		if err != nil {
			return nil, nil, fmt.Errorf("falha ao codificar características: %w", err)
		}
	}
	if v.Specifications != nil {
		specifications, err = json.Marshal(v.Specifications)
		if err != nil {
			return nil, nil, fmt.Errorf("falha ao codificar especificações: %w", err)
		}
	}

	return features, specifications, nil
}
