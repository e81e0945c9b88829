package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/photo"
	"github.com/renato-dev-nws/autoshop-api/internal/infrastructure/database"
)

// PostgresPhotoRepository implementa a interface photo.Repository usando
// PostgreSQL. As operações que tocam a flag de capa rodam em transação para
// que o índice único parcial nunca seja violado.
type PostgresPhotoRepository struct {
	db *database.PostgresDB
}

// NewPostgresPhotoRepository cria uma nova instância de
// PostgresPhotoRepository
func NewPostgresPhotoRepository(db *database.PostgresDB) *PostgresPhotoRepository {
	return &PostgresPhotoRepository{db: db}
}

const photoColumns = "id, vehicle_id, url, is_cover, display_order, created_at, updated_at"

// CreateBatch implementa photo.Repository.CreateBatch. A contagem de fotos
// existentes e a atribuição de capa e ordem acontecem dentro da transação.
func (r *PostgresPhotoRepository) CreateBatch(ctx context.Context, vehicleID string, photos []*photo.Photo) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		var existing int
		err := tx.QueryRow(ctx,
			"SELECT COUNT(*) FROM vehicle_photos WHERE vehicle_id = $1", vehicleID).Scan(&existing)
		if err != nil {
			return fmt.Errorf("falha ao contar fotos existentes: %w", err)
		}

		for i, p := range photos {
			p.IsCover = existing == 0 && i == 0
			p.DisplayOrder = existing + i

			_, err := tx.Exec(ctx, `
				INSERT INTO vehicle_photos (id, vehicle_id, url, is_cover, display_order, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, p.ID, p.VehicleID, p.URL, p.IsCover, p.DisplayOrder, p.CreatedAt, p.UpdatedAt)
			if err != nil {
				return fmt.Errorf("falha ao inserir foto: %w", err)
			}
		}

		return nil
	})
}

// FindByID implementa photo.Repository.FindByID
func (r *PostgresPhotoRepository) FindByID(ctx context.Context, vehicleID, photoID string) (*photo.Photo, error) {
	p := &photo.Photo{}

	err := r.db.Pool().QueryRow(ctx,
		"SELECT "+photoColumns+" FROM vehicle_photos WHERE id = $1 AND vehicle_id = $2", photoID, vehicleID).Scan(
		&p.ID, &p.VehicleID, &p.URL, &p.IsCover, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, photo.ErrNotFound
		}
		return nil, fmt.Errorf("falha ao buscar foto: %w", err)
	}

	return p, nil
}

// ListByVehicle implementa photo.Repository.ListByVehicle
func (r *PostgresPhotoRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]*photo.Photo, error) {
	rows, err := r.db.Pool().Query(ctx,
		"SELECT "+photoColumns+" FROM vehicle_photos WHERE vehicle_id = $1 ORDER BY display_order ASC", vehicleID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar fotos: %w", err)
	}
	defer rows.Close()

	var photos []*photo.Photo
	for rows.Next() {
		p := &photo.Photo{}
		if err := rows.Scan(&p.ID, &p.VehicleID, &p.URL, &p.IsCover, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler foto: %w", err)
		}
		photos = append(photos, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar resultados: %w", err)
	}

	return photos, nil
}

// CountByVehicle implementa photo.Repository.CountByVehicle
func (r *PostgresPhotoRepository) CountByVehicle(ctx context.Context, vehicleID string) (int, error) {
	var count int
	err := r.db.Pool().QueryRow(ctx,
		"SELECT COUNT(*) FROM vehicle_photos WHERE vehicle_id = $1", vehicleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("falha ao contar fotos: %w", err)
	}
	return count, nil
}

// SetCover implementa photo.Repository.SetCover. A capa anterior é desmarcada
// antes da nova ser marcada, na mesma transação.
func (r *PostgresPhotoRepository) SetCover(ctx context.Context, vehicleID, photoID string) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			"UPDATE vehicle_photos SET is_cover = false, updated_at = $1 WHERE vehicle_id = $2 AND is_cover",
			time.Now(), vehicleID)
		if err != nil {
			return fmt.Errorf("falha ao desmarcar capa anterior: %w", err)
		}

		result, err := tx.Exec(ctx,
			"UPDATE vehicle_photos SET is_cover = true, updated_at = $1 WHERE id = $2 AND vehicle_id = $3",
			time.Now(), photoID, vehicleID)
		if err != nil {
			return fmt.Errorf("falha ao marcar capa: %w", err)
		}
		if result.RowsAffected() == 0 {
			return photo.ErrNotFound
		}

		return nil
	})
}

// UpdateOrder implementa photo.Repository.UpdateOrder
func (r *PostgresPhotoRepository) UpdateOrder(ctx context.Context, vehicleID, photoID string, displayOrder int) error {
	result, err := r.db.Pool().Exec(ctx,
		"UPDATE vehicle_photos SET display_order = $1, updated_at = $2 WHERE id = $3 AND vehicle_id = $4",
		displayOrder, time.Now(), photoID, vehicleID)
	if err != nil {
		return fmt.Errorf("falha ao atualizar ordem da foto: %w", err)
	}

	if result.RowsAffected() == 0 {
		return photo.ErrNotFound
	}

	return nil
}

// Delete implementa photo.Repository.Delete. Quando a foto removida era a
// capa, a foto restante de menor display_order é promovida na mesma
// transação.
func (r *PostgresPhotoRepository) Delete(ctx context.Context, p *photo.Photo) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		result, err := tx.Exec(ctx,
			"DELETE FROM vehicle_photos WHERE id = $1 AND vehicle_id = $2", p.ID, p.VehicleID)
		if err != nil {
			return fmt.Errorf("falha ao remover foto: %w", err)
		}
		if result.RowsAffected() == 0 {
			return photo.ErrNotFound
		}

		if p.IsCover {
			_, err := tx.Exec(ctx, `
				UPDATE vehicle_photos SET is_cover = true, updated_at = $1
				WHERE id = (
					SELECT id FROM vehicle_photos
					WHERE vehicle_id = $2
					ORDER BY display_order ASC
					LIMIT 1
				)
			`, time.Now(), p.VehicleID)
			if err != nil {
				return fmt.Errorf("falha ao promover nova capa: %w", err)
			}
		}

		return nil
	})
}
