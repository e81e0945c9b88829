package photo

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Limite de arquivos aceitos em um único envio
const MaxUploadFiles = 10

var (
	ErrNotFound     = errors.New("foto não encontrada")
	ErrNoFiles      = errors.New("nenhum arquivo enviado")
	ErrTooManyFiles = errors.New("máximo de 10 fotos por vez")
)

// Photo representa uma foto de veículo. No máximo uma foto por veículo tem
// IsCover verdadeiro; a restrição é garantida por índice único parcial.
type Photo struct {
	ID           string    `json:"id"`
	VehicleID    string    `json:"vehicle_id"`
	URL          string    `json:"url"`
	IsCover      bool      `json:"is_cover"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewPhoto cria uma nova foto
func NewPhoto(vehicleID, url string, isCover bool, displayOrder int) *Photo {
	now := time.Now()
	return &Photo{
		ID:           uuid.New().String(),
		VehicleID:    vehicleID,
		URL:          url,
		IsCover:      isCover,
		DisplayOrder: displayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
