package dto

import (
	"time"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/photo"
)

// PhotoResponse representa a resposta com dados de uma foto de veículo
type PhotoResponse struct {
	ID           string    `json:"id"`
	VehicleID    string    `json:"vehicle_id"`
	URL          string    `json:"url"`
	IsCover      bool      `json:"is_cover"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

// PhotoUploadResponse representa o resultado de um envio de fotos
type PhotoUploadResponse struct {
	Uploaded int             `json:"uploaded"`
	Photos   []PhotoResponse `json:"photos"`
}

// PhotoOrderRequest representa a alteração da ordem de exibição de uma foto
type PhotoOrderRequest struct {
	DisplayOrder *int `json:"display_order" binding:"required"`
}

// ToPhotoResponse converte uma foto do domínio para DTO de resposta
func ToPhotoResponse(p *photo.Photo) PhotoResponse {
	return PhotoResponse{
		ID:           p.ID,
		VehicleID:    p.VehicleID,
		URL:          p.URL,
		IsCover:      p.IsCover,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    p.CreatedAt,
	}
}

// ToPhotoListResponse converte uma lista de fotos para DTOs de resposta
func ToPhotoListResponse(photos []*photo.Photo) []PhotoResponse {
	if len(photos) == 0 {
		return nil
	}
	data := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		data[i] = ToPhotoResponse(p)
	}
	return data
}
