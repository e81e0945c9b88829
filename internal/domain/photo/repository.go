package photo

import (
	"context"
)

// Repository define as operações de persistência para fotos de veículos
type Repository interface {
	// CreateBatch insere as fotos em uma única transação, contando as
	// fotos existentes dentro dela; a marcação de capa do primeiro
	// arquivo só vale quando a contagem observada na transação é zero
	CreateBatch(ctx context.Context, vehicleID string, photos []*Photo) error

	// FindByID busca uma foto pelo par (veículo, foto)
	FindByID(ctx context.Context, vehicleID, photoID string) (*Photo, error)

	// ListByVehicle retorna as fotos de um veículo ordenadas por
	// display_order
	ListByVehicle(ctx context.Context, vehicleID string) ([]*Photo, error)

	// CountByVehicle retorna o número de fotos de um veículo
	CountByVehicle(ctx context.Context, vehicleID string) (int, error)

	// SetCover marca a foto como capa desmarcando a capa anterior na
	// mesma transação
	SetCover(ctx context.Context, vehicleID, photoID string) error

	// UpdateOrder atualiza a ordem de exibição de uma foto
	UpdateOrder(ctx context.Context, vehicleID, photoID string, displayOrder int) error

	// Delete remove a foto; se ela era capa, promove a foto restante de
	// menor display_order na mesma transação
	Delete(ctx context.Context, p *Photo) error
}
