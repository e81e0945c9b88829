package photo

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/scope"
	"github.com/renato-dev-nws/autoshop-api/pkg/logger"
	"github.com/renato-dev-nws/autoshop-api/pkg/storage"
)

// VehicleDirectory informa a qual loja pertence um veículo. Implementado
// pelo repositório de veículos.
type VehicleDirectory interface {
	OwningStore(ctx context.Context, vehicleID string) (string, error)
}

// Authorizer decide se o usuário pode gerenciar fotos do veículo
type Authorizer interface {
	AuthorizeNestedResource(ctx context.Context, caller scope.Caller, owningStoreID string) error
}

// UploadFile é um arquivo recebido em um envio de fotos
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadResult é o resultado de um envio de fotos
type UploadResult struct {
	Uploaded int      `json:"uploaded"`
	Photos   []*Photo `json:"photos"`
}

// Service orquestra o gerenciamento de fotos de veículos: envio com limite
// de 10 arquivos, invariante de capa única e promoção de capa na remoção.
type Service struct {
	photos   Repository
	vehicles VehicleDirectory
	auth     Authorizer
	files    storage.Storage
	log      logger.Logger
}

// NewService cria uma nova instância de Service
func NewService(photos Repository, vehicles VehicleDirectory, auth Authorizer, files storage.Storage, log logger.Logger) *Service {
	return &Service{
		photos:   photos,
		vehicles: vehicles,
		auth:     auth,
		files:    files,
		log:      log,
	}
}

// Upload grava no máximo 10 fotos para o veículo. Arquivos que não são
// imagem são ignorados sem falhar o lote; o limite de 10 é verificado antes
// de qualquer persistência. A primeira foto vira capa apenas se o veículo
// ainda não tem fotos, decisão tomada na transação de inserção.
func (s *Service) Upload(ctx context.Context, caller scope.Caller, vehicleID string, files []UploadFile) (*UploadResult, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	if len(files) > MaxUploadFiles {
		return nil, ErrTooManyFiles
	}

	storeID, err := s.vehicles.OwningStore(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if err := s.auth.AuthorizeNestedResource(ctx, caller, storeID); err != nil {
		return nil, err
	}

	var photos []*Photo
	for i, file := range files {
		if !strings.HasPrefix(file.ContentType, "image/") {
			continue
		}

		name := fmt.Sprintf("%s_%d_%d%s", vehicleID, time.Now().UnixMilli(), i, filepath.Ext(file.Name))
		url, err := s.files.Save(ctx, name, file.Data)
		if err != nil {
			return nil, fmt.Errorf("falha ao salvar arquivo: %w", err)
		}

		photos = append(photos, NewPhoto(vehicleID, url, false, 0))
	}

	if len(photos) > 0 {
		if err := s.photos.CreateBatch(ctx, vehicleID, photos); err != nil {
			return nil, err
		}
	}

	s.log.Info("fotos enviadas", "vehicle_id", vehicleID, "uploaded", len(photos))
	return &UploadResult{Uploaded: len(photos), Photos: photos}, nil
}

// List retorna as fotos do veículo ordenadas por exibição, verificando a
// permissão do usuário sobre a loja dona
func (s *Service) List(ctx context.Context, caller scope.Caller, vehicleID string) ([]*Photo, error) {
	storeID, err := s.vehicles.OwningStore(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if err := s.auth.AuthorizeNestedResource(ctx, caller, storeID); err != nil {
		return nil, err
	}

	return s.photos.ListByVehicle(ctx, vehicleID)
}

// SetCover marca a foto como capa. A capa anterior é desmarcada na mesma
// transação, mantendo no máximo uma capa por veículo.
func (s *Service) SetCover(ctx context.Context, caller scope.Caller, vehicleID, photoID string) (*Photo, error) {
	p, err := s.authorizedPhoto(ctx, caller, vehicleID, photoID)
	if err != nil {
		return nil, err
	}

	if err := s.photos.SetCover(ctx, vehicleID, photoID); err != nil {
		return nil, err
	}

	p.IsCover = true
	return p, nil
}

// UpdateOrder altera a ordem de exibição da foto
func (s *Service) UpdateOrder(ctx context.Context, caller scope.Caller, vehicleID, photoID string, displayOrder int) (*Photo, error) {
	p, err := s.authorizedPhoto(ctx, caller, vehicleID, photoID)
	if err != nil {
		return nil, err
	}

	if err := s.photos.UpdateOrder(ctx, vehicleID, photoID, displayOrder); err != nil {
		return nil, err
	}

	p.DisplayOrder = displayOrder
	return p, nil
}

// Remove apaga a foto e o arquivo correspondente. Se a foto era capa, a
// restante com menor display_order é promovida.
func (s *Service) Remove(ctx context.Context, caller scope.Caller, vehicleID, photoID string) error {
	p, err := s.authorizedPhoto(ctx, caller, vehicleID, photoID)
	if err != nil {
		return err
	}

	if err := s.photos.Delete(ctx, p); err != nil {
		return err
	}

	if err := s.files.Remove(ctx, p.URL); err != nil {
		// O registro já foi removido; o arquivo órfão só gera aviso
		s.log.Warn("falha ao remover arquivo de foto", "url", p.URL, "error", err)
	}

	return nil
}

func (s *Service) authorizedPhoto(ctx context.Context, caller scope.Caller, vehicleID, photoID string) (*Photo, error) {
	p, err := s.photos.FindByID(ctx, vehicleID, photoID)
	if err != nil {
		return nil, err
	}

	storeID, err := s.vehicles.OwningStore(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if err := s.auth.AuthorizeNestedResource(ctx, caller, storeID); err != nil {
		return nil, err
	}

	return p, nil
}
