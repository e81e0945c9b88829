package photo_test

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/renato-dev-nws/autoshop-api/internal/domain/photo"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/scope"
	"github.com/renato-dev-nws/autoshop-api/internal/domain/vehicle"
	"github.com/renato-dev-nws/autoshop-api/pkg/logger"
)

// fakePhotoRepository implementa Repository em memória, reproduzindo as
// decisões transacionais de capa do repositório real
type fakePhotoRepository struct {
	photos map[string]*Photo
}

func newFakePhotoRepository(photos ...*Photo) *fakePhotoRepository {
	r := &fakePhotoRepository{photos: make(map[string]*Photo)}
	for _, p := range photos {
		r.photos[p.ID] = p
	}
	return r
}

func (r *fakePhotoRepository) CreateBatch(ctx context.Context, vehicleID string, photos []*Photo) error {
	existing, _ := r.CountByVehicle(ctx, vehicleID)
	for i, p := range photos {
		p.IsCover = existing == 0 && i == 0
		p.DisplayOrder = existing + i
		r.photos[p.ID] = p
	}
	return nil
}

func (r *fakePhotoRepository) FindByID(ctx context.Context, vehicleID, photoID string) (*Photo, error) {
	p, ok := r.photos[photoID]
	if !ok || p.VehicleID != vehicleID {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *fakePhotoRepository) ListByVehicle(ctx context.Context, vehicleID string) ([]*Photo, error) {
	var list []*Photo
	for _, p := range r.photos {
		if p.VehicleID == vehicleID {
			list = append(list, p)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DisplayOrder < list[j].DisplayOrder })
	return list, nil
}

func (r *fakePhotoRepository) CountByVehicle(ctx context.Context, vehicleID string) (int, error) {
	count := 0
	for _, p := range r.photos {
		if p.VehicleID == vehicleID {
			count++
		}
	}
	return count, nil
}

func (r *fakePhotoRepository) SetCover(ctx context.Context, vehicleID, photoID string) error {
	target, err := r.FindByID(ctx, vehicleID, photoID)
	if err != nil {
		return err
	}
	for _, p := range r.photos {
		if p.VehicleID == vehicleID {
			p.IsCover = false
		}
	}
	target.IsCover = true
	return nil
}

func (r *fakePhotoRepository) UpdateOrder(ctx context.Context, vehicleID, photoID string, displayOrder int) error {
	p, err := r.FindByID(ctx, vehicleID, photoID)
	if err != nil {
		return err
	}
	p.DisplayOrder = displayOrder
	return nil
}

func (r *fakePhotoRepository) Delete(ctx context.Context, p *Photo) error {
	delete(r.photos, p.ID)
	if p.IsCover {
		remaining, _ := r.ListByVehicle(ctx, p.VehicleID)
		if len(remaining) > 0 {
			remaining[0].IsCover = true
		}
	}
	return nil
}

// fakeVehicleDirectory mapeia veículo para loja dona
type fakeVehicleDirectory struct {
	owners map[string]string
}

func (f *fakeVehicleDirectory) OwningStore(ctx context.Context, vehicleID string) (string, error) {
	storeID, ok := f.owners[vehicleID]
	if !ok {
		return "", vehicle.ErrNotFound
	}
	return storeID, nil
}

// fakeAuthorizer autoriza apenas as lojas do conjunto permitido
type fakeAuthorizer struct {
	allowed map[string]bool
}

func (a *fakeAuthorizer) AuthorizeNestedResource(ctx context.Context, caller scope.Caller, owningStoreID string) error {
	if caller.IsAdmin() || a.allowed[owningStoreID] {
		return nil
	}
	return scope.ErrForbidden
}

// fakeStorage grava em memória e registra as remoções
type fakeStorage struct {
	saved   map[string][]byte
	removed []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: make(map[string][]byte)}
}

func (s *fakeStorage) Save(ctx context.Context, name string, data []byte) (string, error) {
	s.saved[name] = data
	return "/uploads/" + name, nil
}

func (s *fakeStorage) Remove(ctx context.Context, url string) error {
	s.removed = append(s.removed, url)
	return nil
}

var manager = scope.Caller{UserID: "u1", Role: scope.RoleManager, StoreID: "loja-1"}

func newTestService(repo *fakePhotoRepository, files *fakeStorage) *Service {
	dir := &fakeVehicleDirectory{owners: map[string]string{"v1": "loja-1", "v2": "loja-2"}}
	auth := &fakeAuthorizer{allowed: map[string]bool{"loja-1": true}}
	return NewService(repo, dir, auth, files, logger.Nop())
}

func imageFiles(n int) []UploadFile {
	files := make([]UploadFile, n)
	for i := range files {
		files[i] = UploadFile{
			Name:        fmt.Sprintf("foto%d.jpg", i),
			ContentType: "image/jpeg",
			Data:        []byte{0xff, 0xd8},
		}
	}
	return files
}

func TestUploadSemArquivos(t *testing.T) {
	svc := newTestService(newFakePhotoRepository(), newFakeStorage())

	_, err := svc.Upload(context.Background(), manager, "v1", nil)

	assert.ErrorIs(t, err, ErrNoFiles)
}

func TestUploadAcimaDoLimite(t *testing.T) {
	files := newFakeStorage()
	svc := newTestService(newFakePhotoRepository(), files)

	_, err := svc.Upload(context.Background(), manager, "v1", imageFiles(11))

	assert.ErrorIs(t, err, ErrTooManyFiles)
	// O limite é verificado antes de qualquer gravação
	assert.Empty(t, files.saved)
}

func TestUploadVeiculoInexistente(t *testing.T) {
	svc := newTestService(newFakePhotoRepository(), newFakeStorage())

	_, err := svc.Upload(context.Background(), manager, "v9", imageFiles(1))

	assert.ErrorIs(t, err, vehicle.ErrNotFound)
}

func TestUploadForaDoEscopo(t *testing.T) {
	svc := newTestService(newFakePhotoRepository(), newFakeStorage())

	_, err := svc.Upload(context.Background(), manager, "v2", imageFiles(1))

	assert.ErrorIs(t, err, scope.ErrForbidden)
}

func TestUploadPrimeiraFotoViraCapa(t *testing.T) {
	repo := newFakePhotoRepository()
	svc := newTestService(repo, newFakeStorage())

	result, err := svc.Upload(context.Background(), manager, "v1", imageFiles(3))

	require.NoError(t, err)
	assert.Equal(t, 3, result.Uploaded)
	require.Len(t, result.Photos, 3)
	assert.True(t, result.Photos[0].IsCover)
	assert.False(t, result.Photos[1].IsCover)
	assert.False(t, result.Photos[2].IsCover)
	assert.Equal(t, 0, result.Photos[0].DisplayOrder)
	assert.Equal(t, 2, result.Photos[2].DisplayOrder)
}

func TestUploadVeiculoComFotosNaoTrocaCapa(t *testing.T) {
	existing := NewPhoto("v1", "/uploads/antiga.jpg", true, 0)
	repo := newFakePhotoRepository(existing)
	svc := newTestService(repo, newFakeStorage())

	result, err := svc.Upload(context.Background(), manager, "v1", imageFiles(2))

	require.NoError(t, err)
	assert.False(t, result.Photos[0].IsCover)
	assert.True(t, existing.IsCover)
	// A ordem continua a partir das fotos já existentes
	assert.Equal(t, 1, result.Photos[0].DisplayOrder)
	assert.Equal(t, 2, result.Photos[1].DisplayOrder)
}

func TestUploadIgnoraArquivosQueNaoSaoImagem(t *testing.T) {
	repo := newFakePhotoRepository()
	svc := newTestService(repo, newFakeStorage())

	files := []UploadFile{
		{Name: "manual.pdf", ContentType: "application/pdf", Data: []byte("pdf")},
		{Name: "foto.png", ContentType: "image/png", Data: []byte("png")},
	}

	result, err := svc.Upload(context.Background(), manager, "v1", files)

	require.NoError(t, err)
	assert.Equal(t, 1, result.Uploaded)
	require.Len(t, result.Photos, 1)
	assert.True(t, result.Photos[0].IsCover)
}

func TestSetCoverDesmarcaCapaAnterior(t *testing.T) {
	cover := NewPhoto("v1", "/uploads/a.jpg", true, 0)
	other := NewPhoto("v1", "/uploads/b.jpg", false, 1)
	repo := newFakePhotoRepository(cover, other)
	svc := newTestService(repo, newFakeStorage())

	p, err := svc.SetCover(context.Background(), manager, "v1", other.ID)

	require.NoError(t, err)
	assert.True(t, p.IsCover)
	assert.False(t, cover.IsCover)
}

func TestSetCoverFotoDeOutroVeiculo(t *testing.T) {
	p := NewPhoto("v2", "/uploads/a.jpg", true, 0)
	repo := newFakePhotoRepository(p)
	svc := newTestService(repo, newFakeStorage())

	_, err := svc.SetCover(context.Background(), manager, "v1", p.ID)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOrder(t *testing.T) {
	p := NewPhoto("v1", "/uploads/a.jpg", true, 0)
	repo := newFakePhotoRepository(p)
	svc := newTestService(repo, newFakeStorage())

	updated, err := svc.UpdateOrder(context.Background(), manager, "v1", p.ID, 5)

	require.NoError(t, err)
	assert.Equal(t, 5, updated.DisplayOrder)
}

func TestRemovePromoveNovaCapa(t *testing.T) {
	cover := NewPhoto("v1", "/uploads/a.jpg", true, 0)
	second := NewPhoto("v1", "/uploads/b.jpg", false, 1)
	third := NewPhoto("v1", "/uploads/c.jpg", false, 2)
	repo := newFakePhotoRepository(cover, second, third)
	files := newFakeStorage()
	svc := newTestService(repo, files)

	err := svc.Remove(context.Background(), manager, "v1", cover.ID)

	require.NoError(t, err)
	// A foto restante de menor ordem assume a capa
	assert.True(t, second.IsCover)
	assert.False(t, third.IsCover)
	assert.Equal(t, []string{"/uploads/a.jpg"}, files.removed)
}

func TestRemoveFotoQueNaoEraCapa(t *testing.T) {
	cover := NewPhoto("v1", "/uploads/a.jpg", true, 0)
	second := NewPhoto("v1", "/uploads/b.jpg", false, 1)
	repo := newFakePhotoRepository(cover, second)
	svc := newTestService(repo, newFakeStorage())

	err := svc.Remove(context.Background(), manager, "v1", second.ID)

	require.NoError(t, err)
	assert.True(t, cover.IsCover)
}

func TestListForaDoEscopo(t *testing.T) {
	svc := newTestService(newFakePhotoRepository(), newFakeStorage())

	_, err := svc.List(context.Background(), manager, "v2")

	assert.ErrorIs(t, err, scope.ErrForbidden)
}

func TestListOrdenadoPorExibicao(t *testing.T) {
	a := NewPhoto("v1", "/uploads/a.jpg", false, 2)
	b := NewPhoto("v1", "/uploads/b.jpg", true, 0)
	c := NewPhoto("v1", "/uploads/c.jpg", false, 1)
	repo := newFakePhotoRepository(a, b, c)
	svc := newTestService(repo, newFakeStorage())

	list, err := svc.List(context.Background(), manager, "v1")

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, c.ID, list[1].ID)
	assert.Equal(t, a.ID, list[2].ID)
}
