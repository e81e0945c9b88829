package dto

import (
	"time"

	"github.com/renato-dev-nws/autoshop-api/internal/domain/store"
)

// StoreRequest representa os dados de uma loja para criação ou atualização
type StoreRequest struct {
	Name     string  `json:"name" binding:"required"`
	CNPJ     string  `json:"cnpj" binding:"required"`
	Address  string  `json:"address" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	ParentID *string `json:"parent_id"`
}

// StoreResponse representa a resposta com dados de uma loja
type StoreResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CNPJ      string           `json:"cnpj"`
	Address   string           `json:"address"`
	Phone     string           `json:"phone"`
	ParentID  string           `json:"parent_id,omitempty"`
	Parent    *StoreResponse   `json:"parent,omitempty"`
	Children  []*StoreResponse `json:"children,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// PublicStoreResponse representa a projeção pública de uma loja, sem dados
// cadastrais sensíveis
type PublicStoreResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// ToStoreResponse converte uma loja do domínio para DTO de resposta,
// incluindo matriz e filiais quando carregadas
func ToStoreResponse(s *store.Store) *StoreResponse {
	resp := &StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		CNPJ:      s.CNPJ,
		Address:   s.Address,
		Phone:     s.Phone,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	if s.ParentID != nil {
		resp.ParentID = *s.ParentID
	}
	if s.Parent != nil {
		resp.Parent = &StoreResponse{
			ID:        s.Parent.ID,
			Name:      s.Parent.Name,
			CNPJ:      s.Parent.CNPJ,
			Address:   s.Parent.Address,
			Phone:     s.Parent.Phone,
			CreatedAt: s.Parent.CreatedAt,
			UpdatedAt: s.Parent.UpdatedAt,
		}
	}
	for _, child := range s.Children {
		resp.Children = append(resp.Children, &StoreResponse{
			ID:        child.ID,
			Name:      child.Name,
			CNPJ:      child.CNPJ,
			Address:   child.Address,
			Phone:     child.Phone,
			ParentID:  s.ID,
			CreatedAt: child.CreatedAt,
			UpdatedAt: child.UpdatedAt,
		})
	}

	return resp
}

// ToStoreListResponse converte uma lista de lojas do domínio para DTOs de resposta
func ToStoreListResponse(stores []*store.Store) []*StoreResponse {
	data := make([]*StoreResponse, len(stores))
	for i, s := range stores {
		data[i] = ToStoreResponse(s)
	}
	return data
}

// ToPublicStoreResponse converte uma loja do domínio para a projeção pública
func ToPublicStoreResponse(s *store.Store) PublicStoreResponse {
	return PublicStoreResponse{
		ID:      s.ID,
		Name:    s.Name,
		Address: s.Address,
		Phone:   s.Phone,
	}
}

// ToPublicStoreListResponse converte uma lista de lojas para a projeção pública
func ToPublicStoreListResponse(stores []*store.Store) []PublicStoreResponse {
	data := make([]PublicStoreResponse, len(stores))
	for i, s := range stores {
		data[i] = ToPublicStoreResponse(s)
	}
	return data
}
