package fipe

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/renato-dev-nws/autoshop-api/pkg/logger"
)

// As respostas FIPE mudam no máximo uma vez por mês; 24 horas de cache
// mantêm o proxy responsivo sem servir dados velhos por muito tempo
const cacheTTL = 24 * time.Hour

// Service é o proxy da tabela FIPE com cache. Falhas do cache não derrubam a
// consulta; a resposta vem do upstream e a falha vira aviso no log.
type Service struct {
	client *Client
	cache  Cache
	log    logger.Logger
}

// NewService cria uma nova instância de Service
func NewService(client *Client, cache Cache, log logger.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		log:    log,
	}
}

// Brands lista as marcas FIPE de um tipo de veículo (carros, motos,
// caminhoes)
func (s *Service) Brands(ctx context.Context, tipo string) (json.RawMessage, error) {
	key := fmt.Sprintf("fipe:%s:marcas", tipo)
	path := fmt.Sprintf("/%s/marcas", tipo)
	return s.cached(ctx, key, path)
}

// Models lista os modelos FIPE de uma marca
func (s *Service) Models(ctx context.Context, tipo, marca string) (json.RawMessage, error) {
	key := fmt.Sprintf("fipe:%s:%s:modelos", tipo, marca)
	path := fmt.Sprintf("/%s/marcas/%s/modelos", tipo, marca)
	return s.cached(ctx, key, path)
}

// Years lista os anos disponíveis de um modelo FIPE
func (s *Service) Years(ctx context.Context, tipo, marca, modelo string) (json.RawMessage, error) {
	key := fmt.Sprintf("fipe:%s:%s:%s:anos", tipo, marca, modelo)
	path := fmt.Sprintf("/%s/marcas/%s/modelos/%s/anos", tipo, marca, modelo)
	return s.cached(ctx, key, path)
}

// Value retorna os detalhes e o valor FIPE de um modelo em um ano
func (s *Service) Value(ctx context.Context, tipo, marca, modelo, ano string) (json.RawMessage, error) {
	key := fmt.Sprintf("fipe:%s:%s:%s:%s", tipo, marca, modelo, ano)
	path := fmt.Sprintf("/%s/marcas/%s/modelos/%s/anos/%s", tipo, marca, modelo, ano)
	return s.cached(ctx, key, path)
}

func (s *Service) cached(ctx context.Context, key, path string) (json.RawMessage, error) {
	if value, hit, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn("falha ao consultar cache FIPE", "key", key, "error", err)
	} else if hit {
		return value, nil
	}

	body, err := s.client.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, body, cacheTTL); err != nil {
		s.log.Warn("falha ao gravar cache FIPE", "key", key, "error", err)
	}

	return body, nil
}
