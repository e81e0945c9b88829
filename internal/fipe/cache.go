package fipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache guarda respostas FIPE já consultadas
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RedisCache implementa Cache sobre Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache cria um cache FIPE sobre a conexão Redis informada
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get busca uma resposta no cache; o segundo retorno indica se houve acerto
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("falha ao ler cache FIPE: %w", err)
	}
	return value, true, nil
}

// Set grava uma resposta no cache com o prazo de validade informado
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("falha ao gravar cache FIPE: %w", err)
	}
	return nil
}
