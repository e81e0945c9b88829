package storage

import (
	"context"
)

// Storage abstrai o armazenamento binário das fotos. A implementação local
// grava em disco; a interface deixa espaço para um adaptador de objeto
// remoto sem mudar os serviços.
type Storage interface {
	// Save grava o conteúdo sob o nome informado e retorna a URL pública
	Save(ctx context.Context, name string, data []byte) (string, error)

	// Remove apaga o arquivo referenciado pela URL retornada por Save
	Remove(ctx context.Context, url string) error
}
