package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage grava arquivos em um diretório local e os serve sob um
// prefixo de URL fixo
type LocalStorage struct {
	baseDir   string
	urlPrefix string
}

// NewLocalStorage cria o diretório base se necessário e retorna o storage
func NewLocalStorage(baseDir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("falha ao criar diretório de upload: %w", err)
	}

	return &LocalStorage{
		baseDir:   baseDir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
	}, nil
}

// Save implementa Storage.Save
func (s *LocalStorage) Save(_ context.Context, name string, data []byte) (string, error) {
	// O nome vem de geração interna, mas filepath.Base barra qualquer
	// tentativa de escapar do diretório
	name = filepath.Base(name)

	path := filepath.Join(s.baseDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("falha ao gravar arquivo: %w", err)
	}

	return s.urlPrefix + "/" + name, nil
}

// Remove implementa Storage.Remove
func (s *LocalStorage) Remove(_ context.Context, url string) error {
	name := filepath.Base(url)

	path := filepath.Join(s.baseDir, name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("falha ao remover arquivo: %w", err)
	}

	return nil
}
