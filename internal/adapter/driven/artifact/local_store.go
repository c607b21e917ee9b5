package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/salesops/sales-rep-mailer-go/internal/domain/repository"
)

// LocalStore implementa o ArtifactRepository sobre um diretório local.
// O handle devolvido é o caminho absoluto do arquivo.
type LocalStore struct {
	dir string
}

// NewLocalStore cria um file store sobre o diretório informado (diretório
// corrente quando vazio).
func NewLocalStore(dir string) repository.ArtifactRepository {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Save(ctx context.Context, name string, content []byte) (string, error) {
	dir := s.dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating artifact directory '%s': %w", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return "", fmt.Errorf("error writing artifact %s: %w", name, err)
	}

	return filepath.Abs(path)
}
