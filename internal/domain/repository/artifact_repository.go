package repository

import "context"

// ArtifactRepository defines the interface for the durable file store.
// Save persiste o conteúdo gerado e devolve um handle recuperável (caminho
// local ou URI s3://), que é o que vai referenciado no e-mail de saída.
type ArtifactRepository interface {
	Save(ctx context.Context, name string, content []byte) (string, error)
}
