package artifact

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/salesops/sales-rep-mailer-go/internal/domain/repository"
	"github.com/salesops/sales-rep-mailer-go/internal/shared/types"
)

// S3Store implementa o ArtifactRepository sobre um bucket S3. O handle
// devolvido é a URI s3://bucket/key do objeto.
type S3Store struct {
	cfg    types.ArtifactConfig
	client *s3.Client
	mu     sync.Mutex
}

// NewS3Store cria um file store sobre o bucket configurado. O cliente é
// criado de forma preguiçosa no primeiro Save.
func NewS3Store(cfg types.ArtifactConfig) repository.ArtifactRepository {
	return &S3Store{cfg: cfg}
}

func (s *S3Store) getClient(ctx context.Context) (*s3.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{}
	if s.cfg.Profile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(s.cfg.Profile))
	}
	if s.cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(s.cfg.Region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config for artifact store: %w", err)
	}

	s.client = s3.NewFromConfig(cfg)
	return s.client, nil
}

func (s *S3Store) Save(ctx context.Context, name string, content []byte) (string, error) {
	if s.cfg.Bucket == "" {
		return "", fmt.Errorf("artifact store: s3 backend requires a bucket")
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	key := name
	if s.cfg.Prefix != "" {
		key = path.Join(s.cfg.Prefix, name)
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(content),
	})
	if err != nil {
		return "", fmt.Errorf("error uploading artifact %s to s3: %w", name, err)
	}

	return fmt.Sprintf("s3://%s/%s", s.cfg.Bucket, key), nil
}
