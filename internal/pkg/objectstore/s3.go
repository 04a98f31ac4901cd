package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/piresc/locations/internal/pkg/logger"
	"github.com/piresc/locations/internal/pkg/models"
)

const s3Scheme = "s3://"

var ErrInvalidURI = errors.New("invalid s3 uri")

// ObjectGetter is the subset of the S3 API used to read import files
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Store opens import sources from the local filesystem or S3
type Store struct {
	client ObjectGetter
}

// NewStore wraps an existing S3 client
func NewStore(client ObjectGetter) *Store {
	return &Store{client: client}
}

// NewS3Store builds a Store from the default AWS credential chain
func NewS3Store(ctx context.Context, cfg models.S3Config) (*Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return NewStore(client), nil
}

// IsS3URI reports whether source points at S3
func IsS3URI(source string) bool {
	return strings.HasPrefix(source, s3Scheme)
}

// ParseURI splits s3://bucket/key into its parts
func ParseURI(uri string) (bucket, key string, err error) {
	if !IsS3URI(uri) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidURI, uri)
	}
	bucket, key, found := strings.Cut(strings.TrimPrefix(uri, s3Scheme), "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidURI, uri)
	}
	return bucket, key, nil
}

// Open returns a reader for a local path or an s3:// uri
func (s *Store) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !IsS3URI(source) {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", source, err)
		}
		return f, nil
	}

	if s == nil || s.client == nil {
		return nil, fmt.Errorf("s3 source %s requires an s3 client", source)
	}

	bucket, key, err := ParseURI(source)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3 object %s: %w", source, err)
	}

	logger.Info("Opened import source from S3",
		logger.String("bucket", bucket),
		logger.String("key", key))

	return out.Body, nil
}
