package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/qmlgo/qheart/internal/domain"
)

// Source provides the raw CSV bytes for a dataset
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// NewSource picks a source implementation from the dataset path.
// Paths of the form s3://bucket/key download from S3; everything else is a
// local file path.
func NewSource(path string) Source {
	if strings.HasPrefix(path, "s3://") {
		return &S3Source{URI: path}
	}
	return &FileSource{Path: path}
}

// Load opens the source, parses and validates the CSV, and returns the
// dataset.
func Load(ctx context.Context, src Source) (*domain.Dataset, error) {
	r, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return Parse(r)
}

// FileSource reads the dataset from the local filesystem
type FileSource struct {
	Path string
}

// Open opens the CSV file
func (s *FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file %s: %w", s.Path, err)
	}
	return f, nil
}

// S3Source downloads the dataset object from S3
type S3Source struct {
	URI string // s3://bucket/key
}

// Open downloads the object into memory and returns a reader over it.
// The dataset is small (under a megabyte) so buffering it is fine.
func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	bucket, key, err := splitS3URI(s.URI)
	if err != nil {
		return nil, err
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	downloader := manager.NewDownloader(client)

	buf := manager.NewWriteAtBuffer(nil)
	if _, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		return nil, fmt.Errorf("failed to download dataset %s: %w", s.URI, err)
	}

	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}

func splitS3URI(uri string) (bucket, key string, err error) {
	trimmed := strings.TrimPrefix(uri, "s3://")
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid s3 URI %q, expected s3://bucket/key", uri)
	}
	return parts[0], parts[1], nil
}
