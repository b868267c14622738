package services

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// Uploader stores an uploaded food image and returns a reference path or URL.
type Uploader interface {
	Save(ctx context.Context, data []byte, contentType string) (string, error)
}

// S3Storage uploads food images to an S3 bucket, optionally served through
// a CDN base URL.
type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

func NewS3Storage(ctx context.Context, region, bucket, baseURL string) (*S3Storage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &S3Storage{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (s *S3Storage) Save(ctx context.Context, data []byte, contentType string) (string, error) {
	key := "food-images/" + imageFilename(contentType)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}
	if s.baseURL != "" {
		return s.baseURL + "/" + key, nil
	}
	return key, nil
}

// LocalStorage writes images to a directory on disk. Development fallback
// when no bucket is configured.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(_ context.Context, data []byte, contentType string) (string, error) {
	path := filepath.Join(s.dir, imageFilename(contentType))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func imageFilename(contentType string) string {
	return fmt.Sprintf("%s_%s%s",
		time.Now().Format("20060102_150405"),
		uuid.NewString()[:8],
		extensionFor(contentType))
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	return ".img"
}
