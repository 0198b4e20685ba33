package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Minio stores images as objects in a MinIO (or any S3-compatible) bucket.
type Minio struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinio(endpoint, accessKey, secretKey, bucket, publicURL string, useSSL bool) (*Minio, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to minio: %w", err)
	}

	return &Minio{client: client, bucket: bucket, publicURL: publicURL}, nil
}

func (m *Minio) Save(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error) {
	ext := filepath.Ext(filename)
	if err := validateExtension(ext); err != nil {
		return "", err
	}

	objectName := uuid.New().String() + ext

	_, err := m.client.PutObject(ctx, m.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return m.publicURL + "/" + m.bucket + "/" + objectName, nil
}
