package storage

import (
	"context"
	"fmt"
	"io"
	"photoshare/internal/api/config"

	"github.com/minio/minio-go/v7"
)

// UploadPhoto stores the photo bytes and returns the public URL.
func UploadPhoto(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := Client.PutObject(ctx, Bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	return ObjectURL(objectName), nil
}

func RemovePhoto(ctx context.Context, objectName string) error {
	return Client.RemoveObject(ctx, Bucket, objectName, minio.RemoveObjectOptions{})
}

func ObjectURL(objectName string) string {
	cfg := config.Cfg.MinIO
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	if cfg.PublicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", cfg.PublicBaseURL, Bucket, objectName)
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, cfg.Endpoint, Bucket, objectName)
}
