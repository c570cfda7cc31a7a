package minio

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/config"
	"github.com/Yashwanth-Nallapuneni/DocGuardVault-BackEnd/internal/core/domain"
)

// Adapter is a content-addressed store backed by minio
type Adapter struct {
	client *minio.Client
	config config.MinioConfig
	logger *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &Adapter{client: client, config: cfg, logger: logger}, nil
}

// Save streams content into the bucket and addresses it by its SHA-256
// digest. The content is staged under a random key while the digest is
// computed, then moved to its content-addressed key, so the same bytes always
// land under the same pointer.
func (a *Adapter) Save(ctx context.Context, content io.Reader, size int64, contentType string) (domain.FileHash, string, error) {
	stagingKey := "staging/" + uuid.New().String()

	hasher := sha256.New()
	_, err := a.client.PutObject(ctx, a.config.BucketName, stagingKey, io.TeeReader(content, hasher), size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return domain.FileHash{}, "", fmt.Errorf("failed to stage object: %w", err)
	}

	var hash domain.FileHash
	copy(hash[:], hasher.Sum(nil))
	fileKey := "content/" + hex.EncodeToString(hash[:])

	src := minio.CopySrcOptions{Bucket: a.config.BucketName, Object: stagingKey}
	dst := minio.CopyDestOptions{Bucket: a.config.BucketName, Object: fileKey}
	if _, err := a.client.CopyObject(ctx, dst, src); err != nil {
		return domain.FileHash{}, "", fmt.Errorf("failed to move staged object: %w", err)
	}

	if err := a.client.RemoveObject(ctx, a.config.BucketName, stagingKey, minio.RemoveObjectOptions{}); err != nil {
		a.logger.Warn("failed to remove staged object",
			slog.String("stagingKey", stagingKey),
			slog.String("error", err.Error()))
	}

	return hash, fileKey, nil
}

// PresignedDownload generates a presigned URL for downloading stored content
func (a *Adapter) PresignedDownload(ctx context.Context, pointer string) (string, *time.Time, error) {
	presignedURL, err := a.client.PresignedGetObject(ctx, a.config.BucketName, pointer, a.config.DownloadSignedURLDuration, nil)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate presigned download URL: %w", err)
	}

	expiresAt := time.Now().Add(a.config.DownloadSignedURLDuration)
	return presignedURL.String(), &expiresAt, nil
}
