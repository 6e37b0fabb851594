// Package storage provides blob storage for uploaded images backed by gocloud.dev.
package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mealkit/config"
	"mealkit/internal/domain/service"
	"mealkit/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// fileStore implements service.FileStore on top of a gocloud blob bucket.
// The bucket is backed by the local filesystem; swapping the opener for
// s3blob or gcsblob requires no caller changes.
type fileStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// New opens the upload bucket and registers its shutdown hook.
func New(params Params) (service.FileStore, error) {
	cfg := params.Config.Upload
	if cfg == nil || cfg.Dir == "" {
		return nil, errors.New("upload directory must be configured")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload directory")
	}

	abs, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve upload directory")
	}

	bucket, err := fileblob.OpenBucket(abs, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open upload bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Upload bucket opened", slog.String("dir", abs))

	return &fileStore{
		bucket:  bucket,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

// Save writes the content under the given key and returns the public URL.
func (s *fileStore) Save(ctx context.Context, key, contentType string, content io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close blob writer")
	}

	return s.baseURL + "/" + key, nil
}

// Delete removes the blob stored under the key. Missing blobs are not an error.
func (s *fileStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}
