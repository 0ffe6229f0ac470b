// Package media stores uploaded images in a blob bucket.
package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"capsule/config"
	"capsule/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// blobStorage implements MediaStorage on top of a gocloud blob bucket. The
// bucket URL scheme picks the backend (file://, gs://), so local
// development and production share one code path.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StorageParams holds dependencies for blobStorage, injected by Fx.
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorage opens the configured bucket and registers its shutdown hook.
func NewBlobStorage(params StorageParams) (service.MediaStorage, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	storage := &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing media bucket")

			return storage.bucket.Close()
		},
	})

	return storage, nil
}

// Upload writes the content under a collision-free key and returns the
// public URL for it.
func (s *blobStorage) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := fmt.Sprintf("uploads/%s/%s%s",
		time.Now().UTC().Format("2006/01"),
		uuid.NewString(),
		strings.ToLower(path.Ext(filename)),
	)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}
	if _, err := io.Copy(w, content); err != nil {
		w.Close()

		return "", errors.Wrap(err, "failed to write upload")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize upload")
	}

	s.logger.Info("Media uploaded", slog.String("key", key))

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the bucket. The Fx hook normally does this; Close exists
// for callers outside the Fx lifecycle.
func (s *blobStorage) Close() error {
	return s.bucket.Close()
}
