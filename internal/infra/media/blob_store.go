// Package media stores uploaded listing media in a blob bucket.
package media

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // local filesystem buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // in-memory buckets for tests

	"herenow/config"
	"herenow/internal/domain/lifecycle"
	"herenow/internal/domain/service"
	"herenow/internal/errors"
)

// blobStore implements MediaStore on top of a gocloud.dev blob bucket, so
// the same code serves local directories in development and GCS in
// production.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the media store, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the configured bucket and returns it as a MediaStore.
func NewBlobStore(params Params) (service.MediaStore, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket URL not configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open media bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Save writes the file under a generated key and returns the public URL.
func (s *blobStore) Save(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := uuid.NewString() + strings.ToLower(path.Ext(filename))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "open bucket writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "write media object")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "close bucket writer")
	}

	s.logger.Info("Stored media object",
		slog.String("key", key),
		slog.String("contentType", contentType),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Delete removes a previously saved file by its key.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "delete media object %s", key)
	}

	return nil
}
