// Package feed writes generated price feeds to object storage.
package feed

import (
	"context"
	"log/slog"

	"devicequote/config"
	domainerrors "devicequote/internal/domain/errors"
	"devicequote/internal/domain/service"
	"devicequote/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets in production
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
)

// ErrFeedDisabled is returned when no bucket is configured.
var ErrFeedDisabled = domainerrors.ErrFeedDisabled //nolint:gochecknoglobals

type blobStorage struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// NewBlobStorage wraps an opened bucket.
func NewBlobStorage(bucket *blob.Bucket, logger *slog.Logger) service.FeedStorage {
	return &blobStorage{bucket: bucket, logger: logger}
}

// WriteFeed replaces the object at key.
func (s *blobStorage) WriteFeed(ctx context.Context, key string, data []byte, contentType string) error {
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=300",
	}); err != nil {
		return errors.Wrapf(err, "failed to write feed %s", key)
	}

	s.logger.Info("Feed written", slog.String("key", key), slog.Int("bytes", len(data)))

	return nil
}

type disabledStorage struct{}

func (disabledStorage) WriteFeed(context.Context, string, []byte, string) error {
	return ErrFeedDisabled
}

// StorageParams holds dependencies for FeedStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFeedStorage opens the configured bucket and closes it on shutdown.
func NewFeedStorage(params StorageParams) (service.FeedStorage, error) {
	cfg := params.Config.Feed
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Feed bucket not configured, feed export disabled")

		return disabledStorage{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open feed bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, params.Logger), nil
}

// Module provides the feed storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFeedStorage),
)
