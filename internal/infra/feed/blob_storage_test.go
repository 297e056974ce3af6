package feed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_WriteFeed(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorage(bucket, slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, storage.WriteFeed(ctx, "feeds/prices.json", []byte(`{"devices":[]}`), "application/json"))
	require.NoError(t, storage.WriteFeed(ctx, "feeds/prices.json", []byte(`{"devices":[1]}`), "application/json"))

	data, err := bucket.ReadAll(ctx, "feeds/prices.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"devices":[1]}`, string(data))

	attrs, err := bucket.Attributes(ctx, "feeds/prices.json")
	require.NoError(t, err)
	assert.Equal(t, "application/json", attrs.ContentType)
}

func TestDisabledStorage(t *testing.T) {
	err := disabledStorage{}.WriteFeed(context.Background(), "k", nil, "application/json")
	assert.ErrorIs(t, err, ErrFeedDisabled)
}
