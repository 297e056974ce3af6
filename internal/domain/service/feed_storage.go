package service

import "context"

// FeedStorage writes generated price feeds to a bucket.
type FeedStorage interface {
	// WriteFeed stores data under key, replacing any previous object.
	WriteFeed(ctx context.Context, key string, data []byte, contentType string) error
}
