// Package cache holds the per-device pricing data cache.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"devicequote/internal/domain/entity"
	"devicequote/internal/domain/repository"
	"devicequote/internal/errors"
	"devicequote/internal/infra/metrics"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// Options tunes a DeviceDataCache.
type Options struct {
	TTL          time.Duration
	FetchTimeout time.Duration

	// Workers bounds concurrent loads in GetManyDeviceData
	Workers int
}

// entry is never mutated after it is stored.
type entry struct {
	dataset   *entity.DeviceDataset
	expiresAt time.Time
}

// DeviceDataCache caches whole device datasets with a TTL. Hits never take a
// lock. Concurrent misses for one device share a single store read, and a
// load that started before an invalidation is returned to its callers but not
// stored.
type DeviceDataCache struct {
	store   repository.PriceRepository
	opts    Options
	metrics *metrics.Registry
	logger  *slog.Logger
	now     func() time.Time

	entries sync.Map // device id -> *entry
	group   singleflight.Group

	mu       sync.Mutex
	epoch    uint64
	gens     map[string]uint64
	inflight map[string]int // device id -> running loads
}

// New creates a DeviceDataCache reading from store.
func New(store repository.PriceRepository, opts Options, reg *metrics.Registry, logger *slog.Logger) *DeviceDataCache {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}

	return &DeviceDataCache{
		store:   store,
		opts:    opts,
		metrics: reg,
		logger:  logger,
		now:      time.Now,
		gens:     make(map[string]uint64),
		inflight: make(map[string]int),
	}
}

// GetDeviceData returns the dataset for deviceID from cache, loading it on a miss.
func (c *DeviceDataCache) GetDeviceData(ctx context.Context, deviceID string) (*entity.DeviceDataset, error) {
	if ds, ok := c.lookup(deviceID); ok {
		c.metrics.CacheHits.Inc()

		return ds, nil
	}
	c.metrics.CacheMisses.Inc()

	leader := false
	ch := c.group.DoChan(deviceID, func() (any, error) {
		leader = true

		// A previous flight may have filled the entry between our lookup and now.
		if ds, ok := c.lookup(deviceID); ok {
			return ds, nil
		}

		gen := c.startLoad(deviceID)
		defer c.finishLoad(deviceID)

		ds, err := c.load(ctx, deviceID)
		if err != nil {
			return nil, err
		}
		c.storeIfCurrent(deviceID, gen, ds)

		return ds, nil
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-ch:
		if res.Err == nil {
			ds, _ := res.Val.(*entity.DeviceDataset)

			return ds, nil
		}
		if leader || errors.Is(res.Err, repository.ErrDeviceNotFound) {
			return nil, res.Err
		}

		// The shared load failed on someone else's behalf; try once on our own.
		deviceLogger(c.logger, deviceID).Warn("shared device data load failed, retrying directly",
			slog.Any("error", res.Err),
		)

		return c.load(ctx, deviceID)
	}
}

// GetManyDeviceData loads unique device ids concurrently. Unknown devices are
// omitted; any other failure fails the whole batch.
func (c *DeviceDataCache) GetManyDeviceData(ctx context.Context, deviceIDs []string) (map[string]*entity.DeviceDataset, error) {
	result := make(map[string]*entity.DeviceDataset, len(deviceIDs))

	var mu sync.Mutex
	seen := make(map[string]struct{}, len(deviceIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Workers)

	for _, id := range deviceIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		g.Go(func() error {
			ds, err := c.GetDeviceData(gctx, id)
			if errors.Is(err, repository.ErrDeviceNotFound) {
				return nil
			}
			if err != nil {
				return err
			}

			mu.Lock()
			result[id] = ds
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// Invalidate drops every cached price of deviceID. A load already in flight
// still answers its callers but is not stored.
func (c *DeviceDataCache) Invalidate(deviceID string) {
	c.mu.Lock()
	c.gens[deviceID]++
	c.entries.Delete(deviceID)
	c.mu.Unlock()

	c.group.Forget(deviceID)
	c.metrics.CacheInvalidations.Inc()
}

// InvalidateAll drops every entry and detaches every running load, cached
// or not, so later callers start a fresh read.
func (c *DeviceDataCache) InvalidateAll() {
	c.mu.Lock()
	c.epoch++
	c.entries.Range(func(key, _ any) bool {
		c.entries.Delete(key)
		id, _ := key.(string)
		c.group.Forget(id)

		return true
	})
	for id := range c.inflight {
		c.group.Forget(id)
	}
	c.mu.Unlock()

	c.metrics.CacheInvalidations.Inc()
}

func (c *DeviceDataCache) lookup(deviceID string) (*entity.DeviceDataset, bool) {
	v, ok := c.entries.Load(deviceID)
	if !ok {
		return nil, false
	}
	e, _ := v.(*entry)
	if e == nil || !c.now().Before(e.expiresAt) {
		return nil, false
	}

	return e.dataset, true
}

type generation struct {
	epoch uint64
	gen   uint64
}

// startLoad records a running load and returns the generation it reads at.
func (c *DeviceDataCache) startLoad(deviceID string) generation {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inflight[deviceID]++

	return generation{epoch: c.epoch, gen: c.gens[deviceID]}
}

func (c *DeviceDataCache) finishLoad(deviceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inflight[deviceID]--; c.inflight[deviceID] <= 0 {
		delete(c.inflight, deviceID)
	}
}

func (c *DeviceDataCache) storeIfCurrent(deviceID string, gen generation, ds *entity.DeviceDataset) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epoch != gen.epoch || c.gens[deviceID] != gen.gen {
		deviceLogger(c.logger, deviceID).Debug("discarding device data loaded before invalidation")

		return
	}

	c.entries.Store(deviceID, &entry{
		dataset:   ds,
		expiresAt: c.now().Add(c.opts.TTL),
	})
}

// load reads the store. The read is detached from the caller's cancellation
// because other callers may be waiting on it, and bounded by FetchTimeout.
func (c *DeviceDataCache) load(ctx context.Context, deviceID string) (*entity.DeviceDataset, error) {
	fetchCtx := context.WithoutCancel(ctx)
	if c.opts.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(fetchCtx, c.opts.FetchTimeout)
		defer cancel()
	}

	start := c.now()
	c.metrics.CacheStoreReads.Inc()

	ds, err := c.store.FindDeviceDataset(fetchCtx, deviceID)
	c.metrics.CacheFetchSec.Observe(c.now().Sub(start).Seconds())
	if err != nil {
		if !errors.Is(err, repository.ErrDeviceNotFound) {
			c.metrics.CacheStoreErrors.Inc()
		}

		return nil, err
	}

	return ds, nil
}

func deviceLogger(logger *slog.Logger, deviceID string) *slog.Logger {
	return logger.With(slog.String("device_id", deviceID))
}
