// api/util/cache_service.go

package util

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/dev-anuragv/skillboard/api/db"
	logger "github.com/dev-anuragv/skillboard/api/logging"
)

// ResultSchema declares the shape a cached payload deserializes into: a
// single record or a list of records. The writer and the reader of an entry
// share the declaration, so decoding is never guessed from the payload.
type ResultSchema interface {
	// New returns a pointer to a zero value of the declared shape.
	New() interface{}
}

type singleSchema[T any] struct{}

func (singleSchema[T]) New() interface{} { return new(T) }

// SingleOf declares a one-record result shape.
func SingleOf[T any]() ResultSchema { return singleSchema[T]{} }

type listSchema[T any] struct{}

func (listSchema[T]) New() interface{} { return new([]T) }

// ListOf declares a list-of-records result shape.
func ListOf[T any]() ResultSchema { return listSchema[T]{} }

// CacheService is a cache-aside layer over the key-value store. The store is
// advisory: a miss is never an error and every store failure degrades to
// "always compute", it never fails the request.
type CacheService struct {
	store db.KeyValueStore
	ttl   time.Duration
}

func NewCacheService(store db.KeyValueStore, ttl time.Duration) *CacheService {
	return &CacheService{store: store, ttl: ttl}
}

// KeyFor derives a deterministic key for a handler invocation. Only
// primitive-safe argument values participate; the rest are dropped so that
// request-scoped objects never leak into the key.
func (c *CacheService) KeyFor(handler string, args map[string]interface{}) string {
	filtered := make(map[string]interface{}, len(args))
	for k, v := range args {
		if primitiveSafe(v) {
			filtered[k] = v
		}
	}
	// encoding/json writes map keys in sorted order, which keeps the
	// serialization stable across calls.
	data, _ := json.Marshal(filtered)
	sum := sha256.Sum256(data)
	return fmt.Sprintf("cache:%s:%s", handler, hex.EncodeToString(sum[:]))
}

func primitiveSafe(v interface{}) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if !primitiveSafe(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return false
		}
		for _, k := range rv.MapKeys() {
			if !primitiveSafe(rv.MapIndex(k).Interface()) {
				return false
			}
		}
		return true
	}
	return false
}

// Fetch looks the key up and decodes it through schema. Absent keys, store
// failures and undecodable payloads all report a plain miss.
func (c *CacheService) Fetch(ctx context.Context, key string, schema ResultSchema) (interface{}, bool) {
	raw, err := c.store.Get(ctx, key)
	if errors.Is(err, db.ErrKeyNotFound) {
		return nil, false
	}
	if err != nil {
		logger.Warn("Cache read failed, treating as miss", zap.Error(err), zap.String("key", key))
		return nil, false
	}

	target := schema.New()
	if err := json.Unmarshal(raw, target); err != nil {
		logger.Warn("Cache entry undecodable, treating as miss", zap.Error(err), zap.String("key", key))
		return nil, false
	}
	return reflect.ValueOf(target).Elem().Interface(), true
}

// Store writes a computed value back, best effort.
func (c *CacheService) Store(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to serialize cache entry", zap.Error(err), zap.String("key", key))
		return
	}
	c.StoreRaw(ctx, key, raw)
}

// StoreRaw writes an already serialized payload back, best effort.
func (c *CacheService) StoreRaw(ctx context.Context, key string, raw []byte) {
	if err := c.store.Set(ctx, key, raw, c.ttl); err != nil {
		logger.Warn("Cache write failed", zap.Error(err), zap.String("key", key))
	}
}

// ReadThrough serves key from the cache or falls back to compute and writes
// the result back. compute runs at most once per miss and always on store
// failure; its error is the only one a caller can see.
func (c *CacheService) ReadThrough(ctx context.Context, key string, schema ResultSchema, compute func(context.Context) (interface{}, error)) (interface{}, error) {
	if value, ok := c.Fetch(ctx, key, schema); ok {
		return value, nil
	}
	value, err := compute(ctx)
	if err != nil {
		return nil, err
	}
	c.Store(ctx, key, value)
	return value, nil
}

// Invalidate drops every entry cached under the handler identity. Best
// effort: a failure leaves stale entries to age out via TTL.
func (c *CacheService) Invalidate(ctx context.Context, handler string) {
	pattern := fmt.Sprintf("cache:%s:*", handler)
	keys, err := c.store.Keys(ctx, pattern)
	if err != nil {
		logger.Warn("Cache invalidation scan failed", zap.Error(err), zap.String("handler", handler))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.store.Delete(ctx, keys...); err != nil {
		logger.Warn("Cache invalidation delete failed", zap.Error(err), zap.String("handler", handler))
		return
	}
	logger.Debug("Cache invalidated", zap.String("handler", handler), zap.Int("keys", len(keys)))
}
