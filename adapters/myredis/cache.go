package myredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dayzlookup/domain"
	"dayzlookup/interfaces"
	"dayzlookup/service"

	"github.com/go-redis/redis/v8"
)

const clearBatchSize = 500

var _ interfaces.MemoCache = (*memoCache)(nil)

// memoCache stores resolved servers as JSON under prefix:address:port.
// Every process needs its own prefix: Clear removes the whole prefix when that process installs a new snapshot.
type memoCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewMemoCache creates redis implementation of interfaces.MemoCache. Entries expire after ttl (0 keeps them until Clear).
func NewMemoCache(client redis.UniversalClient, prefix string, ttl time.Duration) *memoCache {
	return &memoCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *memoCache) Get(ctx context.Context, key domain.ServerKey) (domain.ServerInfo, bool, error) {
	bytes, err := r.client.Get(ctx, r.generateKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.ServerInfo{}, false, nil
	}
	if err != nil {
		return domain.ServerInfo{}, false, service.NewInternalServerError("Redis read key error", fmt.Errorf("can't read server from redis (key='%s'), err: %w", key, err))
	}

	var info domain.ServerInfo
	if err := json.Unmarshal(bytes, &info); err != nil {
		return domain.ServerInfo{}, false, service.NewInternalServerError("Redis unmarshal item error", fmt.Errorf("can't unmarshal server (key='%s'), err: %w", key, err))
	}

	return info, true, nil
}

func (r *memoCache) Put(ctx context.Context, key domain.ServerKey, info domain.ServerInfo) error {
	bytes, err := json.Marshal(info)
	if err != nil {
		return service.NewInternalServerError("Redis marshal item error", fmt.Errorf("can't marshal server %s, err: %w", key, err))
	}

	err = r.client.Set(ctx, r.generateKey(key), bytes, r.ttl).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write server to redis (key='%s'), err: %w", key, err))
	}

	return nil
}

// Clear scans every key under the prefix and deletes them in batches.
func (r *memoCache) Clear(ctx context.Context) error {
	iter := r.client.Scan(ctx, 0, r.prefix+":*", clearBatchSize).Iterator()
	batch := make([]string, 0, clearBatchSize)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == clearBatchSize {
			if err := r.client.Del(ctx, batch...).Err(); err != nil {
				return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete memo keys from redis, err: %w", err))
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return service.NewInternalServerError("Redis scan keys error", fmt.Errorf("redis scan keys error, err: %w", err))
	}
	if len(batch) > 0 {
		if err := r.client.Del(ctx, batch...).Err(); err != nil {
			return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete memo keys from redis, err: %w", err))
		}
	}

	return nil
}

func (r *memoCache) generateKey(key domain.ServerKey) string {
	return r.prefix + ":" + key.String()
}
