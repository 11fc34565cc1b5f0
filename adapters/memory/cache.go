// Package memory is the in-process memo cache used when no Redis is configured.
package memory

import (
	"context"
	"sync"

	"dayzlookup/domain"
	"dayzlookup/interfaces"
)

var _ interfaces.MemoCache = (*Cache)(nil)

// Cache is a map based interfaces.MemoCache. It never fails.
type Cache struct {
	mu    sync.RWMutex
	items map[domain.ServerKey]domain.ServerInfo
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{items: make(map[domain.ServerKey]domain.ServerInfo)}
}

func (c *Cache) Get(_ context.Context, key domain.ServerKey) (domain.ServerInfo, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	info, ok := c.items[key]
	return info, ok, nil
}

func (c *Cache) Put(_ context.Context, key domain.ServerKey, info domain.ServerInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = info
	return nil
}

func (c *Cache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[domain.ServerKey]domain.ServerInfo)
	return nil
}

// Len returns the number of remembered servers.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
