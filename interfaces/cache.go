package interfaces

import (
	"context"

	"dayzlookup/domain"
)

// MemoCache remembers resolved lookups for the lifetime of one directory snapshot.
//
//go:generate moq -stub -out mock/cache.go -pkg mock . MemoCache
type MemoCache interface {
	// Get returns the server remembered for key.
	// Returns:
	// 1) (info, true, nil) on hit;
	// 2) (zero, false, nil) on miss;
	// 3) (zero, false, internal_server_error) when the storage read fails or the stored value can't be decoded.
	Get(ctx context.Context, key domain.ServerKey) (domain.ServerInfo, bool, error)

	// Put remembers info under key until the next Clear.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when marshalling fails or when the storage write fails.
	Put(ctx context.Context, key domain.ServerKey, info domain.ServerInfo) error

	// Clear forgets every remembered server.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when the storage delete fails.
	Clear(ctx context.Context) error
}
