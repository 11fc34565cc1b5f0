package interfaces

import (
	"context"

	"dayzlookup/domain"
)

// ServerResolver answers lookups for the HTTP handlers.
//
// Implemented by service.Lookup.
//
//go:generate moq -stub -out mock/resolver.go -pkg mock . ServerResolver
type ServerResolver interface {
	// Resolve returns the server listening on address:port.
	// Returns: (info, nil) on hit; bad_parameter for a malformed address or port; upstream_unavailable when
	// no server list could ever be fetched; entity_not_found when the server is not listed.
	Resolve(ctx context.Context, address, port string) (domain.ServerInfo, error)
}
