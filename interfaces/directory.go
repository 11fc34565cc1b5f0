package interfaces

import (
	"context"

	"dayzlookup/domain"
)

// Directory provides the full list of DayZ servers from the upstream server directory.
//
// Implemented by adapters/steam.Directory. Called from service.Lookup when a refresh is due.
//
//go:generate moq -stub -out mock/directory.go -pkg mock . Directory
type Directory interface {
	// FetchServers returns every server of the upstream directory, normalized.
	// Returns: ([]ServerInfo, nil) on success (possibly empty); (nil, error) on network error, non-200 status,
	// malformed JSON, missing fields or any record that can't be normalized. Never returns a partial list.
	FetchServers(ctx context.Context) ([]domain.ServerInfo, error)
}
