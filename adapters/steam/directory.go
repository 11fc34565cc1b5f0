// Package steam fetches the DayZ server list from the Steam Web API.
package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"dayzlookup/domain"
	"dayzlookup/helpers"
	"dayzlookup/interfaces"
)

const (
	// DefaultBaseURL is the Steam GetServerList endpoint.
	DefaultBaseURL = "https://api.steampowered.com/IGameServersService/GetServerList/v1/"
	// DayZFilter selects servers of the DayZ application (app id 221100).
	DayZFilter = `\appid\221100`
	// ServerListLimit is large enough to return every DayZ server in one call.
	ServerListLimit = 100000
)

var _ interfaces.Directory = (*Directory)(nil)

// Directory implements interfaces.Directory on top of GetServerList.
type Directory struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewDirectory creates a Directory. Panics on empty baseURL or apiKey, or nil client.
//
// baseURL is the GetServerList URL (DefaultBaseURL in prod). client must carry a timeout,
// main builds it from UPSTREAM_TIMEOUT.
func NewDirectory(baseURL, apiKey string, client *http.Client) *Directory {
	return &Directory{
		baseURL: helpers.StrPanic(baseURL, "adapters.steam.directory.go: baseURL is required"),
		apiKey:  helpers.StrPanic(apiKey, "adapters.steam.directory.go: apiKey is required"),
		client:  helpers.NilPanic(client, "adapters.steam.directory.go: http client is required"),
	}
}

// FetchServers performs one GET baseURL?key=..&filter=\appid\221100&limit=100000 and normalizes every record.
//
// Returns: ([]domain.ServerInfo, nil) on 200 with a servers array (possibly empty); (nil, error) on network error,
// non-200 status, invalid JSON, missing response or servers field, or any record without addr/gameport.
func (d *Directory) FetchServers(ctx context.Context) ([]domain.ServerInfo, error) {
	reqURL, err := url.Parse(d.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid steam directory url: %w", err)
	}
	query := reqURL.Query()
	query.Set("key", d.apiKey)
	query.Set("filter", DayZFilter)
	query.Set("limit", strconv.Itoa(ServerListLimit))
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		// url.Error carries the request URL, which carries the API key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, fmt.Errorf("steam directory request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("steam directory returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("steam directory read failed: %w", err)
	}
	var raw serverListResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("steam directory returned invalid json: %w", err)
	}
	if raw.Response == nil {
		return nil, fmt.Errorf("steam directory response missing response field")
	}
	if raw.Response.Servers == nil {
		return nil, fmt.Errorf("steam directory response missing servers field")
	}

	servers, err := fromServerList(raw.Response.Servers)
	if err != nil {
		return nil, fmt.Errorf("steam directory returned invalid server: %w", err)
	}
	return servers, nil
}
