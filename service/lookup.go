package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync"

	"dayzlookup/domain"
	"dayzlookup/helpers"
	"dayzlookup/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ipv4Regexp accepts four dot separated decimal octets 0-255 without leading zeros.
var ipv4Regexp = regexp.MustCompile(`^((25[0-5]|(2[0-4]|1\d|[1-9]|)\d)\.){3}(25[0-5]|(2[0-4]|1\d|[1-9]|)\d)$`)

var portRegexp = regexp.MustCompile(`^[0-9]{1,5}$`)

var _ interfaces.ServerResolver = (*Lookup)(nil)

// Lookup answers "which server listens on address:port" from a snapshot of the upstream server directory.
//
// The snapshot is refetched on a lookup when the refresh policy says it is stale. Refreshes are serialized:
// a lookup that finds a refresh due waits for the one in flight instead of starting another. Installing a
// new snapshot and clearing the memo cache happen under one write lock, lookups read both under the read
// lock, so no lookup sees a memo entry that belongs to another snapshot.
type Lookup struct {
	directory interfaces.Directory
	memo      interfaces.MemoCache
	policy    *RefreshPolicy
	metrics   *Metrics
	logger    log.Logger

	refreshMu sync.Mutex

	mu        sync.RWMutex
	snapshot  []domain.ServerInfo // nil until the first successful fetch
	memoStale bool                // last Clear failed, memo must not be used
}

// NewLookup creates a Lookup with no snapshot. Panics on nil dependencies.
func NewLookup(
	directory interfaces.Directory,
	memo interfaces.MemoCache,
	policy *RefreshPolicy,
	metrics *Metrics,
	logger log.Logger,
) *Lookup {
	return &Lookup{
		directory: helpers.NilPanic(directory, "service.lookup.go: directory is required"),
		memo:      helpers.NilPanic(memo, "service.lookup.go: memo cache is required"),
		policy:    helpers.NilPanic(policy, "service.lookup.go: refresh policy is required"),
		metrics:   helpers.NilPanic(metrics, "service.lookup.go: metrics are required"),
		logger:    log.WithPrefix(helpers.NilPanic(logger, "service.lookup.go: logger is required"), "component", "Lookup"),
	}
}

// Resolve returns the server listening on address:port.
//
// Returns:
// 1) (info, nil) when the server is in the snapshot;
// 2) bad_parameter when address is not a strict IPv4 address or port is not an integer in 1-65535;
// 3) upstream_unavailable when no snapshot was ever fetched successfully;
// 4) entity_not_found when the snapshot has no such server.
func (l *Lookup) Resolve(ctx context.Context, address, port string) (domain.ServerInfo, error) {
	key, err := ParseServerKey(address, port)
	if err != nil {
		l.metrics.lookup("bad_parameter")
		return domain.ServerInfo{}, err
	}

	// Without a snapshot the lookup also waits for a refresh that may be in flight.
	if l.policy.Due() || l.Snapshot() == nil {
		l.refreshIfDue(ctx)
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.snapshot == nil {
		l.metrics.lookup("unavailable")
		return domain.ServerInfo{}, NewUpstreamUnavailableError("server directory is unavailable", nil)
	}

	if !l.memoStale {
		info, ok, err := l.memo.Get(ctx, key)
		if err != nil {
			level.Warn(l.logger).Log("msg", "memo cache read failed", "key", key, "err", err)
		} else if ok {
			l.metrics.lookup("memo_hit")
			return info, nil
		}
	}

	for _, info := range l.snapshot {
		if info.Address != key.Address || info.Port != key.Port {
			continue
		}
		if !l.memoStale {
			if err := l.memo.Put(ctx, key, info); err != nil {
				level.Warn(l.logger).Log("msg", "memo cache write failed", "key", key, "err", err)
			}
		}
		l.metrics.lookup("snapshot_hit")
		return info, nil
	}

	l.metrics.lookup("not_found")
	return domain.ServerInfo{}, NewEntityNotFoundError(fmt.Sprintf("server %s not found", key), nil)
}

// Refresh fetches the directory once, regardless of the refresh policy. On failure the previous snapshot
// stays in place and the error is returned. Called from cmd/main to warm up before serving.
func (l *Lookup) Refresh(ctx context.Context) error {
	l.refreshMu.Lock()
	defer l.refreshMu.Unlock()
	return l.refreshLocked(ctx)
}

// Snapshot returns the current directory snapshot, nil if none was fetched. Callers must not modify it.
func (l *Lookup) Snapshot() []domain.ServerInfo {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshot
}

func (l *Lookup) refreshIfDue(ctx context.Context) {
	l.refreshMu.Lock()
	defer l.refreshMu.Unlock()
	// Another lookup may have refreshed while this one waited for refreshMu.
	if !l.policy.Due() {
		return
	}
	_ = l.refreshLocked(ctx)
}

// refreshLocked must be called with refreshMu held.
func (l *Lookup) refreshLocked(ctx context.Context) error {
	l.policy.MarkAttempt()

	// The refresh is shared by every lookup waiting on refreshMu, so neither the fetch nor the memo clear
	// may die with the request that started it.
	ctx = context.WithoutCancel(ctx)
	servers, err := l.directory.FetchServers(ctx)
	if err != nil {
		l.metrics.fetch("error")
		level.Error(l.logger).Log("msg", "server directory fetch failed", "err", err)
		return fmt.Errorf("refresh failed to fetch server directory, err: %w", err)
	}
	if servers == nil {
		servers = []domain.ServerInfo{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.memoStale = false
	if err := l.memo.Clear(ctx); err != nil {
		l.memoStale = true
		level.Error(l.logger).Log("msg", "memo cache clear failed, bypassing memo until next refresh", "err", err)
	}
	l.snapshot = servers
	l.metrics.fetch("success")
	l.metrics.SnapshotServers.Set(float64(len(servers)))
	level.Info(l.logger).Log("msg", "server directory refreshed", "servers", len(servers))

	return nil
}

// ParseServerKey validates a lookup request and converts it to a ServerKey.
// Returns bad_parameter when address is not a strict IPv4 address or port is not a decimal integer in 1-65535.
func ParseServerKey(address, port string) (domain.ServerKey, error) {
	if !ipv4Regexp.MatchString(address) {
		return domain.ServerKey{}, NewBadParameterError(fmt.Sprintf("invalid address %q", address), nil)
	}
	if !portRegexp.MatchString(port) {
		return domain.ServerKey{}, NewBadParameterError(fmt.Sprintf("invalid port %q", port), nil)
	}
	p, err := strconv.Atoi(port)
	if err != nil || p < 1 || p > 65535 {
		return domain.ServerKey{}, NewBadParameterError(fmt.Sprintf("invalid port %q", port), err)
	}
	return domain.ServerKey{Address: address, Port: p}, nil
}
