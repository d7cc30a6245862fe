package statService

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"propSettler/services/cacheService"
	"propSettler/services/common"
)

// ErrStatUnavailable covers every way a provider can fail to produce a usable
// number: transport errors, non-final games, unmatched players, missing fields.
// The sweep turns it into a needs_review record instead of retrying.
var ErrStatUnavailable = errors.New("stat unavailable")

// Adapter fetches one actual statistic value for a finished game. extraHint is an
// optional team abbreviation used to narrow the player search.
type Adapter interface {
	Sport() string
	GetStat(ctx context.Context, externalGameID, playerName, statKey, extraHint string) (float64, error)
}

const (
	SportHockey     = "hockey"
	SportBaseball   = "baseball"
	SportBasketball = "basketball"
)

type Registry struct {
	adapters map[string]Adapter
}

func NewRegistry(cache *cacheService.PayloadCache, log *slog.Logger) *Registry {
	r := &Registry{adapters: make(map[string]Adapter)}
	for _, a := range []Adapter{
		&NHLAdapter{Cache: cache, Log: log},
		&MLBAdapter{Cache: cache, Log: log},
		&ESPNBasketballAdapter{Cache: cache, Log: log},
	} {
		r.adapters[a.Sport()] = a
	}
	return r
}

// RegistryOf builds a registry from explicit adapters, used by tests and by any
// deployment that only settles a subset of sports.
func RegistryOf(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[string]Adapter)}
	for _, a := range adapters {
		r.adapters[a.Sport()] = a
	}
	return r
}

func (r *Registry) AdapterFor(sport string) (Adapter, bool) {
	a, ok := r.adapters[sport]
	return a, ok
}

// fetchPayload reads a provider URL through the shared payload cache. Cache misses
// and cache absence both fall through to a live request.
func fetchPayload(ctx context.Context, cache *cacheService.PayloadCache, cacheKey, url string) ([]byte, error) {
	if payload, ok := cache.Get(ctx, cacheKey); ok {
		return payload, nil
	}

	resp, err := common.ProviderGet(ctx, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	cache.Set(ctx, cacheKey, payload)
	return payload, nil
}
