package router

import (
	"context"

	"github.com/gagliardetto/solana-go"

	"clmm-gateway/internal/config"
	"clmm-gateway/internal/engine"
	"clmm-gateway/internal/events"
	"clmm-gateway/internal/store"
)

// AccountFetcher reads raw account data from the chain. Only the
// observe/update path uses it; admission never fetches.
type AccountFetcher interface {
	FetchAccount(ctx context.Context, key solana.PublicKey) ([]byte, error)
}

// Router sequences validation, risk estimation and delegation to the
// execution engine. It owns no execution logic: a rejected request performs
// zero mutation and zero external calls, and an accepted one invokes the
// engine exactly once.
type Router struct {
	venue    config.VenueConf
	store    *store.Store
	engine   engine.Engine
	bus      *events.Bus
	fetcher  AccountFetcher
	denylist *config.Denylist
}

func New(venue config.VenueConf, st *store.Store, eng engine.Engine, bus *events.Bus, fetcher AccountFetcher, denylist *config.Denylist) *Router {
	return &Router{
		venue:    venue,
		store:    st,
		engine:   eng,
		bus:      bus,
		fetcher:  fetcher,
		denylist: denylist,
	}
}

func (r *Router) denied(pool solana.PublicKey) bool {
	return r.denylist != nil && r.denylist.Contains(pool)
}
