package svc

import (
	"errors"
	"os"

	"github.com/gagliardetto/solana-go"
	"github.com/zeromicro/go-zero/core/logx"

	"clmm-gateway/internal/config"
	"clmm-gateway/internal/engine"
	"clmm-gateway/internal/events"
	"clmm-gateway/internal/router"
	"clmm-gateway/internal/rpcs"
	"clmm-gateway/internal/store"
)

type ServiceContext struct {
	Config config.Config

	Store  *store.Store
	Bus    *events.Bus
	Router *router.Router
}

func NewServiceContext(c config.Config) *ServiceContext {
	program, err := solana.PublicKeyFromBase58(c.Venue.EngineProgram)
	logx.Must(err)

	cli := rpcs.New(c.Venue.RpcEndpoint)
	eng := engine.NewRaydiumEngine(program, cli.RPC(), loadPayer())

	denylist, err := config.NewDenylist(c.Venue.DenylistFile)
	logx.Must(err)

	bus := events.NewBus()
	st := store.New()

	go logEvents(bus.Subscribe(256))

	return &ServiceContext{
		Config: c,
		Store:  st,
		Bus:    bus,
		Router: router.New(c.Venue, st, eng, bus, cli, denylist),
	}
}

func loadPayer() solana.PrivateKey {
	raw := os.Getenv("GATEWAY_PAYER_KEY")
	if raw == "" {
		logx.Must(errors.New("GATEWAY_PAYER_KEY not set"))
	}
	key, err := solana.PrivateKeyFromBase58(raw)
	logx.Must(err)
	return key
}

func logEvents(sub events.Subscriber) {
	for ev := range sub {
		logx.Infof("event %s: %+v", ev.Kind(), ev)
	}
}
