package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

var C Config

type Config struct {
	Rest  RestConf
	Log   LogConf
	Venue VenueConf
}

type RestConf struct {
	rest.RestConf
}

type LogConf struct {
	logx.LogConf
}

// VenueConf is process-wide immutable configuration: loaded once at start,
// passed to components read-only, never mutated.
type VenueConf struct {
	EngineProgram      string `json:",default=devi51mZmdwUJGU9hjN27vEz64Gps7uUefqxg27EAtH"`
	RpcEndpoint        string `json:",default=https://api.mainnet-beta.solana.com"`
	MaxPriceImpactBps  uint64 `json:",default=1000"`
	MinimumLiquidity   uint64 `json:",default=1000"`
	DefaultSlippageBps uint64 `json:",default=100"`
	DenylistFile       string `json:",optional"`
}
