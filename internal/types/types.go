package types

type InitPoolRequest struct {
	Authority        string `json:"authority"`
	TokenMint0       string `json:"tokenMint0"`
	TokenMint1       string `json:"tokenMint1"`
	TokenVault0      string `json:"tokenVault0"`
	TokenVault1      string `json:"tokenVault1"`
	ObservationKey   string `json:"observationKey"`
	TickSpacing      int32  `json:"tickSpacing"`
	InitialSqrtPrice string `json:"initialSqrtPrice"`
	FeeRate          uint32 `json:"feeRate,optional"`
}

type InitPoolResponse struct {
	PoolId string `json:"poolId"`
}

type GetPoolRequest struct {
	PoolId string `path:"poolId"`
}

type PoolView struct {
	PoolId           string `json:"poolId"`
	Authority        string `json:"authority"`
	TokenMint0       string `json:"tokenMint0"`
	TokenMint1       string `json:"tokenMint1"`
	TickSpacing      int32  `json:"tickSpacing"`
	FeeRate          uint32 `json:"feeRate"`
	Liquidity        string `json:"liquidity"`
	CurrentSqrtPrice string `json:"currentSqrtPrice"`
	CurrentTickIndex int32  `json:"currentTickIndex"`
	IsPaused         bool   `json:"isPaused"`
	LastUpdated      int64  `json:"lastUpdated"`
}

type PausePoolRequest struct {
	PoolId    string `json:"poolId"`
	Authority string `json:"authority"`
	Paused    bool   `json:"paused"`
}

type RefreshPoolRequest struct {
	PoolId string `json:"poolId"`
}

type SwapRequest struct {
	PoolId               string `json:"poolId"`
	Amount               uint64 `json:"amount"`
	OtherAmountThreshold uint64 `json:"otherAmountThreshold,optional"`
	// ApplyDefaultSlippage asks the gateway to fill otherAmountThreshold
	// from the venue's default tolerance before admission. Without it a
	// zero threshold is taken literally.
	ApplyDefaultSlippage bool `json:"applyDefaultSlippage,optional"`
	SqrtPriceLimit       string `json:"sqrtPriceLimit,optional"`
	IsBaseInput          bool   `json:"isBaseInput,optional"`
	Payer                string `json:"payer"`
	AmmConfig            string `json:"ammConfig"`
	InputTokenAccount    string `json:"inputTokenAccount,optional"`
	OutputTokenAccount   string `json:"outputTokenAccount,optional"`
	InputVault           string `json:"inputVault"`
	OutputVault          string `json:"outputVault"`
	ObservationState     string `json:"observationState"`
	InputVaultMint       string `json:"inputVaultMint"`
	OutputVaultMint      string `json:"outputVaultMint"`
}

type SwapResponse struct {
	PriceImpact uint64 `json:"priceImpact"`
}

type LiquidityRequest struct {
	PoolId         string `json:"poolId"`
	Owner          string `json:"owner"`
	LiquidityDelta string `json:"liquidityDelta"`
	TickLower      int32  `json:"tickLower"`
	TickUpper      int32  `json:"tickUpper"`
	Amount0        uint64 `json:"amount0"`
	Amount1        uint64 `json:"amount1"`
}

type LiquidityResponse struct {
	PoolId string `json:"poolId"`
}
