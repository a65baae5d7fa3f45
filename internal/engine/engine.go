package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"clmm-gateway/internal/clmm"
)

// ErrMissingAccount reports an unset reference in a swap account set.
var ErrMissingAccount = errors.New("missing account reference")

// Engine is the execution capability the router holds a reference to. It
// owns the actual CLMM math and token custody; the gateway only hands it
// admitted requests. Implementations must make exactly one attempt — the
// call moves value and is not idempotent, so retries belong to the caller.
type Engine interface {
	ExecuteSwap(ctx context.Context, accounts SwapAccounts, params clmm.SwapV2Params) error
}

// SwapAccounts is the ordered resource set the engine's calling convention
// requires. Reordering or omitting any reference is a protocol break.
type SwapAccounts struct {
	Payer              solana.PublicKey
	AmmConfig          solana.PublicKey
	PoolState          solana.PublicKey
	InputTokenAccount  solana.PublicKey
	OutputTokenAccount solana.PublicKey
	InputVault         solana.PublicKey
	OutputVault        solana.PublicKey
	ObservationState   solana.PublicKey
	TokenProgram       solana.PublicKey
	TokenProgram2022   solana.PublicKey
	MemoProgram        solana.PublicKey
	InputVaultMint     solana.PublicKey
	OutputVaultMint    solana.PublicKey
}

// Metas lays the accounts out in the engine's fixed order.
func (a SwapAccounts) Metas() solana.AccountMetaSlice {
	return solana.AccountMetaSlice{
		{PublicKey: a.Payer, IsSigner: true, IsWritable: false},
		{PublicKey: a.AmmConfig, IsSigner: false, IsWritable: false},
		{PublicKey: a.PoolState, IsSigner: false, IsWritable: true},
		{PublicKey: a.InputTokenAccount, IsSigner: false, IsWritable: true},
		{PublicKey: a.OutputTokenAccount, IsSigner: false, IsWritable: true},
		{PublicKey: a.InputVault, IsSigner: false, IsWritable: true},
		{PublicKey: a.OutputVault, IsSigner: false, IsWritable: true},
		{PublicKey: a.ObservationState, IsSigner: false, IsWritable: true},
		{PublicKey: a.TokenProgram, IsSigner: false, IsWritable: false},
		{PublicKey: a.TokenProgram2022, IsSigner: false, IsWritable: false},
		{PublicKey: a.MemoProgram, IsSigner: false, IsWritable: false},
		{PublicKey: a.InputVaultMint, IsSigner: false, IsWritable: false},
		{PublicKey: a.OutputVaultMint, IsSigner: false, IsWritable: false},
	}
}

// Validate rejects account sets with unset references before any call is
// constructed.
func (a SwapAccounts) Validate() error {
	refs := []struct {
		name string
		key  solana.PublicKey
	}{
		{"payer", a.Payer},
		{"ammConfig", a.AmmConfig},
		{"poolState", a.PoolState},
		{"inputTokenAccount", a.InputTokenAccount},
		{"outputTokenAccount", a.OutputTokenAccount},
		{"inputVault", a.InputVault},
		{"outputVault", a.OutputVault},
		{"observationState", a.ObservationState},
		{"tokenProgram", a.TokenProgram},
		{"tokenProgram2022", a.TokenProgram2022},
		{"memoProgram", a.MemoProgram},
		{"inputVaultMint", a.InputVaultMint},
		{"outputVaultMint", a.OutputVaultMint},
	}
	for _, r := range refs {
		if r.key.IsZero() {
			return fmt.Errorf("%w: %s", ErrMissingAccount, r.name)
		}
	}
	return nil
}
