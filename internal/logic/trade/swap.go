package trade

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/zeromicro/go-zero/core/logx"

	"clmm-gateway/internal/clmm"
	"clmm-gateway/internal/engine"
	"clmm-gateway/internal/router"
	"clmm-gateway/internal/svc"
	"clmm-gateway/internal/types"
	"clmm-gateway/pkg/ata"
)

type Swap struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSwap(ctx context.Context, svcCtx *svc.ServiceContext) *Swap {
	return &Swap{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *Swap) Swap(req *types.SwapRequest) (*types.SwapResponse, error) {
	poolID, err := types.ParsePubkey("poolId", req.PoolId)
	if err != nil {
		return nil, err
	}
	accounts, err := l.parseAccounts(poolID, req)
	if err != nil {
		return nil, err
	}
	sqrtPriceLimit, err := types.ParseUint128("sqrtPriceLimit", req.SqrtPriceLimit)
	if err != nil {
		return nil, err
	}

	threshold := req.OtherAmountThreshold
	if req.ApplyDefaultSlippage {
		threshold, err = clmm.MinAmountOut(req.Amount, l.svcCtx.Config.Venue.DefaultSlippageBps)
		if err != nil {
			return nil, err
		}
	}

	impact, err := l.svcCtx.Router.Swap(l.ctx, router.SwapRequest{
		PoolID:               poolID,
		Accounts:             accounts,
		Amount:               req.Amount,
		OtherAmountThreshold: threshold,
		SqrtPriceLimitX64:    sqrtPriceLimit,
		IsBaseInput:          req.IsBaseInput,
	})
	if err != nil {
		l.Errorf("[%s] swap rejected: %v", req.PoolId, err)
		return nil, err
	}
	return &types.SwapResponse{PriceImpact: impact}, nil
}

func (l *Swap) parseAccounts(poolID solana.PublicKey, req *types.SwapRequest) (engine.SwapAccounts, error) {
	var out engine.SwapAccounts
	var err error

	if out.Payer, err = types.ParsePubkey("payer", req.Payer); err != nil {
		return out, err
	}
	if out.AmmConfig, err = types.ParsePubkey("ammConfig", req.AmmConfig); err != nil {
		return out, err
	}
	out.PoolState = poolID
	if out.InputVault, err = types.ParsePubkey("inputVault", req.InputVault); err != nil {
		return out, err
	}
	if out.OutputVault, err = types.ParsePubkey("outputVault", req.OutputVault); err != nil {
		return out, err
	}
	if out.ObservationState, err = types.ParsePubkey("observationState", req.ObservationState); err != nil {
		return out, err
	}
	if out.InputVaultMint, err = types.ParsePubkey("inputVaultMint", req.InputVaultMint); err != nil {
		return out, err
	}
	if out.OutputVaultMint, err = types.ParsePubkey("outputVaultMint", req.OutputVaultMint); err != nil {
		return out, err
	}
	out.TokenProgram = solana.TokenProgramID
	out.TokenProgram2022 = solana.Token2022ProgramID
	out.MemoProgram = solana.MemoProgramID

	// Token accounts default to the payer's ATA for the matching vault mint.
	if out.InputTokenAccount, err = tokenAccount(req.InputTokenAccount, out.Payer, out.InputVaultMint); err != nil {
		return out, err
	}
	if out.OutputTokenAccount, err = tokenAccount(req.OutputTokenAccount, out.Payer, out.OutputVaultMint); err != nil {
		return out, err
	}
	return out, nil
}

func tokenAccount(raw string, payer, mint solana.PublicKey) (solana.PublicKey, error) {
	if raw != "" {
		return types.ParsePubkey("tokenAccount", raw)
	}
	addr, _, err := ata.FindAssociatedTokenAddress(payer, mint, solana.TokenProgramID)
	return addr, err
}
