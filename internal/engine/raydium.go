package engine

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"clmm-gateway/internal/clmm"
)

// RaydiumEngine submits admitted swaps to the on-chain CLMM program. One
// synchronous attempt per call; a failed submission is terminal and
// propagates unchanged.
type RaydiumEngine struct {
	program solana.PublicKey
	client  *rpc.Client
	payer   solana.PrivateKey
}

func NewRaydiumEngine(program solana.PublicKey, client *rpc.Client, payer solana.PrivateKey) *RaydiumEngine {
	return &RaydiumEngine{
		program: program,
		client:  client,
		payer:   payer,
	}
}

func (e *RaydiumEngine) ExecuteSwap(ctx context.Context, accounts SwapAccounts, params clmm.SwapV2Params) error {
	if err := accounts.Validate(); err != nil {
		return err
	}

	recent, err := e.client.GetLatestBlockhash(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return fmt.Errorf("get blockhash: %w", err)
	}

	ix := NewSwapV2Instruction(e.program, accounts, params)
	tx, err := solana.NewTransaction(
		[]solana.Instruction{ix},
		recent.Value.Blockhash,
		solana.TransactionPayer(e.payer.PublicKey()),
	)
	if err != nil {
		return fmt.Errorf("build transaction: %w", err)
	}

	_, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(e.payer.PublicKey()) {
			return &e.payer
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("sign transaction: %w", err)
	}

	_, err = e.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		SkipPreflight: true,
	})
	if err != nil {
		return fmt.Errorf("send transaction: %w", err)
	}
	return nil
}
