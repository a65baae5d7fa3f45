package rpcs

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Client wraps the chain RPC endpoint for account reads. Reads are
// idempotent, so unlike the engine call they retry with backoff.
type Client struct {
	cli *rpc.Client
}

func New(endpoint string) *Client {
	return &Client{cli: rpc.New(endpoint)}
}

// FetchAccount returns the raw data of an account at processed commitment.
func (c *Client) FetchAccount(ctx context.Context, key solana.PublicKey) ([]byte, error) {
	var data []byte
	err := retry.Do(func() error {
		out, err := c.cli.GetAccountInfoWithOpts(ctx, key, &rpc.GetAccountInfoOpts{
			Commitment: rpc.CommitmentProcessed,
		})
		if err != nil {
			return err
		}
		if out == nil || out.Value == nil {
			return fmt.Errorf("account %s not found", key)
		}
		data = out.Value.Data.GetBinary()
		return nil
	}, retry.Attempts(3), retry.Delay(500*time.Millisecond), retry.LastErrorOnly(true), retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
		return retry.BackOffDelay(n, err, config)
	}))
	if err != nil {
		return nil, fmt.Errorf("fetch account %s: %w", key, err)
	}
	return data, nil
}

// RPC exposes the underlying client for transaction submission.
func (c *Client) RPC() *rpc.Client {
	return c.cli
}
