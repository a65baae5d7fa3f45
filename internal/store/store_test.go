package store

import (
	"errors"
	"sync"
	"testing"

	"github.com/gagliardetto/solana-go"

	"clmm-gateway/internal/clmm"
)

func newPool() clmm.PoolState {
	return clmm.PoolState{
		PoolID:      solana.NewWallet().PublicKey(),
		Authority:   solana.NewWallet().PublicKey(),
		TickSpacing: 60,
	}
}

func TestAddGetPool(t *testing.T) {
	s := New()
	pool := newPool()
	if err := s.AddPool(pool); err != nil {
		t.Fatal(err)
	}
	if err := s.AddPool(pool); !errors.Is(err, clmm.ErrInvalidPoolState) {
		t.Fatalf("duplicate pool: got %v", err)
	}

	got, err := s.GetPool(pool.PoolID)
	if err != nil {
		t.Fatal(err)
	}
	if got.PoolID != pool.PoolID || got.TickSpacing != 60 {
		t.Fatalf("snapshot mismatch: %+v", got)
	}

	// snapshot must be a copy
	got.IsPaused = true
	again, _ := s.GetPool(pool.PoolID)
	if again.IsPaused {
		t.Fatal("GetPool leaked a live reference")
	}
}

func TestGetPoolUnknown(t *testing.T) {
	s := New()
	if _, err := s.GetPool(solana.NewWallet().PublicKey()); !errors.Is(err, clmm.ErrInvalidPoolState) {
		t.Fatalf("unknown pool: got %v", err)
	}
}

func TestWithPoolMutation(t *testing.T) {
	s := New()
	pool := newPool()
	if err := s.AddPool(pool); err != nil {
		t.Fatal(err)
	}

	err := s.WithPool(pool.PoolID, func(ps *clmm.PoolState) error {
		ps.IsPaused = true
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	got, _ := s.GetPool(pool.PoolID)
	if !got.IsPaused {
		t.Fatal("mutation not applied")
	}
}

func TestWithPoolSerializesWriters(t *testing.T) {
	s := New()
	pool := newPool()
	if err := s.AddPool(pool); err != nil {
		t.Fatal(err)
	}

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.WithPool(pool.PoolID, func(ps *clmm.PoolState) error {
				next, err := clmm.AddLiquidity(ps.Liquidity, clmm.Uint128From64(1))
				if err != nil {
					return err
				}
				ps.Liquidity = next
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := s.GetPool(pool.PoolID)
	if got.Liquidity.Lo != n {
		t.Fatalf("liquidity = %d, want %d", got.Liquidity.Lo, n)
	}
}

func TestPositions(t *testing.T) {
	s := New()
	key := PositionKey{
		Owner:     solana.NewWallet().PublicKey(),
		Pool:      solana.NewWallet().PublicKey(),
		TickLower: -60,
		TickUpper: 60,
	}
	if _, err := s.GetPosition(key); !errors.Is(err, clmm.ErrPositionNotFound) {
		t.Fatalf("missing position: got %v", err)
	}

	s.PutPosition(key, clmm.UserPosition{
		Owner: key.Owner,
		Pool:  key.Pool,
		Position: clmm.PositionInfo{
			Liquidity:      clmm.Uint128From64(500),
			TickLowerIndex: key.TickLower,
			TickUpperIndex: key.TickUpper,
		},
	})

	err := s.UpdatePosition(key, func(pos *clmm.UserPosition) error {
		next, err := clmm.SubLiquidity(pos.Position.Liquidity, clmm.Uint128From64(500))
		if err != nil {
			return err
		}
		pos.Position.Liquidity = next
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := s.GetPosition(key)
	if err != nil {
		t.Fatal(err)
	}
	if !clmm.Uint128IsZero(got.Position.Liquidity) {
		t.Fatalf("liquidity = %v, want zero", got.Position.Liquidity)
	}
}
