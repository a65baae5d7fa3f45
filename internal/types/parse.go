package types

import (
	"fmt"
	"math/big"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"clmm-gateway/internal/clmm"
)

func ParsePubkey(field, raw string) (solana.PublicKey, error) {
	pk, err := solana.PublicKeyFromBase58(raw)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%s: %w", field, err)
	}
	return pk, nil
}

// ParseUint128 reads a decimal string into a 128-bit value. Empty means
// zero.
func ParseUint128(field, raw string) (bin.Uint128, error) {
	if raw == "" {
		return bin.Uint128{}, nil
	}
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return bin.Uint128{}, fmt.Errorf("%s: not a decimal number: %q", field, raw)
	}
	out, err := clmm.Uint128FromBig(v)
	if err != nil {
		return bin.Uint128{}, fmt.Errorf("%s: %w", field, err)
	}
	return out, nil
}

// FormatUint128 renders a 128-bit value as a decimal string.
func FormatUint128(v bin.Uint128) string {
	return clmm.BigFromUint128(v).String()
}
