package ata

import (
	"testing"

	"github.com/gagliardetto/solana-go"
)

func TestFindAssociatedTokenAddress(t *testing.T) {
	wallet := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	got1, _, err := FindAssociatedTokenAddress(wallet, mint, solana.TokenProgramID)
	if err != nil {
		t.Fatal(err)
	}
	got2, _, err := FindAssociatedTokenAddress(wallet, mint, solana.TokenProgramID)
	if err != nil {
		t.Fatal(err)
	}
	if !got1.Equals(got2) {
		t.Fatalf("derivation not deterministic: %s vs %s", got1, got2)
	}

	got2022, _, err := FindAssociatedTokenAddress2022(wallet, mint)
	if err != nil {
		t.Fatal(err)
	}
	if got1.Equals(got2022) {
		t.Fatal("classic and 2022 ATAs should differ")
	}
}
