package ata

import (
	"github.com/gagliardetto/solana-go"
)

// FindAssociatedTokenAddress derives the ATA for wallet/mint under the
// given token program (classic SPL token or Token-2022).
func FindAssociatedTokenAddress(
	wallet solana.PublicKey,
	mint solana.PublicKey,
	tokenProgram solana.PublicKey,
) (solana.PublicKey, uint8, error) {
	return solana.FindProgramAddress([][]byte{
		wallet[:],
		tokenProgram[:],
		mint[:],
	},
		solana.SPLAssociatedTokenAccountProgramID,
	)
}

func FindAssociatedTokenAddress2022(
	wallet solana.PublicKey,
	mint solana.PublicKey,
) (solana.PublicKey, uint8, error) {
	return FindAssociatedTokenAddress(wallet, mint, solana.Token2022ProgramID)
}
