package engine

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"

	"clmm-gateway/internal/clmm"
)

// anchor discriminator for swap_v2
var swapV2Discriminator = []byte{43, 4, 237, 11, 26, 201, 30, 98}

// SwapV2Instruction relays caller-supplied swap parameters to the CLMM
// program, little-endian field order after the 8-byte discriminator.
type SwapV2Instruction struct {
	programID solana.PublicKey
	accounts  solana.AccountMetaSlice
	params    clmm.SwapV2Params
}

func NewSwapV2Instruction(programID solana.PublicKey, accounts SwapAccounts, params clmm.SwapV2Params) *SwapV2Instruction {
	return &SwapV2Instruction{
		programID: programID,
		accounts:  accounts.Metas(),
		params:    params,
	}
}

func (inst *SwapV2Instruction) ProgramID() solana.PublicKey {
	return inst.programID
}

func (inst *SwapV2Instruction) Accounts() []*solana.AccountMeta {
	return inst.accounts
}

func (inst *SwapV2Instruction) Data() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := inst.MarshalWithEncoder(bin.NewBorshEncoder(buf)); err != nil {
		return nil, fmt.Errorf("unable to encode instruction: %w", err)
	}
	return buf.Bytes(), nil
}

func (inst *SwapV2Instruction) MarshalWithEncoder(encoder *bin.Encoder) error {
	if err := encoder.WriteBytes(swapV2Discriminator, false); err != nil {
		return err
	}
	if err := encoder.WriteUint64(inst.params.Amount, binary.LittleEndian); err != nil {
		return err
	}
	if err := encoder.WriteUint64(inst.params.OtherAmountThreshold, binary.LittleEndian); err != nil {
		return err
	}
	if err := encoder.WriteUint128(inst.params.SqrtPriceLimitX64, binary.LittleEndian); err != nil {
		return err
	}
	return encoder.WriteBool(inst.params.IsBaseInput)
}
