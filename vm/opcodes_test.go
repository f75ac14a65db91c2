package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstrLenMatchesTopTwoBits(t *testing.T) {
	require.Equal(t, uint16(1), instrLen(WAIT))
	require.Equal(t, uint16(1), instrLen(LOAD_0))
	require.Equal(t, uint16(2), instrLen(IMM_BRANCH))
	require.Equal(t, uint16(2), instrLen(LOCAL))
	require.Equal(t, uint16(3), instrLen(GOTO))
	require.Equal(t, uint16(3), instrLen(IMM_CONST_D))
}

func TestMnemonicTableRoundTrips(t *testing.T) {
	for opcode, mnemonic := range opcodeMnemonics {
		resolved, ok := mnemonicOpcodes[mnemonic]
		require.True(t, ok, "mnemonic %q missing from reverse table", mnemonic)
		require.Equal(t, opcode, resolved)
	}
}
