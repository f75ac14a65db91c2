package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssembleSimpleProgram(t *testing.T) {
	image, err := Assemble(`
		imm_const 5
		imm_const 3
		add
		wait
	`)
	require.NoError(t, err)

	require.Equal(t, []byte{
		IMM_CONST, 5,
		IMM_CONST, 3,
		ADD,
		WAIT,
	}, image)
}

func TestAssembleResolvesForwardLabel(t *testing.T) {
	image, err := Assemble(`
		imm_branch_s skip
		wait
	skip:
		imm_const 1
	`)
	require.NoError(t, err)

	// skip: labels the byte offset right after imm_branch_s (2 bytes) + wait (1 byte) = 3.
	require.Equal(t, []byte{
		IMM_BRANCH_S, 3,
		WAIT,
		IMM_CONST, 1,
	}, image)
}

func TestAssembleGotoUsesBackwardLabel(t *testing.T) {
	image, err := Assemble(`
	loop:
		imm_const 1
		goto loop
	`)
	require.NoError(t, err)

	require.Equal(t, []byte{
		IMM_CONST, 1,
		GOTO, 0, 0,
	}, image)
}

func TestAssembleByteDirectiveEmitsRawData(t *testing.T) {
	image, err := Assemble(`
		byte 'A'
		byte 66
		byte 0x43
	`)
	require.NoError(t, err)
	require.Equal(t, []byte{'A', 'B', 'C'}, image)
}

func TestAssembleHexAndNegativeLiterals(t *testing.T) {
	image, err := Assemble(`imm_const 0xFF`)
	require.NoError(t, err)
	require.Equal(t, []byte{IMM_CONST, 0xFF}, image)

	image, err = Assemble(`imm_branch_s -1`)
	require.NoError(t, err)
	require.Equal(t, []byte{IMM_BRANCH_S, 0xFF}, image)
}

func TestAssembleStripsCommentsAndBlankLines(t *testing.T) {
	image, err := Assemble(`
		; a comment line

		wait ; trailing comment
	`)
	require.NoError(t, err)
	require.Equal(t, []byte{WAIT}, image)
}

func TestAssembleUnknownMnemonicFails(t *testing.T) {
	_, err := Assemble(`frobnicate`)
	require.ErrorIs(t, err, ErrUnknownMnemonic)
}

func TestAssembleDuplicateLabelFails(t *testing.T) {
	_, err := Assemble(`
	here:
		wait
	here:
		wait
	`)
	require.ErrorIs(t, err, ErrDuplicateLabel)
}

func TestAssembleMissingArgumentFails(t *testing.T) {
	_, err := Assemble(`imm_const`)
	require.Error(t, err)
}

func TestAssembleExtraArgumentFails(t *testing.T) {
	_, err := Assemble(`wait 1`)
	require.Error(t, err)
}

func TestAssembleOutputLoadsIntoControl(t *testing.T) {
	image, err := Assemble(`
		imm_const 5
		imm_const 3
		add
		wait
	`)
	require.NoError(t, err)

	// Pad past the last instruction: decode always reads two more bytes.
	mem := make([]byte, DefaultMemSize)
	copy(mem, image)
	c := NewControl(0)
	c.LoadImage(mem)
	c.Start()
	for c.IsRunning() {
		c.ExecuteInstruction()
	}

	regs := c.Registers()
	require.Equal(t, uint16(1), regs.SP)
}
