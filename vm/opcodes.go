package vm

// Opcode values are architecturally fixed; changing them breaks image
// compatibility. The top two bits of every opcode encode its length
// class: 00 -> 1 byte, 01 -> 2 bytes, 10 -> 3 bytes, 11 -> reserved
// (decodes as unknown -> halt).
const (
	WAIT     byte = 0x00
	RESET    byte = 0x01
	OVERFLOW byte = 0x02

	BRANCH   byte = 0x04
	BRANCH_S byte = 0x05

	ENTER byte = 0x06
	LEAVE byte = 0x07

	LOAD_0 byte = 0x08
	LOAD_1 byte = 0x09
	LOAD_2 byte = 0x0A
	LOAD_3 byte = 0x0B

	UNLINK byte = 0x0C
	LINK   byte = 0x0D
	CALL   byte = 0x0E
	GOBACK byte = 0x0F

	SAVE_0 byte = 0x10
	SAVE_1 byte = 0x11
	SAVE_2 byte = 0x12
	SAVE_3 byte = 0x13

	LOCAL_0 byte = 0x14
	LOCAL_1 byte = 0x15
	LOCAL_2 byte = 0x16
	LOCAL_3 byte = 0x17

	CONST_0 byte = 0x18
	CONST_1 byte = 0x19
	CONST_2 byte = 0x1A
	CONST_3 byte = 0x1B

	LOAD byte = 0x1C
	SAVE byte = 0x1D

	DUP_B byte = 0x1E

	CLEAR_FLAGS  byte = 0x20
	TEST         byte = 0x21
	ADD          byte = 0x22
	ADD_CARRY    byte = 0x23
	SUBTRACT     byte = 0x24
	SUB_BORROW   byte = 0x25
	MULTIPLY     byte = 0x26
	COMPARE      byte = 0x27
	SHIFT_LEFT   byte = 0x28
	SHIFT_RIGHT  byte = 0x29
	ROTATE_LEFT  byte = 0x2A
	ROTATE_RIGHT byte = 0x2B
	NOT          byte = 0x2C
	AND          byte = 0x2D
	INCLUSIVE_OR byte = 0x2E
	EXCLUSIVE_OR byte = 0x2F

	IF_EQUAL         byte = 0x30
	IF_UNEQUAL       byte = 0x31
	IF_POSITIVE      byte = 0x32
	IF_NEGATIVE      byte = 0x33
	IF_ODD           byte = 0x34
	IF_EVEN          byte = 0x35
	IF_OVERFLOW      byte = 0x36
	IF_NO_OVERFLOW   byte = 0x37
	IF_GREATER_EQUAL byte = 0x38
	IF_LESS_EQUAL    byte = 0x39
	IF_GREATER       byte = 0x3A
	IF_LESS          byte = 0x3B
	IF_HIGHER        byte = 0x3C
	IF_LOWER         byte = 0x3D
	IF_CARRY         byte = 0x3E
	IF_NO_CARRY      byte = 0x3F

	IMM_BRANCH   byte = 0x40
	IMM_BRANCH_S byte = 0x41
	IMM_CONST    byte = 0x42
	LOCAL        byte = 0x48

	GOTO               byte = 0x82
	SET_STACK          byte = 0x83
	IMM_LOAD           byte = 0x8C
	IMM_LOAD_OFFSET_B  byte = 0x8D
	IMM_CONST_D        byte = 0x8F
	IMM_SAVE           byte = 0x94
	IMM_SAVE_OFFSET_B  byte = 0x95
)

// opcodeMnemonics maps every assigned opcode to its canonical source
// mnemonic; the assembler (vm/asm.go) looks mnemonics up through its
// reverse, mnemonicOpcodes.
var opcodeMnemonics = map[byte]string{
	WAIT: "wait", RESET: "reset", OVERFLOW: "overflow",
	BRANCH: "branch", BRANCH_S: "branch_s",
	ENTER: "enter", LEAVE: "leave",
	LOAD_0: "load_0", LOAD_1: "load_1", LOAD_2: "load_2", LOAD_3: "load_3",
	UNLINK: "unlink", LINK: "link", CALL: "call", GOBACK: "goback",
	SAVE_0: "save_0", SAVE_1: "save_1", SAVE_2: "save_2", SAVE_3: "save_3",
	LOCAL_0: "local_0", LOCAL_1: "local_1", LOCAL_2: "local_2", LOCAL_3: "local_3",
	CONST_0: "const_0", CONST_1: "const_1", CONST_2: "const_2", CONST_3: "const_3",
	LOAD: "load", SAVE: "save", DUP_B: "dup_b",
	CLEAR_FLAGS: "clear_flags", TEST: "test",
	ADD: "add", ADD_CARRY: "add_carry", SUBTRACT: "subtract", SUB_BORROW: "sub_borrow",
	MULTIPLY: "multiply", COMPARE: "compare",
	SHIFT_LEFT: "shift_left", SHIFT_RIGHT: "shift_right",
	ROTATE_LEFT: "rotate_left", ROTATE_RIGHT: "rotate_right",
	NOT: "not", AND: "and", INCLUSIVE_OR: "inclusive_or", EXCLUSIVE_OR: "exclusive_or",
	IF_EQUAL: "if_equal", IF_UNEQUAL: "if_unequal",
	IF_POSITIVE: "if_positive", IF_NEGATIVE: "if_negative",
	IF_ODD: "if_odd", IF_EVEN: "if_even",
	IF_OVERFLOW: "if_overflow", IF_NO_OVERFLOW: "if_no_overflow",
	IF_GREATER_EQUAL: "if_greater_equal", IF_LESS_EQUAL: "if_less_equal",
	IF_GREATER: "if_greater", IF_LESS: "if_less",
	IF_HIGHER: "if_higher", IF_LOWER: "if_lower",
	IF_CARRY: "if_carry", IF_NO_CARRY: "if_no_carry",
	IMM_BRANCH: "imm_branch", IMM_BRANCH_S: "imm_branch_s",
	IMM_CONST: "imm_const", LOCAL: "local",
	GOTO: "goto", SET_STACK: "set_stack",
	IMM_LOAD: "imm_load", IMM_LOAD_OFFSET_B: "imm_load_offset_b",
	IMM_CONST_D: "imm_const_d",
	IMM_SAVE: "imm_save", IMM_SAVE_OFFSET_B: "imm_save_offset_b",
}

var mnemonicOpcodes = func() map[string]byte {
	m := make(map[string]byte, len(opcodeMnemonics))
	for op, name := range opcodeMnemonics {
		m[name] = op
	}
	return m
}()

// instrLen returns the total instruction length in bytes, inferred from
// the top two bits of the opcode.
func instrLen(opcode byte) uint16 {
	return 1 + uint16(opcode>>6)
}
