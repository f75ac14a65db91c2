package vm

import "strings"

// DebugPrint renders a 16-bytes-per-row hex dump with an address
// gutter. It is a pure function over a byte slice with no access to
// live Control state, so the CLI and TUI can call it against either a
// fresh image or a Control.MemorySnapshot.
func DebugPrint(image []byte) string {
	var b strings.Builder
	b.WriteString("     0  1  2  3  4  5  6  7  8  9  A  B  C  D  E  F")

	var address uint16
	count := 16
	for _, x := range image {
		if count == 16 {
			count = 0
			b.WriteByte('\n')
			b.WriteString(hex3(address >> 4 & 0xFFF))
			b.WriteByte(' ')
		}
		b.WriteString(hex2(x))
		b.WriteByte(' ')
		count++
		address++
	}
	b.WriteByte('\n')
	return b.String()
}

const hexDigits = "0123456789ABCDEF"

func hex2(b byte) string {
	return string([]byte{hexDigits[b>>4], hexDigits[b&0xF]})
}

func hex3(v uint16) string {
	return string([]byte{
		hexDigits[v>>8&0xF],
		hexDigits[v>>4&0xF],
		hexDigits[v&0xF],
	})
}
