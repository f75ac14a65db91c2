package vm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryReadWriteRoundTrip(t *testing.T) {
	m := NewMemory(16)
	m.SetAddr(4)
	m.Write(0xAB)
	m.SetAddr(4)
	require.Equal(t, byte(0xAB), m.Read())
}

func TestMemoryPublicAccessorsDoNotDisturbMAR(t *testing.T) {
	m := NewMemory(16)
	m.SetAddr(2)
	m.Write(7)

	m.PublicWrite(9, 10)
	require.Equal(t, byte(9), m.PublicRead(10))

	m.SetAddr(2)
	require.Equal(t, byte(7), m.Read())
}

func TestMemoryOutOfRangeReadPanics(t *testing.T) {
	m := NewMemory(4)
	m.SetAddr(4)
	require.Panics(t, func() { m.Read() })
}

func TestMemoryOutOfRangeWritePanics(t *testing.T) {
	m := NewMemory(4)
	m.SetAddr(100)
	require.Panics(t, func() { m.Write(1) })
}

func TestMemoryLoadImageReplacesContentsAndSize(t *testing.T) {
	m := NewMemory(4)
	image := []byte{1, 2, 3, 4, 5, 6}
	m.LoadImage(image)
	require.Equal(t, 6, m.Len())
	require.Equal(t, byte(3), m.PublicRead(2))
}

func TestMemorySnapshotIsACopy(t *testing.T) {
	m := NewMemory(4)
	m.PublicWrite(0xFF, 0)

	snap := m.Snapshot()
	snap[0] = 0x00

	require.Equal(t, byte(0xFF), m.PublicRead(0))
}
