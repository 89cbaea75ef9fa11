package z80bus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadWriteRoundTrip(t *testing.T) {
	bus := NewBus()

	bus.Write(0x4000, 0x42)

	assert.Equal(t, byte(0x42), bus.Read(0x4000))
}

func TestPortsAreIndependentOfMemory(t *testing.T) {
	bus := NewBus()

	bus.Out(0x10, 0x99)
	bus.Write(0x0010, 0x01)

	assert.Equal(t, byte(0x99), bus.In(0x10))
	assert.Equal(t, byte(0x01), bus.Read(0x0010))
}

func TestPinDefaultsLowAndOutOfRangeIsSafe(t *testing.T) {
	bus := NewBus()

	assert.False(t, bus.Pin(PinHalt))
	assert.False(t, bus.Pin(999))

	bus.SetPin(999, true) // must not panic
	bus.SetPin(PinHalt, true)

	assert.True(t, bus.Pin(PinHalt))
}

func TestLoadROMMapsBytesAtAddressZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rom.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x3E, 0x05, 0xC6, 0x03}, 0o644))

	bus := NewBus()
	err := bus.LoadROM(path)

	require.NoError(t, err)
	assert.Equal(t, 4, bus.ROMSize())
	assert.Equal(t, byte(0x3E), bus.Read(0))
	assert.Equal(t, byte(0x03), bus.Read(3))
}

func TestLoadROMRejectsOversizedImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "too_big.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, memorySize+1), 0o644))

	bus := NewBus()
	err := bus.LoadROM(path)

	assert.ErrorIs(t, err, ErrROMTooLarge)
}

func TestLoadROMWrapsMissingFileError(t *testing.T) {
	bus := NewBus()

	err := bus.LoadROM(filepath.Join(t.TempDir(), "missing.bin"))

	require.Error(t, err)
	assert.True(t, os.IsNotExist(errUnwrapCause(err)))
}

func errUnwrapCause(err error) error {
	type causer interface{ Unwrap() error }
	for {
		c, ok := err.(causer)
		if !ok {
			return err
		}
		err = c.Unwrap()
	}
}

func TestWriteDirectBypassesNothingButNamesItsOwnPath(t *testing.T) {
	bus := NewBus()

	bus.WriteDirect(0x1000, 0x7E)

	assert.Equal(t, byte(0x7E), bus.ReadDirect(0x1000))
	assert.Equal(t, byte(0x7E), bus.Read(0x1000))
}
