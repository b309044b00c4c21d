package genie

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewRawCodeBounds(t *testing.T) {
	tests := []struct {
		name    string
		system  System
		address uint32
		value   uint32
		wantErr bool
	}{
		{name: "nes lowest address", system: NES, address: 0x8000, value: 0xFF},
		{name: "nes highest address", system: NES, address: 0xFFFF, value: 0x00},
		{name: "nes address below cartridge space", system: NES, address: 0x7FFF, wantErr: true},
		{name: "nes address above 16 bits", system: NES, address: 0x10000, wantErr: true},
		{name: "nes value overflow", system: NES, address: 0x8000, value: 0x100, wantErr: true},
		{name: "snes highest address", system: SNES, address: 0xFFFFFF, value: 0xFF},
		{name: "snes address overflow", system: SNES, address: 0x1000000, wantErr: true},
		{name: "snes value overflow", system: SNES, value: 0x100, wantErr: true},
		{name: "genesis 16 bit value", system: Genesis, address: 0xFFFFFF, value: 0xFFFF},
		{name: "genesis value overflow", system: Genesis, value: 0x10000, wantErr: true},
		{name: "game boy address zero", system: GameBoy, address: 0, value: 0xFF},
		{name: "game boy address overflow", system: GameBoy, address: 0x10000, wantErr: true},
		{name: "game boy value overflow", system: GameBoy, value: 0x100, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := NewRawCode(tt.system, tt.address, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidField))
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.address, raw.Address())
			assert.Equal(t, tt.value, raw.Value())
			assert.False(t, raw.HasCompare())
		})
	}
}

func TestNewRawCodeWithCompare(t *testing.T) {
	raw, err := NewRawCodeWithCompare(NES, 0x91D9, 0xAD, 0xFF)
	assert.NoError(t, err)
	assert.True(t, raw.HasCompare())
	assert.Equal(t, uint32(0xFF), raw.Compare())

	_, err = NewRawCodeWithCompare(NES, 0x91D9, 0xAD, 0x100)
	assert.True(t, errors.Is(err, ErrInvalidField))

	_, err = NewRawCodeWithCompare(GameBoy, 0x4A17, 0x100, 0x00)
	assert.True(t, errors.Is(err, ErrInvalidField))

	_, err = NewRawCodeWithCompare(SNES, 0x001234, 0x56, 0x00)
	assert.True(t, errors.Is(err, ErrInvalidField))
	assert.ErrorContains(t, err, "do not support a compare value")

	_, err = NewRawCodeWithCompare(Genesis, 0x001234, 0x56, 0x00)
	assert.True(t, errors.Is(err, ErrInvalidField))
}

func TestNewRawCodeUnknownSystem(t *testing.T) {
	_, err := NewRawCode(System(7), 0, 0)
	assert.True(t, errors.Is(err, ErrUnknownSystem))
}

func TestRawCodeString(t *testing.T) {
	tests := []struct {
		system     System
		address    uint32
		value      uint32
		compare    uint32
		hasCompare bool
		want       string
	}{
		{system: NES, address: 0x91D9, value: 0xAD, want: "91D9:AD"},
		{system: NES, address: 0x91D9, value: 0xAD, compare: 0x05, hasCompare: true, want: "91D9:AD:05"},
		{system: SNES, address: 0x1234, value: 0x6, want: "001234:06"},
		{system: Genesis, address: 0x1234, value: 0x56, want: "001234:0056"},
		{system: GameBoy, address: 0x4A17, value: 0x00, compare: 0xC8, hasCompare: true, want: "4A17:00:C8"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			raw := mustRawCode(t, tt.system, tt.address, tt.value, tt.compare, tt.hasCompare)
			assert.Equal(t, tt.want, raw.String())
		})
	}
}
