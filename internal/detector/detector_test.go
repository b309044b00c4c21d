package detector

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogenie/genie"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestDetect(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		systemOpt  string
		wantSystem genie.System
		wantErr    bool
	}{
		{name: "no system defaults to NES", systemOpt: "", wantSystem: genie.NES},
		{name: "explicit NES system option", systemOpt: "nes", wantSystem: genie.NES},
		{name: "explicit SNES system option", systemOpt: "snes", wantSystem: genie.SNES},
		{name: "genesis alias", systemOpt: "megadrive", wantSystem: genie.Genesis},
		{name: "game gear alias", systemOpt: "gg", wantSystem: genie.GameBoy},
		{name: "unknown system", systemOpt: "chip8", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system, err := d.Detect(tt.systemOpt)
			if tt.wantErr {
				assert.True(t, errors.Is(err, genie.ErrUnknownSystem))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantSystem, system)
		})
	}
}

func TestDetectCode(t *testing.T) {
	logger := log.NewTestLogger(t)
	d := New(logger)

	tests := []struct {
		name       string
		systemOpt  string
		code       string
		wantSystem genie.System
		wantErr    bool
	}{
		{name: "NES short code", code: "SXIOPO", wantSystem: genie.NES},
		{name: "NES long code", code: "sxsoppae", wantSystem: genie.NES},
		{name: "SNES code preferred over Genesis", code: "91F7-6FDD", wantSystem: genie.SNES},
		{name: "explicit Genesis system", systemOpt: "genesis", code: "91F7-6FDD", wantSystem: genie.Genesis},
		{name: "Genesis only code", code: "L2KA-AABY", wantSystem: genie.Genesis},
		{name: "Game Boy short code", code: "00A-17B", wantSystem: genie.GameBoy},
		{name: "Game Boy long code", code: "00A-17B-C49", wantSystem: genie.GameBoy},
		{name: "invalid NES code", code: "SXEOPO", wantErr: true},
		{name: "not a code", code: "hello", wantErr: true},
		{name: "non-ASCII letter", code: "SXıOPO", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			system, err := d.DetectCode(tt.systemOpt, tt.code)
			if tt.wantErr {
				assert.True(t, errors.Is(err, genie.ErrInvalidCode))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantSystem, system)
		})
	}
}
