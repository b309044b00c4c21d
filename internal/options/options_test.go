package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestProgramMode(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  Mode
	}{
		{name: "auto", want: ModeAuto},
		{name: "decode", flags: Flags{Decode: true}, want: ModeDecode},
		{name: "encode", flags: Flags{Encode: true}, want: ModeEncode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode := Program{Flags: tt.flags}.Mode()
			assert.Equal(t, tt.want, mode)
			assert.Equal(t, tt.name, mode.String())
		})
	}
}
