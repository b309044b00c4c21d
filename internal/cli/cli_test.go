package cli

import (
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrogenie/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "single code",
			args: []string{"prog", "SXIOPO"},
			want: options.Program{
				Positional:  options.Positional{Entries: []string{"SXIOPO"}},
				OutputFlags: options.OutputFlags{Format: options.FormatText},
			},
		},
		{
			name: "system alias is normalized",
			args: []string{"prog", "-s", "Game-Boy", "00A-17B"},
			want: options.Program{
				Positional:  options.Positional{Entries: []string{"00A-17B"}},
				Flags:       options.Flags{System: "gbgg"},
				OutputFlags: options.OutputFlags{Format: options.FormatText},
			},
		},
		{
			name: "encode with plain output",
			args: []string{"prog", "-e", "-format", "PLAIN", "91D9:AD", "91D9:AD:00"},
			want: options.Program{
				Positional:  options.Positional{Entries: []string{"91D9:AD", "91D9:AD:00"}},
				Flags:       options.Flags{Encode: true},
				OutputFlags: options.OutputFlags{Format: options.FormatPlain},
			},
		},
		{
			name: "input file without entries",
			args: []string{"prog", "-i", "codes.txt", "-verify"},
			want: options.Program{
				Parameters:  options.Parameters{Input: "codes.txt"},
				Flags:       options.Flags{Verify: true},
				OutputFlags: options.OutputFlags{Format: options.FormatText},
			},
		},
		{
			name: "interactive",
			args: []string{"prog", "-interactive", "-s", "snes"},
			want: options.Program{
				Flags:       options.Flags{Interactive: true, System: "snes"},
				OutputFlags: options.OutputFlags{Format: options.FormatText},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			got, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.want.Entries, got.Entries)
			assert.Equal(t, tt.want.Parameters, got.Parameters)
			assert.Equal(t, tt.want.Flags, got.Flags)
			assert.Equal(t, tt.want.OutputFlags, got.OutputFlags)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantUsage bool
	}{
		{name: "no entries", args: []string{"prog"}, wantUsage: true},
		{name: "option after entry", args: []string{"prog", "SXIOPO", "-d"}, wantUsage: true},
		{name: "decode and encode", args: []string{"prog", "-d", "-e", "SXIOPO"}, wantUsage: true},
		{name: "unknown system", args: []string{"prog", "-s", "atari", "SXIOPO"}},
		{name: "unknown format", args: []string{"prog", "-format", "json", "SXIOPO"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, err := ParseFlags()
			assert.Error(t, err)

			var usageErr *UsageError
			assert.Equal(t, tt.wantUsage, errors.As(err, &usageErr))
		})
	}
}

func TestValidateOptionCombinations(t *testing.T) {
	tests := []struct {
		name        string
		opts        options.Program
		args        []string
		expectError bool
	}{
		{
			name: "no conflict",
			opts: options.Program{},
			args: []string{"SXIOPO"},
		},
		{
			name: "decode only",
			opts: options.Program{Flags: options.Flags{Decode: true}},
			args: []string{"SXIOPO"},
		},
		{
			name:        "decode and encode conflict",
			opts:        options.Program{Flags: options.Flags{Decode: true, Encode: true}},
			args:        []string{"SXIOPO"},
			expectError: true,
		},
		{
			name: "input and batch conflict",
			opts: options.Program{
				Parameters: options.Parameters{Input: "codes.txt", Batch: "*.txt"},
			},
			expectError: true,
		},
		{
			name:        "interactive with entries",
			opts:        options.Program{Flags: options.Flags{Interactive: true}},
			args:        []string{"SXIOPO"},
			expectError: true,
		},
		{
			name: "script and interactive conflict",
			opts: options.Program{
				Parameters: options.Parameters{Script: "codes.lua"},
				Flags:      options.Flags{Interactive: true},
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOptionCombinations(tt.opts, tt.args)
			if tt.expectError {
				assert.True(t, err != nil)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
