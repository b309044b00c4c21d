// Package options contains the program options.
package options

// Mode selects the conversion direction.
type Mode int

// Conversion modes.
const (
	ModeAuto   Mode = iota // decode codes, encode address:value entries
	ModeDecode             // every entry is a Game Genie code
	ModeEncode             // every entry is an address:value[:compare] patch
)

func (m Mode) String() string {
	switch m {
	case ModeDecode:
		return "decode"
	case ModeEncode:
		return "encode"
	default:
		return "auto"
	}
}

// Output formats.
const (
	FormatText  = "text"
	FormatPlain = "plain"
)

// Positional contains positional arguments.
type Positional struct {
	Entries []string `arg:"positional" usage:"codes or address:value[:compare] patches to convert"`
}

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input file with one code or patch per line"`
	Output string `flag:"o" usage:"output file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.txt)"`
	Script string `flag:"script" usage:"run a Lua script with access to the genie module"`
}

// Flags contains behavior options.
type Flags struct {
	System      string `flag:"s" usage:"target system: nes, snes, genesis, gb (default: auto-detect)"`
	Decode      bool   `flag:"d" usage:"decode Game Genie codes"`
	Encode      bool   `flag:"e" usage:"encode address:value[:compare] patches"`
	Interactive bool   `flag:"interactive" usage:"start an interactive conversion session"`
	Verify      bool   `flag:"verify" usage:"verify every conversion by converting the result back"`
	Clipboard   bool   `flag:"clip" usage:"copy the last result to the clipboard"`
	Debug       bool   `flag:"debug" usage:"enable debug logging"`
	Quiet       bool   `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	Format string `flag:"format" usage:"output format: text, plain" default:"text"`
}

// Program options of the converter.
type Program struct {
	Positional
	Parameters
	Flags
	OutputFlags
}

// Mode returns the conversion mode selected by the flags.
func (p Program) Mode() Mode {
	switch {
	case p.Decode:
		return ModeDecode
	case p.Encode:
		return ModeEncode
	default:
		return ModeAuto
	}
}
