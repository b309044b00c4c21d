package genie

import (
	"fmt"
	"strings"
)

// System identifies a console that Game Genie codes can be converted for.
type System uint8

// Supported systems.
const (
	NES System = iota
	SNES
	Genesis
	GameBoy // Game Boy and Game Gear share the same code format
)

var systemNames = [...]string{
	NES:     "nes",
	SNES:    "snes",
	Genesis: "genesis",
	GameBoy: "gbgg",
}

// systemAliases maps accepted names of a system to the system.
var systemAliases = map[string]System{
	"nes":          NES,
	"famicom":      NES,
	"snes":         SNES,
	"sfc":          SNES,
	"superfamicom": SNES,
	"genesis":      Genesis,
	"megadrive":    Genesis,
	"md":           Genesis,
	"gbgg":         GameBoy,
	"gb":           GameBoy,
	"gbc":          GameBoy,
	"gg":           GameBoy,
	"gameboy":      GameBoy,
	"gamegear":     GameBoy,
}

// Systems returns all supported systems.
func Systems() []System {
	return []System{NES, SNES, Genesis, GameBoy}
}

// ParseSystem returns the system for the given name, the name is case
// insensitive and common aliases like "famicom" or "megadrive" are accepted.
func ParseSystem(name string) (System, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
	system, ok := systemAliases[name]
	if !ok {
		return 0, fmt.Errorf("%w '%s'", ErrUnknownSystem, name)
	}
	return system, nil
}

// String returns the short name of the system.
func (s System) String() string {
	if !s.valid() {
		return fmt.Sprintf("system(%d)", uint8(s))
	}
	return systemNames[s]
}

// SupportsCompare returns whether codes of the system can carry a compare
// value that makes the patch conditional.
func (s System) SupportsCompare() bool {
	if !s.valid() {
		return false
	}
	return consoles[s].compareBits > 0
}

// Alphabet returns the ordered code alphabet of the system, the position of
// a character is the value of the bit group that it encodes.
func (s System) Alphabet() string {
	if !s.valid() {
		return ""
	}
	return consoles[s].alphabet
}

// CodeLengths returns the valid code lengths of the system, including
// separators, ordered from the form without compare to the one with.
func (s System) CodeLengths() []int {
	if !s.valid() {
		return nil
	}
	forms := consoles[s].formats
	lengths := make([]int, len(forms))
	for i, f := range forms {
		lengths[i] = len(f.layout)
	}
	return lengths
}

// AddressDigits returns the number of hex digits used to display an address.
func (s System) AddressDigits() int {
	if !s.valid() {
		return 0
	}
	return hexDigits(consoles[s].addressMax())
}

// ValueDigits returns the number of hex digits used to display a value or
// compare.
func (s System) ValueDigits() int {
	if !s.valid() {
		return 0
	}
	return hexDigits(mask[uint32](consoles[s].valueBits))
}

func (s System) valid() bool {
	return int(s) < len(systemNames)
}

func lookup(s System) (*console, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownSystem, s)
	}
	return &consoles[s], nil
}
