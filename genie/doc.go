// Package genie converts between raw memory patches and Game Genie codes.
//
// A raw patch is described by a RawCode (address, value and an optional
// compare value), the published cheat is described by a Code. Both are
// validated at construction time, Decode and Encode convert between them.
//
// Supported consoles are the NES, SNES, Sega Genesis and the Game Boy /
// Game Gear. Every console is described by a table of its alphabet, field
// ranges and the bit layout of each code form, the conversion algorithm
// itself is shared. All functions are free of side effects and safe for
// concurrent use.
package genie
