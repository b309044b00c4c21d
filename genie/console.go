package genie

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/retroenv/retrogolib/set"
)

// symbolMarker marks a code symbol in a format layout, every other layout
// character is a literal separator.
const symbolMarker = 'X'

// console describes the code alphabet, the raw field ranges and the code
// forms of a system.
type console struct {
	alphabet    string
	symbolBits  uint
	addressBits uint
	addressBase uint32 // implicit address bits that are not part of the code
	valueBits   uint
	compareBits uint // 0 if the console does not support compare values
	formats     []format

	symbols set.Set[byte]
}

// format is one code form of a console.
type format struct {
	layout  string
	compare bool
	bits    []source // one entry per code bit, most significant bit first
	xor     uint64   // applied to the code word after the permutation
}

func (f *format) symbolCount() int {
	return strings.Count(f.layout, string(symbolMarker))
}

func init() {
	for i := range consoles {
		con := &consoles[i]
		con.symbols = set.New[byte]()
		for j := range len(con.alphabet) {
			con.symbols.Add(con.alphabet[j])
		}
	}
}

func (con *console) addressMax() uint32 {
	return con.addressBase + mask[uint32](con.addressBits)
}

// formatFor returns the index of the code form used for encoding a raw code.
func (con *console) formatFor(compare bool) int {
	for i := range con.formats {
		if con.formats[i].compare == compare {
			return i
		}
	}
	return 0
}

// formatForLength returns the index of the code form that has the given
// text length.
func (con *console) formatForLength(length int) (int, bool) {
	for i := range con.formats {
		if len(con.formats[i].layout) == length {
			return i, true
		}
	}
	return 0, false
}

func (con *console) lengths() string {
	lengths := make([]string, len(con.formats))
	for i := range con.formats {
		lengths[i] = fmt.Sprint(len(con.formats[i].layout))
	}
	return strings.Join(lengths, " or ")
}

// validate checks that every symbol of the text is part of the alphabet and
// that all separators are in place. The text has to match the layout length.
func (con *console) validate(f *format, text string) error {
	for i := range len(f.layout) {
		expected, got := f.layout[i], text[i]
		if expected == symbolMarker {
			if !con.symbols.Contains(got) {
				r, _ := utf8.DecodeRuneInString(text[i:])
				return fmt.Errorf("%w: character %q at position %d is not part of the alphabet '%s'",
					ErrInvalidCode, r, i+1, con.alphabet)
			}
			continue
		}
		if got != expected {
			return fmt.Errorf("%w: expected separator '%c' at position %d", ErrInvalidCode, expected, i+1)
		}
	}
	return nil
}

// parse converts a validated code text to its code word.
func (con *console) parse(f *format, text string) uint64 {
	var word uint64
	for i := range len(f.layout) {
		if f.layout[i] != symbolMarker {
			continue
		}
		index := strings.IndexByte(con.alphabet, text[i])
		word = word<<con.symbolBits | uint64(index)
	}
	return word
}

// render converts a code word to the code text.
func (con *console) render(f *format, word uint64) string {
	shift := uint(f.symbolCount()) * con.symbolBits
	symbolMask := mask[uint64](con.symbolBits)

	var sb strings.Builder
	sb.Grow(len(f.layout))
	for i := range len(f.layout) {
		if f.layout[i] != symbolMarker {
			sb.WriteByte(f.layout[i])
			continue
		}
		shift -= con.symbolBits
		sb.WriteByte(con.alphabet[word>>shift&symbolMask])
	}
	return sb.String()
}
