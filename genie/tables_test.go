package genie

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestConsoleAlphabets(t *testing.T) {
	for _, system := range Systems() {
		con := &consoles[system]
		assert.Equal(t, 1<<con.symbolBits, len(con.alphabet), system.String())

		seen := map[byte]struct{}{}
		for i := range len(con.alphabet) {
			char := con.alphabet[i]
			_, duplicate := seen[char]
			assert.False(t, duplicate, fmt.Sprintf("%s alphabet repeats '%c'", system, char))
			seen[char] = struct{}{}
			assert.True(t, con.symbols.Contains(char))
		}
		assert.False(t, con.symbols.Contains('-'))
	}
}

// TestFormatTables checks that every code bit has a source and that every
// raw bit of a form is stored in the code at least once.
func TestFormatTables(t *testing.T) {
	for _, system := range Systems() {
		con := &consoles[system]
		for i := range con.formats {
			f := &con.formats[i]
			name := fmt.Sprintf("%s %s", system, f.layout)

			assert.Equal(t, f.symbolCount()*int(con.symbolBits), len(f.bits), name)
			assert.True(t, len(f.bits) <= 64, name)
			if f.compare {
				assert.True(t, con.compareBits > 0, name)
			}

			var address, value, compare uint32
			for _, src := range f.bits {
				switch src.field {
				case fieldAddress:
					assert.True(t, uint(src.bit) < con.addressBits, name)
					address |= 1 << src.bit
				case fieldValue:
					assert.True(t, uint(src.bit) < con.valueBits, name)
					value |= 1 << src.bit
				case fieldCompare:
					assert.True(t, f.compare, name)
					assert.True(t, uint(src.bit) < con.compareBits, name)
					compare |= 1 << src.bit
				}
			}

			assert.Equal(t, mask[uint32](con.addressBits), address, name)
			assert.Equal(t, mask[uint32](con.valueBits), value, name)
			if f.compare {
				assert.Equal(t, mask[uint32](con.compareBits), compare, name)
			}
			assert.True(t, fits(f.xor, uint(len(f.bits))), name)
		}
	}
}

func TestFormatSelection(t *testing.T) {
	for _, system := range Systems() {
		con := &consoles[system]
		for i, f := range con.formats {
			form, ok := con.formatForLength(len(f.layout))
			assert.True(t, ok)
			assert.Equal(t, i, form)
			assert.Equal(t, i, con.formatFor(f.compare))
		}
	}
}
