package genie

import (
	"fmt"
	"strings"
)

// Code is a Game Genie code in the canonical upper case form of its system.
// Code values are immutable and comparable.
type Code struct {
	system System
	form   uint8
	text   string
}

// NewCode validates the text as Game Genie code of the system. Surrounding
// whitespace is ignored and the text is case insensitive.
func NewCode(system System, text string) (Code, error) {
	con, err := lookup(system)
	if err != nil {
		return Code{}, err
	}

	text = upperASCII(strings.TrimSpace(text))
	form, ok := con.formatForLength(len(text))
	if !ok {
		return Code{}, fmt.Errorf("%w: %s code '%s' has length %d, expected %s",
			ErrInvalidCode, system, text, len(text), con.lengths())
	}
	if err := con.validate(&con.formats[form], text); err != nil {
		return Code{}, err
	}

	return Code{
		system: system,
		form:   uint8(form),
		text:   text,
	}, nil
}

// System returns the system of the code.
func (c Code) System() System {
	return c.system
}

// HasCompare returns whether the code form carries a compare value.
func (c Code) HasCompare() bool {
	if !c.system.valid() || int(c.form) >= len(consoles[c.system].formats) {
		return false
	}
	return consoles[c.system].formats[c.form].compare
}

// String returns the canonical upper case code text.
func (c Code) String() string {
	return c.text
}

// upperASCII converts the lower case ASCII letters of the text to upper case.
// Other characters are kept, so that non-ASCII letters can not turn into
// alphabet symbols.
func upperASCII(text string) string {
	b := []byte(text)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
