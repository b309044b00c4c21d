package genie

import "fmt"

// Decode converts a Game Genie code to the raw patch that it describes.
// Codes that pass the alphabet and length checks of NewCode can still fail
// the structural checks of the console, like the form flag of NES codes or
// the check digit of Game Boy codes.
func Decode(code Code) (RawCode, error) {
	con, err := lookup(code.system)
	if err != nil {
		return RawCode{}, err
	}
	if int(code.form) >= len(con.formats) || len(code.text) != len(con.formats[code.form].layout) {
		return RawCode{}, fmt.Errorf("%w: empty or uninitialized code", ErrInvalidCode)
	}
	f := &con.formats[code.form]

	word := con.parse(f, code.text) ^ f.xor

	var fields, seen [3]uint32 // address, value, compare
	last := len(f.bits) - 1
	for i, src := range f.bits {
		b := uint32(bit(word, uint8(last-i)))

		if src.constant() {
			if b != uint32(src.field-constZero) {
				return RawCode{}, fmt.Errorf("%w: code '%s' has an invalid %s form flag",
					ErrInvalidCode, code.text, code.system)
			}
			continue
		}

		index := src.field - fieldAddress
		m := uint32(1) << src.bit
		if seen[index]&m != 0 {
			if (fields[index]&m != 0) != (b == 1) {
				return RawCode{}, fmt.Errorf("%w: code '%s' has an invalid check digit",
					ErrInvalidCode, code.text)
			}
			continue
		}
		seen[index] |= m
		fields[index] |= b << src.bit
	}

	return RawCode{
		system:     code.system,
		address:    con.addressBase | fields[0],
		value:      fields[1],
		compare:    fields[2],
		hasCompare: f.compare,
	}, nil
}

// DecodeString validates and decodes the text as Game Genie code of the
// system.
func DecodeString(system System, text string) (RawCode, error) {
	code, err := NewCode(system, text)
	if err != nil {
		return RawCode{}, err
	}
	return Decode(code)
}

// Encode converts a raw patch to its Game Genie code. A raw code with
// compare value results in the long code form of the system.
func Encode(raw RawCode) Code {
	con := &consoles[raw.system]
	form := con.formatFor(raw.hasCompare)
	f := &con.formats[form]

	var word uint64
	for _, src := range f.bits {
		word = word<<1 | raw.field(src, con.addressBase)
	}
	word ^= f.xor

	return Code{
		system: raw.system,
		form:   uint8(form),
		text:   con.render(f, word),
	}
}
