package converter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/retrogenie/genie"
)

// ParsePatch parses an address:value[:compare] patch of hexadecimal fields.
// Fields can also be separated by commas or whitespace and may carry a $ or
// 0x prefix.
func ParsePatch(system genie.System, text string) (genie.RawCode, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ':' || r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) < 2 || len(fields) > 3 {
		return genie.RawCode{}, fmt.Errorf("%w: patch '%s' needs address, value and optional compare",
			genie.ErrInvalidField, text)
	}

	names := [...]string{"address", "value", "compare"}
	var values [3]uint32
	for i, field := range fields {
		value, err := parseHex(field)
		if err != nil {
			return genie.RawCode{}, fmt.Errorf("%w: parsing %s '%s': %w", genie.ErrInvalidField, names[i], field, err)
		}
		values[i] = value
	}

	var (
		raw genie.RawCode
		err error
	)
	if len(fields) == 3 {
		raw, err = genie.NewRawCodeWithCompare(system, values[0], values[1], values[2])
	} else {
		raw, err = genie.NewRawCode(system, values[0], values[1])
	}
	if err != nil {
		return genie.RawCode{}, fmt.Errorf("creating raw code: %w", err)
	}
	return raw, nil
}

func parseHex(s string) (uint32, error) {
	s = strings.TrimPrefix(s, "$")
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}
	value, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(value), nil
}
