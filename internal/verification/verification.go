// Package verification verifies that a conversion result converts back to
// its input.
package verification

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogenie/genie"
	"github.com/retroenv/retrogolib/log"
)

// ErrMismatch is returned when converting a result back does not reproduce
// the input.
var ErrMismatch = errors.New("round trip verification failed")

// VerifyDecode verifies that the raw code decoded from code encodes back to
// the same code.
func VerifyDecode(logger *log.Logger, code genie.Code, raw genie.RawCode) error {
	encoded := genie.Encode(raw)
	if encoded == code {
		return nil
	}

	logger.Error("Code mismatch",
		log.String("expected", code.String()),
		log.String("got", encoded.String()))
	return fmt.Errorf("%w: code %s encodes back to %s", ErrMismatch, code, encoded)
}

// VerifyEncode verifies that the code encoded from raw decodes back to the
// same raw code.
func VerifyEncode(logger *log.Logger, raw genie.RawCode, code genie.Code) error {
	decoded, err := genie.Decode(code)
	if err != nil {
		return fmt.Errorf("%w: decoding %s: %w", ErrMismatch, code, err)
	}
	if err := compareRawCodes(logger, raw, decoded); err != nil {
		return fmt.Errorf("%w: %s decodes back to %s: %w", ErrMismatch, raw, decoded, err)
	}
	return nil
}

func compareRawCodes(logger *log.Logger, expected, got genie.RawCode) error {
	if expected.System() != got.System() {
		return fmt.Errorf("system mismatch, expected %s but got %s", expected.System(), got.System())
	}

	var diffs int
	check := func(field string, expected, got uint32) {
		if expected == got {
			return
		}
		diffs++
		logger.Error("Field mismatch",
			log.String("field", field),
			log.Hex("expected", expected),
			log.Hex("got", got))
	}
	check("address", expected.Address(), got.Address())
	check("value", expected.Value(), got.Value())
	check("compare", expected.Compare(), got.Compare())

	if expected.HasCompare() != got.HasCompare() {
		return fmt.Errorf("compare presence mismatch, expected %t but got %t", expected.HasCompare(), got.HasCompare())
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d field mismatches", diffs)
}
