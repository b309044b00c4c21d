// Package converter converts single entries between Game Genie codes and
// raw patches.
package converter

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogenie/genie"
	"github.com/retroenv/retrogenie/internal/detector"
	"github.com/retroenv/retrogenie/internal/options"
	"github.com/retroenv/retrogenie/internal/verification"
	"github.com/retroenv/retrogolib/log"
)

// Result is the outcome of a single conversion.
type Result struct {
	System   genie.System
	Decoded  bool // the input was a code that got decoded
	Raw      genie.RawCode
	Code     genie.Code
	Verified bool
}

// Source returns the canonical form of the converted input.
func (r Result) Source() string {
	if r.Decoded {
		return r.Code.String()
	}
	return r.Raw.String()
}

// Output returns the canonical form of the conversion result.
func (r Result) Output() string {
	if r.Decoded {
		return r.Raw.String()
	}
	return r.Code.String()
}

// Converter converts entries using the mode and system of the options.
type Converter struct {
	logger   *log.Logger
	detector *detector.Detector

	mode   options.Mode
	system string
	verify bool
}

// New creates a new converter.
func New(logger *log.Logger, opts options.Program) *Converter {
	return &Converter{
		logger:   logger,
		detector: detector.New(logger),
		mode:     opts.Mode(),
		system:   opts.System,
		verify:   opts.Verify,
	}
}

// WithSystem returns a copy of the converter that uses the given system name.
func (c *Converter) WithSystem(name string) (*Converter, error) {
	if name != "" {
		if _, err := c.detector.Detect(name); err != nil {
			return nil, err
		}
	}

	cp := *c
	cp.system = name
	return &cp, nil
}

// System returns the selected system name, empty for auto-detection.
func (c *Converter) System() string {
	return c.system
}

// Convert converts a single entry. In auto mode entries that look like
// address:value[:compare] patches are encoded, all others are decoded.
func (c *Converter) Convert(entry string) (Result, error) {
	entry = strings.TrimSpace(entry)

	mode := c.mode
	if mode == options.ModeAuto {
		mode = DetectMode(entry)
	}

	if mode == options.ModeEncode {
		return c.encode(entry)
	}
	return c.decode(entry)
}

// DetectMode returns the conversion mode for an entry.
func DetectMode(entry string) options.Mode {
	if strings.ContainsAny(entry, ":,") || len(strings.Fields(entry)) > 1 {
		return options.ModeEncode
	}
	return options.ModeDecode
}

func (c *Converter) decode(entry string) (Result, error) {
	system, err := c.detector.DetectCode(c.system, entry)
	if err != nil {
		return Result{}, fmt.Errorf("detecting system: %w", err)
	}

	code, err := genie.NewCode(system, entry)
	if err != nil {
		return Result{}, fmt.Errorf("parsing code: %w", err)
	}
	raw, err := genie.Decode(code)
	if err != nil {
		return Result{}, fmt.Errorf("decoding code: %w", err)
	}

	result := Result{
		System:  system,
		Decoded: true,
		Raw:     raw,
		Code:    code,
	}
	if c.verify {
		if err := verification.VerifyDecode(c.logger, code, raw); err != nil {
			return Result{}, err
		}
		result.Verified = true
	}

	c.logger.Debug("Decoded code",
		log.String("code", code.String()),
		log.Hex("address", raw.Address()),
		log.Hex("value", raw.Value()))
	return result, nil
}

func (c *Converter) encode(entry string) (Result, error) {
	system, err := c.detector.Detect(c.system)
	if err != nil {
		return Result{}, fmt.Errorf("detecting system: %w", err)
	}

	raw, err := ParsePatch(system, entry)
	if err != nil {
		return Result{}, err
	}
	code := genie.Encode(raw)

	result := Result{
		System: system,
		Raw:    raw,
		Code:   code,
	}
	if c.verify {
		if err := verification.VerifyEncode(c.logger, raw, code); err != nil {
			return Result{}, err
		}
		result.Verified = true
	}

	c.logger.Debug("Encoded patch",
		log.String("patch", raw.String()),
		log.String("code", code.String()))
	return result, nil
}
