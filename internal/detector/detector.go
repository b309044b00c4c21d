// Package detector handles the selection of the system that codes are
// converted for.
package detector

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogenie/genie"
	"github.com/retroenv/retrogolib/log"
)

// defaultSystem is used when neither the options nor the input identify a
// system.
const defaultSystem = genie.NES

// Detector handles system detection from options and code texts.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect returns the system selected by name, or the default system if the
// name is empty.
func (d *Detector) Detect(name string) (genie.System, error) {
	if name == "" {
		return defaultSystem, nil
	}

	s, err := genie.ParseSystem(name)
	if err != nil {
		return 0, fmt.Errorf("parsing system: %w", err)
	}
	return s, nil
}

// DetectCode determines the system of a Game Genie code. An explicitly
// selected system is used as is, otherwise every system that decodes the
// code is a candidate. Ambiguous codes resolve to the default system if it is
// a candidate and to the first candidate in system order otherwise.
func (d *Detector) DetectCode(name, code string) (genie.System, error) {
	if name != "" {
		return d.Detect(name)
	}

	candidates := d.candidates(code)
	switch len(candidates) {
	case 0:
		return 0, fmt.Errorf("%w: '%s' is not a code of any supported system",
			genie.ErrInvalidCode, strings.TrimSpace(code))

	case 1:
		d.logger.Debug("Auto-detected system",
			log.Stringer("system", candidates[0]),
			log.String("code", code))
		return candidates[0], nil
	}

	system := candidates[0]
	for _, candidate := range candidates {
		if candidate == defaultSystem {
			system = candidate
			break
		}
	}

	names := make([]string, len(candidates))
	for i, candidate := range candidates {
		names[i] = candidate.String()
	}
	d.logger.Debug("Ambiguous code, pass a system to select another candidate",
		log.String("code", code),
		log.String("candidates", strings.Join(names, ",")),
		log.Stringer("system", system))
	return system, nil
}

func (d *Detector) candidates(code string) []genie.System {
	var candidates []genie.System
	for _, system := range genie.Systems() {
		if _, err := genie.DecodeString(system, code); err == nil {
			candidates = append(candidates, system)
		}
	}
	return candidates
}
