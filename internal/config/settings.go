// Package config parses machine settings lines.
//
// A settings line configures a machine in one shot:
//
//	* B Beta III IV I AXLE (HQ) (EX) (IP) (TR) (BY)
//
// Leading "*", then one rotor name per slot (first the reflector), a wheel
// settings word of slots-1 symbols, an optional ring settings word of the
// same length, and optional plugboard cycles.
package config

import (
	"fmt"
	"strings"

	"github.com/aretw0/rotary/pkg/domain"
)

// Settings is the parsed form of one settings line.
type Settings struct {
	// Rotors names the rotor for each slot, leftmost (reflector) first.
	Rotors []string

	// Wheels is the initial wheel position word, one symbol per slot 2..N.
	Wheels string

	// Rings is the optional ring offset word, same length as Wheels.
	Rings string

	// Plugboard is the optional plugboard wiring in cycle notation.
	Plugboard string
}

// IsSettingsLine reports whether the line is a settings line rather than a
// message line.
func IsSettingsLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "*")
}

// Parse decodes a settings line for a machine with numRotors slots.
// Validation here is purely structural; name resolution and symbol checks
// happen when the settings are applied to a machine.
func Parse(line string, numRotors int) (*Settings, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "*") {
		return nil, fmt.Errorf("%w: settings line must start with %q", domain.ErrInvalidSetting, "*")
	}
	fields := strings.Fields(trimmed[1:])
	if len(fields) < numRotors+1 {
		return nil, fmt.Errorf("%w: need %d rotor names and a wheel setting", domain.ErrInvalidSetting, numRotors)
	}

	s := &Settings{
		Rotors: fields[:numRotors],
		Wheels: fields[numRotors],
	}
	rest := fields[numRotors+1:]

	// A bare word after the wheel setting is a ring setting; cycles follow.
	if len(rest) > 0 && !strings.HasPrefix(rest[0], "(") {
		s.Rings = rest[0]
		rest = rest[1:]
	}
	for _, f := range rest {
		if !strings.HasPrefix(f, "(") {
			return nil, fmt.Errorf("%w: unexpected token %q after settings", domain.ErrInvalidSetting, f)
		}
	}
	s.Plugboard = strings.Join(rest, " ")

	return s, nil
}
