// Package validator checks a loaded rotor catalog for consistency problems
// that the domain constructors cannot see in isolation.
package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/rotary/pkg/domain"
)

// ValidateCatalog inspects the whole catalog and reports every finding at
// once, rather than stopping at the first.
func ValidateCatalog(cat *domain.Catalog) error {
	var findings []string

	seen := make(map[string]bool)
	reflectors := 0
	moving := 0
	for _, r := range cat.Rotors {
		if seen[r.Name()] {
			findings = append(findings, fmt.Sprintf("rotor name '%s' defined more than once", r.Name()))
		}
		seen[r.Name()] = true

		if r.Reflects() {
			reflectors++
			if !r.Permutation().Derangement() {
				findings = append(findings, fmt.Sprintf("reflector '%s' wiring is not a derangement", r.Name()))
			}
		}
		if r.Rotates() {
			moving++
		}
	}

	if reflectors == 0 {
		findings = append(findings, "catalog has no reflector; slot 1 can never be filled")
	}
	if moving < cat.Pawls {
		findings = append(findings,
			fmt.Sprintf("catalog has %d moving rotors but the machine needs %d", moving, cat.Pawls))
	}
	if len(cat.Rotors) < cat.Slots {
		findings = append(findings,
			fmt.Sprintf("catalog has %d rotors for %d slots", len(cat.Rotors), cat.Slots))
	}

	if len(findings) > 0 {
		return fmt.Errorf("found %d problems:\n- %s", len(findings), strings.Join(findings, "\n- "))
	}

	return nil
}
