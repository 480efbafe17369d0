/*
Package rotary is a deterministic simulator of electromechanical rotor
cipher machines: interchangeable wired wheels, a fixed reflector, and a
plugboard, whose combined state advances with every character converted.

The engine is order-sensitive to the last detail. Rotor wirings are
specified in cycle notation, ring offsets bias both reading and (by
reference-faithful quirk) step size, and the stepping rule reproduces the
historical double-stepping coupling between adjacent wheels exactly as the
reference machine implements it.

# Concept

Rotary separates the pure cipher core (pkg/domain) from the catalog sources
and surfaces around it. The engine manages rotor assignment, stepping, and
signal routing, while adapters supply the rotor catalog (YAML file,
in-memory definitions, the dsl builder) and the embedding surface (CLI,
HTTP). This Hexagonal Architecture allows Rotary to be embedded in any
interface.

# Key Features

  - Deterministic Execution: the same configuration and input always
    produce the same output, and conversion is self-inverse.
  - Hexagonal Architecture: core logic is decoupled from catalog loaders
    and presentation adapters.
  - Faithful Quirks: the reference stepping anomaly and frozen notch
    positions are preserved by default, with a textbook stepping option.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/aretw0/rotary"
	)

	func main() {
		eng, err := rotary.New()
		if err != nil {
			log.Fatal(err)
		}

		if err := eng.Configure("* B Beta I II III AXLE"); err != nil {
			log.Fatal(err)
		}

		out, err := eng.Convert("HELLOWORLD")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(out)
	}
*/
package rotary
