/*
Package domain contains the core models and business logic for the Rotary engine.

It defines the fundamental entities of a rotor cipher machine: the Alphabet,
cycle-notation Permutations, the Rotor variants (reflecting, fixed, moving),
and the Machine that routes a signal through a bank of rotor slots. This
package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Alphabet: an ordered set of distinct symbols with a symbol<->index bijection.
  - Permutation: an immutable bijection on alphabet indices, built from cycle notation.
  - Rotor: a wired wheel with a mutable angular setting and ring offset.
  - Machine: a slot->rotor assignment plus plugboard, advanced once per character.
  - Catalog: the set of rotor definitions available to a machine, plus its geometry.
*/
package domain
