package domain

import "errors"

// ErrMalformedAlphabet is returned when an alphabet contains duplicate symbols.
var ErrMalformedAlphabet = errors.New("malformed alphabet")

// ErrMalformedPermutation is returned when a cycle-notation string is
// structurally invalid: unbalanced markers, whitespace inside an open cycle,
// a symbol outside the alphabet, or a symbol appearing in two cycles.
var ErrMalformedPermutation = errors.New("malformed permutation")

// ErrInvalidSymbol is returned when a symbol or index falls outside the
// configured alphabet.
var ErrInvalidSymbol = errors.New("symbol not in alphabet")

// ErrUnknownRotor is returned when a requested rotor name is not in the catalog.
var ErrUnknownRotor = errors.New("unknown rotor")

// ErrDuplicateRotor is returned when the same rotor definition is requested
// for two slots at once.
var ErrDuplicateRotor = errors.New("rotor already in use")

// ErrReflectorRequired is returned when slot 1 is assigned a non-reflecting rotor.
var ErrReflectorRequired = errors.New("first slot requires a reflector")

// ErrPawlCountMismatch is returned when the number of moving rotors assigned
// does not equal the machine's pawl count.
var ErrPawlCountMismatch = errors.New("moving rotor count does not match pawls")

// ErrInvalidSetting is returned when a wheel or ring settings string has the
// wrong length or contains symbols outside the alphabet.
var ErrInvalidSetting = errors.New("invalid setting")

// ErrAlphabetMismatch is returned when a plugboard permutation is defined
// over a different alphabet than the machine's.
var ErrAlphabetMismatch = errors.New("plugboard alphabet mismatch")

// ErrBadGeometry is returned when a machine is constructed with an
// impossible slot/pawl combination.
var ErrBadGeometry = errors.New("invalid machine geometry")
