package memory

import "github.com/aretw0/rotary/pkg/domain"

// StandardAlphabet is the 26-letter Latin alphabet used by the historical
// machines the standard catalog describes.
const StandardAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// StandardSpecs returns the historical Enigma I rotor set: rotors I-VIII,
// the non-rotating Beta and Gamma wheels, and reflectors B and C, in cycle
// notation.
func StandardSpecs() []domain.RotorSpec {
	return []domain.RotorSpec{
		{Name: "I", Role: domain.RoleMoving, Wiring: "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)", Notches: "Q"},
		{Name: "II", Role: domain.RoleMoving, Wiring: "(FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT) (A) (Q)", Notches: "E"},
		{Name: "III", Role: domain.RoleMoving, Wiring: "(ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)", Notches: "V"},
		{Name: "IV", Role: domain.RoleMoving, Wiring: "(AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)", Notches: "J"},
		{Name: "V", Role: domain.RoleMoving, Wiring: "(AVOLDRWFIUQ) (BZKSMNHYC) (EGTJPX)", Notches: "Z"},
		{Name: "VI", Role: domain.RoleMoving, Wiring: "(AJQDVLEOZWIYTS) (CGMNHFUX) (BPRK)", Notches: "ZM"},
		{Name: "VII", Role: domain.RoleMoving, Wiring: "(ANOUPFRIMBZTLWKSVEGCJYDHXQ)", Notches: "ZM"},
		{Name: "VIII", Role: domain.RoleMoving, Wiring: "(AFLSETWUNDHOZVICQ) (BKJ) (GXY) (MPR)", Notches: "ZM"},
		{Name: "Beta", Role: domain.RoleFixed, Wiring: "(ALBEVFCYODJWUGNMQTZSKPR) (HIX)"},
		{Name: "Gamma", Role: domain.RoleFixed, Wiring: "(AFNIRLBSQWVXGUZDKMTPCOYJHE)"},
		{Name: "B", Role: domain.RoleReflector, Wiring: "(AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)"},
		{Name: "C", Role: domain.RoleReflector, Wiring: "(AR) (BD) (CO) (EJ) (FN) (GT) (HK) (IV) (LM) (PW) (QZ) (SX) (UY)"},
	}
}

// NewStandard returns a loader holding the standard catalog: five slots,
// three pawls, full historical rotor set.
func NewStandard() *Loader {
	return NewLoader(StandardAlphabet, 5, 3, StandardSpecs())
}
