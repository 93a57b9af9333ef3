// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package document

import (
	"errors"
	"strings"
)

// Type selects which checksum a document is validated against.
type Type string

const (
	CPF  Type = "cpf"  // individual tax id, 11 digits
	CNPJ Type = "cnpj" // business tax id, 14 digits
)

var (
	ErrInvalidCPF  = errors.New("CPF inválido.")
	ErrInvalidCNPJ = errors.New("CNPJ inválido.")
	ErrInvalid     = errors.New("CPF ou CNPJ inválido.")
)

// Normalize strips everything but digits from user-entered text, so
// "111.444.777-35" and "11144477735" validate identically.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate checks user-entered text against the checksum for the given
// type. The returned error names the type it validated against.
func Validate(t Type, s string) error {
	digits := Normalize(s)
	switch t {
	case CNPJ:
		if !IsValidCNPJ(digits) {
			return ErrInvalidCNPJ
		}
	default:
		if !IsValidCPF(digits) {
			return ErrInvalidCPF
		}
	}
	return nil
}

// IsValid reports whether text is a valid CPF or a valid CNPJ once
// stripped to digits. This is the check the creation form runs.
func IsValid(s string) bool {
	digits := Normalize(s)
	return IsValidCPF(digits) || IsValidCNPJ(digits)
}

// IsValidCPF validates an 11-digit individual tax id using its two
// mod-11 check digits. Repeated-digit strings (e.g. "11111111111")
// pass the arithmetic but are reserved, so they are rejected.
func IsValidCPF(s string) bool {
	digits := Normalize(s)
	if len(digits) != 11 || allSame(digits) {
		return false
	}

	if checkDigitCPF(digits[:9], 10) != int(digits[9]-'0') {
		return false
	}
	return checkDigitCPF(digits[:10], 11) == int(digits[10]-'0')
}

// checkDigitCPF computes one CPF check digit: weights descend from
// firstWeight to 2, the weighted sum times 10 is taken mod 11, and a
// remainder of 10 maps to 0.
func checkDigitCPF(digits string, firstWeight int) int {
	sum := 0
	for i, c := range digits {
		sum += int(c-'0') * (firstWeight - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		rest = 0
	}
	return rest
}

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsValidCNPJ validates a 14-digit business tax id using its two
// mod-11 check digits. Repeated-digit strings are rejected.
func IsValidCNPJ(s string) bool {
	digits := Normalize(s)
	if len(digits) != 14 || allSame(digits) {
		return false
	}

	if checkDigitCNPJ(digits[:12], cnpjWeightsFirst) != int(digits[12]-'0') {
		return false
	}
	return checkDigitCNPJ(digits[:13], cnpjWeightsSecond) == int(digits[13]-'0')
}

// checkDigitCNPJ computes one CNPJ check digit: weighted sum mod 11,
// remainders below 2 map to 0, otherwise 11 minus the remainder.
func checkDigitCNPJ(digits string, weights []int) int {
	sum := 0
	for i, c := range digits {
		sum += int(c-'0') * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// Format applies the display mask for the detected digit length:
// 11 digits → 000.000.000-00, 14 digits → 00.000.000/0000-00.
// Any other length is returned as-is, unmasked.
func Format(s string) string {
	digits := Normalize(s)
	switch len(digits) {
	case 11:
		return digits[:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:]
	case 14:
		return digits[:2] + "." + digits[2:5] + "." + digits[5:8] + "/" + digits[8:12] + "-" + digits[12:]
	}
	return s
}

// Detect guesses the document type from digit length. Defaults to CPF
// for anything that is not 14 digits, matching the form's default
// selector position.
func Detect(s string) Type {
	if len(Normalize(s)) == 14 {
		return CNPJ
	}
	return CPF
}
