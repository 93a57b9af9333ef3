// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package document validates and formats Brazilian tax ids (CPF and CNPJ).

Everything here is pure and deterministic: no I/O, no state, no
external dependency. Input is normalized to digits before any check, so
formatting noise ("111.444.777-35" vs "11144477735") never changes the
outcome.

# Validation

CPF (individual, 11 digits) and CNPJ (business, 14 digits) each carry
two mod-11 check digits; repeated-digit strings are rejected outright.

	document.IsValidCPF("11144477735")        // true
	document.IsValidCNPJ("11222333000181")    // true
	document.IsValid("111.444.777-35")        // true, either type

Validate checks against an explicitly selected type and returns a
localized error naming that type:

	err := document.Validate(document.CNPJ, input) // ErrInvalidCNPJ on failure

# Formatting

Format applies the national display mask by digit length and leaves
anything else untouched:

	document.Format("11144477735")    // "111.444.777-35"
	document.Format("11222333000181") // "11.222.333/0001-81"
	document.Format("12345")          // "12345"
*/
package document
