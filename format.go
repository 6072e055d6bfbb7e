package sgsolar

import (
	"fmt"
	"strings"
	"unicode"
)

// Input masks for Brazilian identifiers. The registration form applies them
// as the operator types; here they normalize whatever reaches the store.

// onlyDigits removes anything that is not a digit.
func onlyDigits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// FormatCPF renders 11 digits as 000.000.000-00. Shorter input is masked as
// far as it goes; excess digits are dropped.
func FormatCPF(s string) string {
	d := onlyDigits(s)
	if len(d) > 11 {
		d = d[:11]
	}
	return mask(d, "###.###.###-##")
}

// FormatCNPJ renders 14 digits as 00.000.000/0000-00.
func FormatCNPJ(s string) string {
	d := onlyDigits(s)
	if len(d) > 14 {
		d = d[:14]
	}
	return mask(d, "##.###.###/####-##")
}

// FormatCEP renders 8 digits as 00000-000.
func FormatCEP(s string) string {
	d := onlyDigits(s)
	if len(d) > 8 {
		d = d[:8]
	}
	return mask(d, "#####-###")
}

// FormatPhone renders Brazilian phone numbers as (00) 0000-0000 or
// (00) 00000-0000 depending on length.
func FormatPhone(s string) string {
	d := onlyDigits(s)
	if len(d) > 11 {
		d = d[:11]
	}
	if len(d) <= 10 {
		return mask(d, "(##) ####-####")
	}
	return mask(d, "(##) #####-####")
}

// mask fills '#' placeholders with digits, stopping at the last digit so
// partial input renders without trailing punctuation.
func mask(digits, pattern string) string {
	var b strings.Builder
	i := 0
	for _, r := range pattern {
		if i >= len(digits) {
			break
		}
		if r == '#' {
			b.WriteByte(digits[i])
			i++
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatDocNumber applies the mask matching the document type.
func FormatDocNumber(t DocType, s string) string {
	switch t {
	case DocCPF:
		return FormatCPF(s)
	case DocCNPJ:
		return FormatCNPJ(s)
	case DocRG:
		d := onlyDigits(s)
		if len(d) > 9 {
			d = d[:9]
		}
		return d
	}
	return s
}

// ValidateCPF checks length and the two verification digits.
func ValidateCPF(s string) error {
	d := onlyDigits(s)
	if len(d) != 11 {
		return fmt.Errorf("CPF must have 11 digits, got %d", len(d))
	}
	if allEqual(d) {
		return fmt.Errorf("CPF %q is a repeated-digit sequence", s)
	}
	for _, n := range []int{9, 10} {
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(d[i]-'0') * (n + 1 - i)
		}
		digit := 11 - sum%11
		if digit >= 10 {
			digit = 0
		}
		if digit != int(d[n]-'0') {
			return fmt.Errorf("CPF %q has an invalid check digit", s)
		}
	}
	return nil
}

// ValidateCNPJ checks length and the two verification digits.
func ValidateCNPJ(s string) error {
	d := onlyDigits(s)
	if len(d) != 14 {
		return fmt.Errorf("CNPJ must have 14 digits, got %d", len(d))
	}
	if allEqual(d) {
		return fmt.Errorf("CNPJ %q is a repeated-digit sequence", s)
	}
	weights := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	for _, n := range []int{12, 13} {
		w := weights
		if n == 13 {
			w = append([]int{6}, weights...)
		}
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(d[i]-'0') * w[i]
		}
		digit := sum % 11
		if digit < 2 {
			digit = 0
		} else {
			digit = 11 - digit
		}
		if digit != int(d[n]-'0') {
			return fmt.Errorf("CNPJ %q has an invalid check digit", s)
		}
	}
	return nil
}

func allEqual(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
