package sgsolar

import "testing"

func TestParseBRL(t *testing.T) {
	tests := []struct {
		input    string
		expected Money
		err      bool
	}{
		{"R$ 1.000,00", BRL(1000), false},
		{"R$ 1.234,56", BRL(1234.56), false},
		{"R$1.234,56", BRL(1234.56), false},
		{"500", BRL(500), false},
		{"1.234", BRL(1234), false}, // dots are thousands separators
		{"0,50", BRL(0.5), false},
		{"-150,00", BRL(-150), false},
		{"", Money{}, true},
		{"R$ ", Money{}, true},
		{"abc", Money{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBRL(tt.input)
			if tt.err {
				if err == nil {
					t.Fatalf("ParseBRL(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseBRL(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("ParseBRL(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseBRLOrZero(t *testing.T) {
	if v := ParseBRLOrZero(""); !v.IsZero() {
		t.Errorf("empty value should aggregate as zero, got %v", v)
	}
	if v := ParseBRLOrZero("garbage"); !v.IsZero() {
		t.Errorf("malformed value should aggregate as zero, got %v", v)
	}
	if v := ParseBRLOrZero("R$ 2,50"); !v.Equal(BRL(2.5)) {
		t.Errorf("got %v, want R$2,50", v)
	}
}

func TestMoneyString(t *testing.T) {
	tests := []struct {
		value    Money
		expected string
	}{
		{BRL(1500), "R$1.500,00"},
		{BRL(0.5), "R$0,50"},
		{BRL(1234567.89), "R$1.234.567,89"},
		{BRL(0), "R$0,00"},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := BRL(1000.10), BRL(0.20)

	if got := a.Add(b); !got.Equal(BRL(1000.30)) {
		t.Errorf("Add = %v, want R$1.000,30", got)
	}
	if got := b.Sub(a); !got.Equal(BRL(-999.90)) {
		t.Errorf("Sub = %v, want -R$999,90", got)
	}
	if !b.Sub(a).IsNegative() {
		t.Errorf("Sub result should be negative")
	}
	if got := a.Neg().Add(a); !got.IsZero() {
		t.Errorf("x.Neg()+x = %v, want zero", got)
	}
	// float arithmetic would fail this one
	if got := BRL(0.1).Add(BRL(0.2)); !got.Equal(BRL(0.3)) {
		t.Errorf("0,10 + 0,20 = %v, want R$0,30", got)
	}
}
