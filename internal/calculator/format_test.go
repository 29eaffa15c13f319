package calculator

import (
	"strings"
	"testing"
	"unicode"

	"golang.org/x/text/language"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		code         string
		wantContains []string
	}{
		{"grouping and cents", 1234.5, "USD", []string{"$", "1,234.50"}},
		{"negative", -5, "USD", []string{"-", "5.00"}},
		{"zero-decimal currency", 1500, "JPY", []string{"1,500"}},
		{"unknown currency falls back to code", 3.5, "zzz", []string{"ZZZ", "3.50"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAmount(tt.amount, tt.code)
			for _, w := range tt.wantContains {
				if !strings.Contains(got, w) {
					t.Errorf("FormatAmount(%v, %s) = %q, want to contain %q", tt.amount, tt.code, got, w)
				}
			}
		})
	}
}

func TestFormatAmountIn_Locale(t *testing.T) {
	tests := []struct {
		name       string
		tag        language.Tag
		amount     float64
		code       string
		wantDigits string
		wantSuffix bool
		wantPrefix string
	}{
		{"german groups and trails the symbol", language.German, 1234.5, "EUR", "1.234,50", true, ""},
		{"french trails the symbol", language.French, -1234.5, "EUR", "", true, "-"},
		{"brazilian portuguese leads", language.BrazilianPortuguese, 10, "BRL", "", false, ""},
		{"portugal trails", language.MustParse("pt-PT"), 10, "EUR", "", true, ""},
		{"swiss german leads", language.MustParse("de-CH"), 10, "CHF", "", false, ""},
		{"us english leads", language.AmericanEnglish, 1234.5, "USD", "1,234.50", false, "$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAmountIn(tt.tag, tt.amount, tt.code)
			if tt.wantDigits != "" && !strings.Contains(got, tt.wantDigits) {
				t.Errorf("FormatAmountIn = %q, want digits %q", got, tt.wantDigits)
			}
			if tt.wantPrefix != "" && !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("FormatAmountIn = %q, want prefix %q", got, tt.wantPrefix)
			}
			lastIsDigit := unicode.IsDigit([]rune(got)[len([]rune(got))-1])
			if tt.wantSuffix == lastIsDigit {
				t.Errorf("FormatAmountIn = %q, symbol after amount = %v", got, tt.wantSuffix)
			}
		})
	}
}
