package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNormalizeIdentifier(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain digits", "123456789", "123456789"},
		{"dotted national id", "12.345.678-9", "123456789"},
		{"with spaces and prefix", "ID 987 654", "987654"},
		{"empty", "", ""},
		{"no digits at all", "abc-def", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeIdentifier(tt.raw); got != tt.want {
				t.Errorf("NormalizeIdentifier(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseAmountText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"decimal comma", "50,00", "50"},
		{"decimal dot", "120.50", "120.5"},
		{"currency symbol", "$ 1200.00", "1200"},
		{"plain integer", "30", "30"},
		{"negative preserved", "-15.00", "-15"},
		{"garbage", "abc", "0"},
		{"empty", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmountText(tt.raw)
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("ParseAmountText(%q) = %s, want %s", tt.raw, got, want)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(decimal.NewFromInt(100)); err != nil {
		t.Errorf("unexpected error for valid amount: %v", err)
	}

	if err := ValidateAmount(decimal.Zero); err == nil {
		t.Error("expected error for zero amount")
	}

	if err := ValidateAmount(decimal.NewFromInt(-5)); err == nil {
		t.Error("expected error for negative amount")
	}

	huge := decimal.RequireFromString(MaxPaymentAmount).Add(decimal.NewFromInt(1))
	if err := ValidateAmount(huge); err == nil {
		t.Error("expected error for amount above maximum")
	}
}

func TestValidatePagination(t *testing.T) {
	limit, offset := ValidatePagination(0, -5)
	if limit != 50 || offset != 0 {
		t.Errorf("defaults = (%d, %d), want (50, 0)", limit, offset)
	}

	limit, _ = ValidatePagination(5000, 0)
	if limit != 1000 {
		t.Errorf("limit = %d, want clamped 1000", limit)
	}
}
