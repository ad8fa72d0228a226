package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Validation constants
const (
	MaxReferenceCodeLength = 64
	MinReferenceCodeLength = 1
	MaxPaymentAmount       = "1000000000" // 1 billion
)

// ValidateAmount validates a payment amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxPaymentAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrInvalidAmount, MaxPaymentAmount)
	}

	return nil
}

// ValidateReferenceCode validates a loan reference code.
func ValidateReferenceCode(code string) error {
	code = strings.TrimSpace(code)

	if len(code) < MinReferenceCodeLength {
		return fmt.Errorf("%w: reference code cannot be empty", ErrInvalidReferenceCode)
	}

	if len(code) > MaxReferenceCodeLength {
		return fmt.Errorf("%w: reference code exceeds %d characters", ErrInvalidReferenceCode, MaxReferenceCodeLength)
	}

	return nil
}

// NormalizeIdentifier strips everything but digits from a raw borrower
// identifier as it arrives from an uploaded row.
func NormalizeIdentifier(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// NormalizeAmountText cleans a raw amount cell: decimal comma becomes a
// dot, currency symbols and grouping junk are dropped. A leading minus
// sign is preserved so that negative amounts fail validation instead of
// being silently flipped.
func NormalizeAmountText(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, ",", ".")

	var b strings.Builder
	for i, r := range raw {
		switch {
		case unicode.IsDigit(r), r == '.':
			b.WriteRune(r)
		case r == '-' && i == 0:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ParseAmountText normalizes and parses a raw amount cell.
// A cell that cannot be parsed yields zero.
func ParseAmountText(raw string) decimal.Decimal {
	normalized := NormalizeAmountText(raw)
	if normalized == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
