package rational

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewFromDecimal(t *testing.T) {
	tests := []struct {
		d    decimal.Decimal
		want string
	}{
		{decimal.RequireFromString("0.75"), "3/4"},
		{decimal.RequireFromString("-0.5"), "-1/2"},
		{decimal.RequireFromString("123.45"), "2469/20"},
		{decimal.New(5, 3), "5000/1"},
		{decimal.New(-25, -1), "-5/2"},
		{decimal.New(0, -5), "0/1"},
		{decimal.New(42, 0), "42/1"},
	}
	for _, tt := range tests {
		if got := NewFromDecimal(tt.d); got.String() != tt.want {
			t.Errorf("NewFromDecimal(%q) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestRational_Decimal(t *testing.T) {
	tests := []struct {
		r     string
		scale int32
		want  string
	}{
		{"3/4", 2, "0.75"},
		{"1/3", 2, "0.33"},
		{"2/3", 2, "0.67"},
		{"-2/3", 2, "-0.67"},
		{"1/2", 0, "1"},
		{"5/1", 4, "5"},
	}
	for _, tt := range tests {
		r := MustParse(tt.r)
		if got := r.Decimal(tt.scale); got.String() != tt.want {
			t.Errorf("%q.Decimal(%v) = %q, want %q", tt.r, tt.scale, got, tt.want)
		}
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1", "-1", "0.5", "123.45", "-0.001", "99999.99999"} {
		d := decimal.RequireFromString(s)
		r := NewFromDecimal(d)
		back := r.Decimal(-d.Exponent())
		if !back.Equal(d) {
			t.Errorf("round trip of %q through Rational = %q", d, back)
		}
	}
}
