package money

import "testing"

func TestFormatGNF(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "0 GNF"},
		{"under a thousand", 950, "950 GNF"},
		{"thousands grouped", 250000, "250 000 GNF"},
		{"millions grouped", 1500000, "1 500 000 GNF"},
		{"exact boundary", 1000, "1 000 GNF"},
		{"fraction rounds", 2499.6, "2 500 GNF"},
		{"negative", -75000, "-75 000 GNF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatGNF(tt.amount); got != tt.want {
				t.Errorf("FormatGNF(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
