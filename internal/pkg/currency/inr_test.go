package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"zero", "0", "₹0"},
		{"small integer", "5", "₹5"},
		{"rounds half up", "42.50", "₹43"},
		{"rounds down", "999.49", "₹999"},
		{"thousands", "1234.56", "₹1,235"},
		{"lakhs", "123456", "₹1,23,456"},
		{"ten lakhs", "1275000", "₹12,75,000"},
		{"crores", "12345678", "₹1,23,45,678"},
		{"ten crores", "123456789", "₹12,34,56,789"},
		{"negative", "-5000", "-₹5,000"},
		{"negative lakhs", "-250000.4", "-₹2,50,000"},
		{"repeating monthly figure", "116666.6666666666666667", "₹1,16,667"},
		{"exact crore boundary", "10000000", "₹1,00,00,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, FormatINR(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestFormatRate(t *testing.T) {
	assert.Equal(t, "0%", FormatRate(decimal.Zero))
	assert.Equal(t, "10%", FormatRate(decimal.NewFromFloat(0.10)))
	assert.Equal(t, "25%", FormatRate(decimal.NewFromFloat(0.25)))
	assert.Equal(t, "4%", FormatRate(decimal.NewFromFloat(0.04)))
}

func TestApplyIndianGrouping(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"5", "5"},
		{"999", "999"},
		{"1234", "1,234"},
		{"12345", "12,345"},
		{"123456", "1,23,456"},
		{"1234567", "12,34,567"},
		{"1234567890", "1,23,45,67,890"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, applyIndianGrouping(tt.input), tt.input)
	}
}
