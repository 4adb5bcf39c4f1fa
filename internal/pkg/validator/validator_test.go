package validator

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210", "12.50", "-123"}
	invalid := []string{"abc", "123a", "", "1.", ".5", "1e5", "1E5", "+5", "--1", "0x10"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"1200000", "1200000"},
		{" 60000 ", "60000"},
		{"12,00,000", "1200000"},
		{"1,200,000.50", "1200000.5"},
		{"₹ 75,000", "75000"},
		{"Rs.5000", "5000"},
		{"1_000", "1000"},
		{"1e5", "0"},
		{"1e8000000", "0"},
		{"1E999999999", "0"},
		{"12.5e-3", "0"},
		{"Infinity", "0"},
		{"", "0"},
		{"   ", "0"},
		{"abc", "0"},
		{"12abc", "0"},
		{"NaN", "0"},
		{"-5000", "0"},
	}
	for _, c := range cases {
		got := ParseAmount(c.input)
		if !got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("ParseAmount(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}

func TestAmountUnmarshalJSON(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{`{"v": 1200000}`, "1200000"},
		{`{"v": "1200000"}`, "1200000"},
		{`{"v": "12,00,000"}`, "1200000"},
		{`{"v": "not a number"}`, "0"},
		{`{"v": null}`, "0"},
		{`{"v": -10}`, "0"},
		{`{"v": 1e8000000}`, "0"},
		{`{"v": "1e8000000"}`, "0"},
		{`{"v": 2.5E3}`, "0"},
		{`{"v": true}`, "0"},
		{`{"v": {"nested": 1}}`, "0"},
		{`{}`, "0"},
	}
	for _, c := range cases {
		var payload struct {
			V Amount `json:"v"`
		}
		if err := json.Unmarshal([]byte(c.body), &payload); err != nil {
			t.Errorf("Unmarshal(%s) returned error %v", c.body, err)
			continue
		}
		if !payload.V.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("Unmarshal(%s) = %s, want %s", c.body, payload.V.Decimal, c.want)
		}
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "brackets", Message: "is required"},
		{Field: "cess_rate", Message: "must be non-negative"},
	}

	if got, want := errs.Error(), "brackets: is required; cess_rate: must be non-negative"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["cess_rate"] != "must be non-negative" {
		t.Errorf("ToMap() = %v", m)
	}
}
