package comparison

import (
	"github.com/cmlabs-hris/device-benefit-calculator/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== COMPARISON DTOs ==========

type CompareRequest struct {
	GrossAnnualSalary validator.Amount `json:"gross_annual_salary"`
	DevicePrice       validator.Amount `json:"device_price"`
	WithDisplay       bool             `json:"-"`
}

type MonthlyBreakdownResponse struct {
	Path                   string          `json:"path"`
	GrossMonthly           decimal.Decimal `json:"gross_monthly"`
	TaxableAnnual          decimal.Decimal `json:"taxable_annual"`
	TaxAnnual              decimal.Decimal `json:"tax_annual"`
	TaxMonthly             decimal.Decimal `json:"tax_monthly"`
	NetSalaryMonthly       decimal.Decimal `json:"net_salary_monthly"`
	DeviceMonthlyDeduction decimal.Decimal `json:"device_monthly_deduction"`
	NetMonthly             decimal.Decimal `json:"net_monthly"`
	NetAnnual              decimal.Decimal `json:"net_annual"`
}

type ComparisonResponse struct {
	GrossAnnualSalary decimal.Decimal          `json:"gross_annual_salary"`
	DevicePrice       decimal.Decimal          `json:"device_price"`
	Outright          MonthlyBreakdownResponse `json:"outright"`
	PreTaxDeduction   MonthlyBreakdownResponse `json:"pre_tax_deduction"`
	MonthlySavings    decimal.Decimal          `json:"monthly_savings"`
	AnnualSavings     decimal.Decimal          `json:"annual_savings"`
	Display           map[string]string        `json:"display,omitempty"`
}

func NewMonthlyBreakdownResponse(b MonthlyBreakdown) MonthlyBreakdownResponse {
	return MonthlyBreakdownResponse{
		Path:                   string(b.Path),
		GrossMonthly:           b.GrossMonthly,
		TaxableAnnual:          b.TaxableAnnual,
		TaxAnnual:              b.TaxAnnual,
		TaxMonthly:             b.TaxMonthly,
		NetSalaryMonthly:       b.NetSalaryMonthly,
		DeviceMonthlyDeduction: b.DeviceMonthlyDeduction,
		NetMonthly:             b.NetMonthly,
		NetAnnual:              b.NetAnnual,
	}
}

func NewComparisonResponse(c Comparison) ComparisonResponse {
	return ComparisonResponse{
		GrossAnnualSalary: c.GrossAnnualSalary,
		DevicePrice:       c.DevicePrice,
		Outright:          NewMonthlyBreakdownResponse(c.Outright),
		PreTaxDeduction:   NewMonthlyBreakdownResponse(c.PreTaxDeduction),
		MonthlySavings:    c.MonthlySavings,
		AnnualSavings:     c.AnnualSavings,
	}
}
