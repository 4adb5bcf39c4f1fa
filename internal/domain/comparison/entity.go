package comparison

import (
	"github.com/shopspring/decimal"
)

// Path identifies how the device is paid for
type Path string

const (
	PathOutright        Path = "outright"
	PathPreTaxDeduction Path = "pre_tax_deduction"
)

// MonthlyBreakdown - Take-home pay for one financing path
type MonthlyBreakdown struct {
	Path                   Path
	GrossMonthly           decimal.Decimal
	TaxableAnnual          decimal.Decimal
	TaxAnnual              decimal.Decimal
	TaxMonthly             decimal.Decimal
	NetSalaryMonthly       decimal.Decimal // taxable pay less tax, before any post-tax instalment
	DeviceMonthlyDeduction decimal.Decimal
	NetMonthly             decimal.Decimal
	NetAnnual              decimal.Decimal
}

// Comparison - Both paths side by side with the difference between them
type Comparison struct {
	GrossAnnualSalary decimal.Decimal
	DevicePrice       decimal.Decimal
	Outright          MonthlyBreakdown
	PreTaxDeduction   MonthlyBreakdown
	MonthlySavings    decimal.Decimal
	AnnualSavings     decimal.Decimal
}
