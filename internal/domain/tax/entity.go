package tax

import (
	"github.com/shopspring/decimal"
)

// TaxBracket - One slab of the progressive schedule
type TaxBracket struct {
	Lower decimal.Decimal
	Upper decimal.NullDecimal // Valid=false on the last, unbounded slab
	Rate  decimal.Decimal
}

// SurchargeTier - Surcharge rate applied once raw income exceeds Threshold
type SurchargeTier struct {
	Threshold decimal.Decimal
	Rate      decimal.Decimal
}

// Schedule - A complete income tax regime
type Schedule struct {
	Name              string
	StandardDeduction decimal.Decimal
	RebateCeiling     decimal.Decimal
	Brackets          []TaxBracket
	SurchargeTiers    []SurchargeTier
	CessRate          decimal.Decimal
	FloorIncome       decimal.Decimal
}

// TaxResult - Breakdown of the annual tax payable on one income
type TaxResult struct {
	AnnualIncome   decimal.Decimal
	TaxableIncome  decimal.Decimal
	BasicTax       decimal.Decimal
	SurchargeRate  decimal.Decimal
	Surcharge      decimal.Decimal
	MarginalRelief decimal.Decimal
	Cess           decimal.Decimal
	TotalTax       decimal.Decimal
	FloorApplied   bool
}

// TaxBeforeCess returns the relieved basic tax plus surcharge.
func (r TaxResult) TaxBeforeCess() decimal.Decimal {
	return r.BasicTax.Add(r.Surcharge).Sub(r.MarginalRelief)
}

// NetIncome returns the annual income left after TotalTax.
func (r TaxResult) NetIncome() decimal.Decimal {
	return r.AnnualIncome.Sub(r.TotalTax)
}

func lakh(n int64) decimal.Decimal {
	return decimal.NewFromInt(n * 100000)
}

func bracket(lower, upper int64, rate float64) TaxBracket {
	return TaxBracket{
		Lower: lakh(lower),
		Upper: decimal.NewNullDecimal(lakh(upper)),
		Rate:  decimal.NewFromFloat(rate),
	}
}

// NewRegime2025 returns the new tax regime for FY 2025-26 (AY 2026-27).
// The surcharge thresholds are the statutory 50 lakh / 1 crore / 2 crore
// limits shifted by the standard deduction, since they are compared
// against salary before the deduction.
func NewRegime2025() Schedule {
	return Schedule{
		Name:              "New Tax Regime FY 2025-26",
		StandardDeduction: decimal.NewFromInt(75000),
		RebateCeiling:     decimal.NewFromInt(1275000),
		Brackets: []TaxBracket{
			bracket(0, 4, 0),
			bracket(4, 8, 0.05),
			bracket(8, 12, 0.10),
			bracket(12, 16, 0.15),
			bracket(16, 20, 0.20),
			bracket(20, 24, 0.25),
			{Lower: lakh(24), Rate: decimal.NewFromFloat(0.30)},
		},
		SurchargeTiers: []SurchargeTier{
			{Threshold: decimal.NewFromInt(5075000), Rate: decimal.NewFromFloat(0.10)},
			{Threshold: decimal.NewFromInt(10075000), Rate: decimal.NewFromFloat(0.15)},
			{Threshold: decimal.NewFromInt(20075000), Rate: decimal.NewFromFloat(0.25)},
		},
		CessRate:    decimal.NewFromFloat(0.04),
		FloorIncome: decimal.NewFromInt(1275000),
	}
}
