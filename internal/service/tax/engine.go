package tax

import (
	"github.com/cmlabs-hris/device-benefit-calculator/internal/domain/tax"
	"github.com/shopspring/decimal"
)

// Engine computes income tax for one schedule. It holds no mutable state.
type Engine struct {
	schedule tax.Schedule
}

func NewEngine(schedule tax.Schedule) *Engine {
	return &Engine{schedule: schedule}
}

var defaultEngine = NewEngine(tax.NewRegime2025())

// DefaultSchedule returns the schedule used by the package-level functions.
func DefaultSchedule() tax.Schedule {
	return defaultEngine.Schedule()
}

// ComputeBasicTax returns the slab tax on income under the default schedule.
func ComputeBasicTax(income decimal.Decimal) decimal.Decimal {
	return defaultEngine.ComputeBasicTax(income)
}

// ComputeTotalTax returns the full tax breakdown under the default schedule.
func ComputeTotalTax(annualIncome decimal.Decimal) tax.TaxResult {
	return defaultEngine.ComputeTotalTax(annualIncome)
}

// TotalTax returns only the annual tax payable under the default schedule.
func TotalTax(annualIncome decimal.Decimal) decimal.Decimal {
	return defaultEngine.ComputeTotalTax(annualIncome).TotalTax
}

func (e *Engine) Schedule() tax.Schedule {
	return e.schedule
}

// TaxableIncome applies the standard deduction, floored at zero.
func (e *Engine) TaxableIncome(income decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, income.Sub(e.schedule.StandardDeduction))
}

// ComputeBasicTax applies the progressive slabs to the taxable income.
// Income at or below the rebate ceiling owes nothing; the ceiling is
// checked against income before the standard deduction.
func (e *Engine) ComputeBasicTax(income decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(e.schedule.RebateCeiling) {
		return decimal.Zero
	}

	taxable := e.TaxableIncome(income)
	basic := decimal.Zero
	for _, b := range e.schedule.Brackets {
		if taxable.LessThanOrEqual(b.Lower) {
			break
		}
		top := taxable
		if b.Upper.Valid && b.Upper.Decimal.LessThan(top) {
			top = b.Upper.Decimal
		}
		basic = basic.Add(top.Sub(b.Lower).Mul(b.Rate))
	}
	return basic
}

// ComputeTotalTax adds surcharge, marginal relief and cess to the basic
// tax, then applies the floor-income guarantee as a final override.
func (e *Engine) ComputeTotalTax(annualIncome decimal.Decimal) tax.TaxResult {
	basic := e.ComputeBasicTax(annualIncome)
	result := tax.TaxResult{
		AnnualIncome:  annualIncome,
		TaxableIncome: e.TaxableIncome(annualIncome),
		BasicTax:      basic,
		SurchargeRate: decimal.Zero,
		Surcharge:     decimal.Zero,
	}

	tier := e.surchargeTier(annualIncome)
	if tier >= 0 {
		result.SurchargeRate = e.schedule.SurchargeTiers[tier].Rate
		result.Surcharge = basic.Mul(result.SurchargeRate)
	}

	beforeCess := basic.Add(result.Surcharge)
	if tier >= 0 {
		excessIncome := annualIncome.Sub(e.schedule.SurchargeTiers[tier].Threshold)
		excessTax := beforeCess.Sub(e.anchorTaxBeforeCess(tier))
		if excessTax.GreaterThan(excessIncome) {
			beforeCess = beforeCess.Sub(excessTax.Sub(excessIncome))
		}
	}

	floor := e.schedule.FloorIncome
	if annualIncome.Sub(beforeCess).LessThan(floor) && annualIncome.GreaterThan(floor) {
		beforeCess = decimal.Max(decimal.Zero, annualIncome.Sub(floor))
		result.FloorApplied = true
	}

	result.MarginalRelief = basic.Add(result.Surcharge).Sub(beforeCess)
	result.Cess = beforeCess.Mul(e.schedule.CessRate)
	result.TotalTax = beforeCess.Add(result.Cess)
	return result
}

// surchargeTier returns the index of the highest tier whose threshold the
// income exceeds, or -1 when no surcharge applies.
func (e *Engine) surchargeTier(income decimal.Decimal) int {
	for i := len(e.schedule.SurchargeTiers) - 1; i >= 0; i-- {
		if income.GreaterThan(e.schedule.SurchargeTiers[i].Threshold) {
			return i
		}
	}
	return -1
}

// anchorTaxBeforeCess is the tax before cess owed exactly at a tier's
// threshold, where the previous tier's rate still applies.
func (e *Engine) anchorTaxBeforeCess(tier int) decimal.Decimal {
	threshold := e.schedule.SurchargeTiers[tier].Threshold
	basic := e.ComputeBasicTax(threshold)
	if tier == 0 {
		return basic
	}
	prevRate := e.schedule.SurchargeTiers[tier-1].Rate
	return basic.Add(basic.Mul(prevRate))
}
