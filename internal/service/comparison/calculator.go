package comparison

import (
	"github.com/cmlabs-hris/device-benefit-calculator/internal/domain/comparison"
	taxService "github.com/cmlabs-hris/device-benefit-calculator/internal/service/tax"
	"github.com/shopspring/decimal"
)

var monthsPerYear = decimal.NewFromInt(12)

// Compute compares buying the device outright from net pay against paying
// for it through a pre-tax salary deduction. The device cost is spread
// over twelve monthly instalments on both paths.
func Compute(grossAnnualSalary, devicePrice decimal.Decimal) comparison.Comparison {
	outright := computeOutright(grossAnnualSalary, devicePrice)
	preTax := computePreTaxDeduction(grossAnnualSalary, devicePrice)

	return comparison.Comparison{
		GrossAnnualSalary: grossAnnualSalary,
		DevicePrice:       devicePrice,
		Outright:          outright,
		PreTaxDeduction:   preTax,
		MonthlySavings:    preTax.NetMonthly.Sub(outright.NetMonthly),
		AnnualSavings:     preTax.NetAnnual.Sub(outright.NetAnnual),
	}
}

// computeOutright taxes the full salary; the instalment comes out of net pay.
func computeOutright(grossAnnual, devicePrice decimal.Decimal) comparison.MonthlyBreakdown {
	taxAnnual := taxService.TotalTax(grossAnnual)
	grossMonthly := grossAnnual.Div(monthsPerYear)
	taxMonthly := taxAnnual.Div(monthsPerYear)
	deviceMonthly := devicePrice.Div(monthsPerYear)
	netSalaryMonthly := grossMonthly.Sub(taxMonthly)

	return comparison.MonthlyBreakdown{
		Path:                   comparison.PathOutright,
		GrossMonthly:           grossMonthly,
		TaxableAnnual:          grossAnnual,
		TaxAnnual:              taxAnnual,
		TaxMonthly:             taxMonthly,
		NetSalaryMonthly:       netSalaryMonthly,
		DeviceMonthlyDeduction: deviceMonthly,
		NetMonthly:             netSalaryMonthly.Sub(deviceMonthly),
		NetAnnual:              grossAnnual.Sub(taxAnnual).Sub(devicePrice),
	}
}

// computePreTaxDeduction removes the device cost from salary before tax.
// The deduction is already inside the reduced base and is reported only.
func computePreTaxDeduction(grossAnnual, devicePrice decimal.Decimal) comparison.MonthlyBreakdown {
	adjustedAnnual := grossAnnual.Sub(devicePrice)
	taxAnnual := taxService.TotalTax(adjustedAnnual)
	taxMonthly := taxAnnual.Div(monthsPerYear)
	netSalaryMonthly := adjustedAnnual.Div(monthsPerYear).Sub(taxMonthly)

	return comparison.MonthlyBreakdown{
		Path:                   comparison.PathPreTaxDeduction,
		GrossMonthly:           grossAnnual.Div(monthsPerYear),
		TaxableAnnual:          adjustedAnnual,
		TaxAnnual:              taxAnnual,
		TaxMonthly:             taxMonthly,
		NetSalaryMonthly:       netSalaryMonthly,
		DeviceMonthlyDeduction: devicePrice.Div(monthsPerYear),
		NetMonthly:             netSalaryMonthly,
		NetAnnual:              adjustedAnnual.Sub(taxAnnual),
	}
}
