package comparison

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/device-benefit-calculator/internal/domain/comparison"
	"github.com/cmlabs-hris/device-benefit-calculator/internal/domain/tax"
	"github.com/cmlabs-hris/device-benefit-calculator/internal/pkg/currency"
	taxService "github.com/cmlabs-hris/device-benefit-calculator/internal/service/tax"
)

type ComparisonServiceImpl struct {
	logger *slog.Logger
}

func NewComparisonService(logger *slog.Logger) comparison.ComparisonService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ComparisonServiceImpl{logger: logger}
}

// ========== COMPARISON ==========

func (s *ComparisonServiceImpl) Compare(ctx context.Context, req comparison.CompareRequest) comparison.ComparisonResponse {
	result := Compute(req.GrossAnnualSalary.Decimal, req.DevicePrice.Decimal)

	s.logger.DebugContext(ctx, "comparison computed",
		slog.String("gross_annual_salary", result.GrossAnnualSalary.String()),
		slog.String("device_price", result.DevicePrice.String()),
		slog.String("annual_savings", result.AnnualSavings.String()),
	)

	resp := comparison.NewComparisonResponse(result)
	if req.WithDisplay {
		resp.Display = comparisonDisplay(result)
	}
	return resp
}

func comparisonDisplay(c comparison.Comparison) map[string]string {
	return map[string]string{
		"outright_gross_monthly":  currency.FormatINR(c.Outright.GrossMonthly),
		"outright_tax_monthly":    currency.FormatINR(c.Outright.TaxMonthly),
		"outright_net_salary":     currency.FormatINR(c.Outright.NetSalaryMonthly),
		"outright_device_monthly": currency.FormatINR(c.Outright.DeviceMonthlyDeduction),
		"outright_net_monthly":    currency.FormatINR(c.Outright.NetMonthly),
		"outright_net_annual":     currency.FormatINR(c.Outright.NetAnnual),
		"pre_tax_gross_monthly":   currency.FormatINR(c.PreTaxDeduction.GrossMonthly),
		"pre_tax_device_monthly":  currency.FormatINR(c.PreTaxDeduction.DeviceMonthlyDeduction),
		"pre_tax_tax_monthly":     currency.FormatINR(c.PreTaxDeduction.TaxMonthly),
		"pre_tax_net_salary":      currency.FormatINR(c.PreTaxDeduction.NetSalaryMonthly),
		"pre_tax_net_monthly":     currency.FormatINR(c.PreTaxDeduction.NetMonthly),
		"pre_tax_net_annual":      currency.FormatINR(c.PreTaxDeduction.NetAnnual),
		"monthly_savings":         currency.FormatINR(c.MonthlySavings),
		"annual_savings":          currency.FormatINR(c.AnnualSavings),
	}
}

// ========== TAX ==========

func (s *ComparisonServiceImpl) ComputeTax(ctx context.Context, req tax.TaxRequest) tax.TaxResponse {
	result := taxService.ComputeTotalTax(req.AnnualIncome.Decimal)

	s.logger.DebugContext(ctx, "tax computed",
		slog.String("annual_income", result.AnnualIncome.String()),
		slog.String("total_tax", result.TotalTax.String()),
		slog.Bool("floor_applied", result.FloorApplied),
	)

	resp := tax.TaxResponse{
		AnnualIncome:   result.AnnualIncome,
		TaxableIncome:  result.TaxableIncome,
		BasicTax:       result.BasicTax,
		SurchargeRate:  result.SurchargeRate,
		Surcharge:      result.Surcharge,
		MarginalRelief: result.MarginalRelief,
		Cess:           result.Cess,
		TotalTax:       result.TotalTax,
		MonthlyTax:     result.TotalTax.Div(monthsPerYear),
		NetIncome:      result.NetIncome(),
		FloorApplied:   result.FloorApplied,
	}
	if req.WithDisplay {
		resp.Display = map[string]string{
			"taxable_income":  currency.FormatINR(resp.TaxableIncome),
			"basic_tax":       currency.FormatINR(resp.BasicTax),
			"surcharge_rate":  currency.FormatRate(resp.SurchargeRate),
			"surcharge":       currency.FormatINR(resp.Surcharge),
			"marginal_relief": currency.FormatINR(resp.MarginalRelief),
			"cess":            currency.FormatINR(resp.Cess),
			"total_tax":       currency.FormatINR(resp.TotalTax),
			"monthly_tax":     currency.FormatINR(resp.MonthlyTax),
			"net_income":      currency.FormatINR(resp.NetIncome),
		}
	}
	return resp
}

// ========== SCHEDULE ==========

func (s *ComparisonServiceImpl) GetSchedule(ctx context.Context) (tax.ScheduleResponse, error) {
	schedule := taxService.DefaultSchedule()
	if err := schedule.Validate(); err != nil {
		s.logger.ErrorContext(ctx, "invalid tax schedule", slog.String("schedule", schedule.Name), slog.Any("error", err))
		return tax.ScheduleResponse{}, err
	}
	return tax.NewScheduleResponse(schedule), nil
}
