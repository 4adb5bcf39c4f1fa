package cmd

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/device-benefit-calculator/internal/domain/comparison"
	"github.com/cmlabs-hris/device-benefit-calculator/internal/pkg/currency"
	"github.com/cmlabs-hris/device-benefit-calculator/internal/pkg/validator"
	comparisonService "github.com/cmlabs-hris/device-benefit-calculator/internal/service/comparison"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var salary, device string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare buying a device outright against the Device Benefit Program",
		Example: `  calc compare --salary 1400000 --device 200000
  calc compare --salary "14,00,000" --device "₹2,00,000"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := comparisonService.Compute(validator.ParseAmount(salary), validator.ParseAmount(device))
			printComparison(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&salary, "salary", "s", "", "Gross annual salary")
	cmd.Flags().StringVarP(&device, "device", "d", "", "Device value")
	return cmd
}

func printComparison(w io.Writer, c comparison.Comparison) {
	fmt.Fprintln(w, TitleStyle.Render("Device Benefit Tax Calculator"))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "%s %s\n", SavingsStyle.Render("Total Savings:"), currency.FormatINR(c.AnnualSavings))
	fmt.Fprintf(w, "Monthly Savings via Device Benefit Program: %s\n", currency.FormatINR(c.MonthlySavings))
	fmt.Fprintln(w)

	out := c.Outright
	fmt.Fprintln(w, HeaderStyle.Render("Buying via eCommerce and Retailers"))
	printRow(w, "Gross Monthly Salary", currency.FormatINR(out.GrossMonthly))
	printRow(w, "Tax", "-"+currency.FormatINR(out.TaxMonthly))
	printRow(w, "Net Monthly Salary", currency.FormatINR(out.NetSalaryMonthly))
	printRow(w, "Post-Tax Device Deduction (Assuming 0 EMI Cost)", "-"+currency.FormatINR(out.DeviceMonthlyDeduction))
	printRow(w, "Remaining Amount Monthly", currency.FormatINR(out.NetMonthly))
	printRow(w, "Remaining Amount Annual", currency.FormatINR(out.NetAnnual))
	fmt.Fprintln(w)

	pre := c.PreTaxDeduction
	fmt.Fprintln(w, HeaderStyle.Render("Buying via Device Benefit Program"))
	printRow(w, "Gross Monthly Salary", currency.FormatINR(pre.GrossMonthly))
	printRow(w, "Pre-Tax Device Deduction", "-"+currency.FormatINR(pre.DeviceMonthlyDeduction))
	printRow(w, "Tax", "-"+currency.FormatINR(pre.TaxMonthly))
	printRow(w, "Net Monthly Salary", currency.FormatINR(pre.NetSalaryMonthly))
	printRow(w, "Remaining Amount Monthly", currency.FormatINR(pre.NetMonthly))
	printRow(w, "Remaining Amount Annual", currency.FormatINR(pre.NetAnnual))
}

func printRow(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-50s %16s\n", label, value)
}
