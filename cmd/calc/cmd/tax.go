package cmd

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/device-benefit-calculator/internal/domain/tax"
	"github.com/cmlabs-hris/device-benefit-calculator/internal/pkg/currency"
	"github.com/cmlabs-hris/device-benefit-calculator/internal/pkg/validator"
	taxService "github.com/cmlabs-hris/device-benefit-calculator/internal/service/tax"
	"github.com/spf13/cobra"
)

func newTaxCmd() *cobra.Command {
	var income string

	cmd := &cobra.Command{
		Use:     "tax",
		Short:   "Show the income tax breakdown for an annual income",
		Example: `  calc tax --income 5075100`,
		RunE: func(cmd *cobra.Command, args []string) error {
			printTax(cmd.OutOrStdout(), taxService.ComputeTotalTax(validator.ParseAmount(income)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&income, "income", "i", "", "Gross annual income")
	return cmd
}

func printTax(w io.Writer, r tax.TaxResult) {
	fmt.Fprintln(w, TitleStyle.Render(taxService.DefaultSchedule().Name))
	fmt.Fprintln(w)

	printRow(w, "Annual Income", currency.FormatINR(r.AnnualIncome))
	printRow(w, "Taxable Income", currency.FormatINR(r.TaxableIncome))
	printRow(w, "Basic Tax", currency.FormatINR(r.BasicTax))
	printRow(w, "Surcharge ("+currency.FormatRate(r.SurchargeRate)+")", currency.FormatINR(r.Surcharge))
	printRow(w, "Marginal Relief", "-"+currency.FormatINR(r.MarginalRelief))
	printRow(w, "Health & Education Cess", currency.FormatINR(r.Cess))
	printRow(w, "Total Tax", currency.FormatINR(r.TotalTax))
	printRow(w, "Net Income", currency.FormatINR(r.NetIncome()))
	if r.FloorApplied {
		fmt.Fprintln(w, MutedStyle.Render("  Tax capped so that net income does not fall below the rebate ceiling."))
	}
}
