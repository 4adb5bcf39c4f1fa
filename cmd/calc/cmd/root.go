package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "calc",
		Short: "Device Benefit Tax Calculator",
		Long: `Compare your savings when buying devices via the Device Benefit Program.

Buying outright pays for the device out of net salary. The Device Benefit
Program deducts the device from gross salary before income tax, under the
New Tax Regime FY 2025-26.`,
		SilenceUsage: true,
	}
	root.AddCommand(newCompareCmd(), newTaxCmd())
	return root
}

func Execute() error {
	return rootCmd.Execute()
}
