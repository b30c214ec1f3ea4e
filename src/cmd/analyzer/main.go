package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/Zsolt-Forray/options-strategies/src/cmd/analyzer/run"
)

var rootCmd = &cobra.Command{
	Use:   "analyzer",
	Short: "Ranks vertical spread strategies by expected result",
	Long: `Prices European-style options with the Black-Scholes model and evaluates
vertical spread strategies over a grid of strike pairs around the stock price:
1.) Each strike pair is priced as two legs of the selected strategy
2.) Break even point, probability of gain/loss and max gain/loss are derived per pair
3.) Trades with a positive expected result are ranked, best first
`,
	Run: func(cmd *cobra.Command, args []string) {
		stockPrice, err := cmd.Flags().GetFloat64("stock-price")
		if err != nil {
			log.Fatalf("error getting stock-price: %v", err)
		}

		dte, err := cmd.Flags().GetInt("dte")
		if err != nil {
			log.Fatalf("error getting dte: %v", err)
		}

		iv, err := cmd.Flags().GetFloat64("iv")
		if err != nil {
			log.Fatalf("error getting iv: %v", err)
		}

		rate, err := cmd.Flags().GetFloat64("rate")
		if err != nil {
			log.Fatalf("error getting rate: %v", err)
		}

		strategy, err := cmd.Flags().GetString("strategy")
		if err != nil {
			log.Fatalf("error getting strategy: %v", err)
		}

		showChart, err := cmd.Flags().GetBool("chart")
		if err != nil {
			log.Fatalf("error getting chart: %v", err)
		}

		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		outputDir, err := cmd.Flags().GetString("output-dir")
		if err != nil {
			log.Fatalf("error getting output-dir: %v", err)
		}

		if _, err := run.Run(run.RunArgs{
			StockPrice:   stockPrice,
			DTE:          dte,
			ImpliedVol:   iv,
			RiskFreeRate: rate,
			Strategy:     strategy,
			ShowChart:    showChart,
			ConfigPath:   configPath,
			OutputDir:    outputDir,
		}); err != nil {
			log.Fatalf("error running command: %v", err)
		}
	},
}

func main() {
	rootCmd.PersistentFlags().Float64VarP(new(float64), "stock-price", "s", 0, "Price of the underlying stock, e.g. 40.0. This flag is required.")
	rootCmd.PersistentFlags().IntVarP(new(int), "dte", "d", 0, "Days to expiration, e.g. 30. This flag is required.")
	rootCmd.PersistentFlags().Float64VarP(new(float64), "iv", "v", 0, "Annual implied volatility in percent, e.g. 40. This flag is required.")
	rootCmd.PersistentFlags().Float64VarP(new(float64), "rate", "r", 0, "Annual risk-free rate in percent, e.g. 2.5136. Falls back to the RISK_FREE_RATE environment variable when unset.")
	rootCmd.PersistentFlags().StringVarP(new(string), "strategy", "t", "", "Strategy to evaluate: 'bull_put_spread' or 'bull_call_spread'. This flag is required.")
	rootCmd.PersistentFlags().Bool("chart", false, "Render the payoff diagram of the best trade.")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config overriding the default grid, filter and bounds settings.")
	rootCmd.PersistentFlags().String("output-dir", "", "Directory to export the ranked results as CSV. No export when unset.")

	rootCmd.MarkPersistentFlagRequired("stock-price")
	rootCmd.MarkPersistentFlagRequired("dte")
	rootCmd.MarkPersistentFlagRequired("iv")
	rootCmd.MarkPersistentFlagRequired("strategy")

	cobra.CheckErr(rootCmd.Execute())
}
