package run

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Zsolt-Forray/options-strategies/src/models"
	"github.com/Zsolt-Forray/options-strategies/src/render"
	"github.com/Zsolt-Forray/options-strategies/src/strategies"
	"github.com/Zsolt-Forray/options-strategies/src/utils"
)

type RunArgs struct {
	StockPrice   float64
	DTE          int
	ImpliedVol   float64
	RiskFreeRate float64
	Strategy     string
	ShowChart    bool
	ConfigPath   string
	OutputDir    string
}

type RunOutput struct {
	RunID            uuid.UUID
	Results          models.ResultSet
	ExportedFilepath string
}

func Run(args RunArgs) (RunOutput, error) {
	if err := utils.InitEnvironmentVariables(); err != nil {
		return RunOutput{}, fmt.Errorf("Run: error initializing environment variables: %w", err)
	}

	cfg := models.DefaultConfig()
	if args.ConfigPath != "" {
		var err error
		cfg, err = models.LoadConfig(args.ConfigPath)
		if err != nil {
			return RunOutput{}, fmt.Errorf("Run: %w", err)
		}
	}

	rate := args.RiskFreeRate
	if rate == 0 {
		if env := os.Getenv("RISK_FREE_RATE"); env != "" {
			parsed, err := strconv.ParseFloat(env, 64)
			if err != nil {
				return RunOutput{}, fmt.Errorf("Run: invalid RISK_FREE_RATE %q: %v", env, err)
			}

			rate = parsed
		}
	}

	in := models.MarketInput{
		StockPrice:   args.StockPrice,
		DTE:          args.DTE,
		ImpliedVol:   args.ImpliedVol,
		RiskFreeRate: rate,
	}

	strategy := models.StrategyType(args.Strategy)
	runID := uuid.New()

	log.Infof("run %s: evaluating %s at S=%.2f DTE=%d IV=%.1f r=%.4f", runID, strategy, in.StockPrice, in.DTE, in.ImpliedVol, in.RiskFreeRate)

	evaluator := strategies.NewEvaluator(cfg)
	results, err := evaluator.Evaluate(in, strategy)
	if err != nil {
		return RunOutput{}, fmt.Errorf("Run: %w", err)
	}

	render.WriteTable(os.Stdout, results, strategy)

	if args.ShowChart {
		top, err := results.Top()
		if err != nil {
			return RunOutput{}, fmt.Errorf("Run: %w", err)
		}

		curve := strategies.BuildPayoffCurve(top, cfg.Payoff)
		fmt.Println(render.RenderPayoffChart(curve, strategy))
	}

	output := RunOutput{
		RunID:   runID,
		Results: results,
	}

	if args.OutputDir != "" {
		exportedFilepath, err := render.ExportCSV(args.OutputDir, runID, strategy, results)
		if err != nil {
			return RunOutput{}, fmt.Errorf("Run: %w", err)
		}

		output.ExportedFilepath = exportedFilepath
	}

	return output, nil
}
