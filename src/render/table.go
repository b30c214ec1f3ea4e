package render

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Zsolt-Forray/options-strategies/src/models"
)

func tableHeaders(strategy models.StrategyType) []string {
	if strategy == models.BullPutSpread {
		return []string{"Kpp", "Ppp", "Ksp", "Psp", "BEP", "Prob.G", "Prob.L", "Max.G", "Max.L", "ER"}
	}

	return []string{"Kpc", "Ppc", "Ksc", "Psc", "BEP", "Prob.G", "Prob.L", "Max.G", "Max.L", "ER"}
}

// WriteTable renders the ranked result set, best trade first.
func WriteTable(w io.Writer, results models.ResultSet, strategy models.StrategyType) {
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(w)
	table.SetHeader(tableHeaders(strategy))
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnSeparator("")

	for _, trade := range results {
		table.Append([]string{
			p.Sprintf("%.1f", trade.LowerStrike),
			p.Sprintf("%.2f", trade.LowerLegValue),
			p.Sprintf("%.1f", trade.HigherStrike),
			p.Sprintf("%.2f", trade.HigherLegValue),
			p.Sprintf("%.2f", trade.BreakEvenPoint),
			p.Sprintf("%.3f", trade.ProbabilityOfGain),
			p.Sprintf("%.3f", trade.ProbabilityOfLoss),
			p.Sprintf("%.2f", trade.MaxGain),
			p.Sprintf("%.2f", trade.MaxLoss),
			p.Sprintf("%.3f", trade.ExpectedResult),
		})
	}

	table.Render()
}
