package pricing

import "github.com/montanaflynn/stats"

// NormCDF returns P(Z <= x) for a standard normal Z.
func NormCDF(x float64) float64 {
	return stats.NormCdf(x, 0, 1)
}

// NormPDF returns the standard normal density at x.
func NormPDF(x float64) float64 {
	return stats.NormPdf(x, 0, 1)
}
