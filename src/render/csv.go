package render

import (
	"fmt"
	"os"
	"path"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Zsolt-Forray/options-strategies/src/models"
)

// ExportCSV writes the ranked result set to <outDir>/<strategy>-<runID>.csv
// and returns the file path.
func ExportCSV(outDir string, runID uuid.UUID, strategy models.StrategyType, results models.ResultSet) (string, error) {
	if _, err := os.Stat(outDir); os.IsNotExist(err) {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return "", fmt.Errorf("ExportCSV: failed to create %s: %w", outDir, err)
		}
	}

	outFile := path.Join(outDir, fmt.Sprintf("%s-%s.csv", strategy, runID.String()))

	file, err := os.Create(outFile)
	if err != nil {
		return "", fmt.Errorf("ExportCSV: failed to create %s: %w", outFile, err)
	}
	defer file.Close()

	dtos := results.ToDTO()
	if err := gocsv.MarshalFile(&dtos, file); err != nil {
		return "", fmt.Errorf("ExportCSV: failed to write %s: %w", outFile, err)
	}

	log.Infof("exported %d trades to %s", len(results), outFile)

	return outFile, nil
}
