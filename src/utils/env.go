package utils

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const ENV_FILENAME = ".env"

// InitEnvironmentVariables loads the optional .env file from the working
// directory. A missing file is fine; it only supplies defaults such as
// RISK_FREE_RATE.
func InitEnvironmentVariables() error {
	if err := godotenv.Load(ENV_FILENAME); err != nil {
		if os.IsNotExist(err) {
			log.Debugf("no %s file found, using process environment", ENV_FILENAME)
			return nil
		}

		return err
	}

	return nil
}
