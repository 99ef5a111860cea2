package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// envFileName is the conventional dotenv file name searched for by LoadEnv.
const envFileName = ".env"

// LoadEnv merges variables from a dotenv file into the process environment.
// Variables already present in the environment are never overwritten, so
// shell exports take precedence over file values.
//
// With an explicit path, that file must parse. With an empty path, the
// working directory and each of its ancestors are searched for a .env
// file; the first match is merged and the search stops. Finding no file is
// not an error, since values may already be present in the environment
// (for example injected by CI).
func LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	for {
		path := filepath.Join(dir, envFileName)
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return fmt.Errorf("load env file %s: %w", path, err)
			}
			return nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}
