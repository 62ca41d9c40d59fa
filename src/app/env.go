package app

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Blackdeer1524/SchemaCatalog/src/pkg/utils"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

type envVars struct {
	Environment string `envconfig:"ENVIRONMENT" default:"dev"`
	ServerHost  string `envconfig:"SERVER_HOST" default:"localhost"`
	ServerPort  int    `envconfig:"SERVER_PORT" default:"8080"`

	// When both paths are set the catalog is loaded from them instead of
	// the embedded dataset.
	SchemaPath  string `envconfig:"SCHEMA_PATH"`
	TripletPath string `envconfig:"TRIPLET_PATH"`
}

func loadEnv() (envVars, error) {
	// a missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	var env envVars

	err := envconfig.Process("", &env)
	if err != nil {
		return envVars{}, fmt.Errorf("failed to process env config: %w", err)
	}

	return env, nil
}

func mustLoadEnv() envVars {
	return utils.Must(loadEnv())
}
