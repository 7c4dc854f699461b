package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the process configuration, populated from environment variables.
type Config struct {
	HTTPPort           string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost             string `env:"DB_HOST" envDefault:"localhost"`
	DBPort             string `env:"DB_PORT" envDefault:"5432"`
	DBUser             string `env:"DB_USER" envDefault:"postgres"`
	DBPassword         string `env:"DB_PASSWORD,required"`
	DBName             string `env:"DB_NAME" envDefault:"orderflow"`
	DBSslMode          string `env:"DB_SSLMODE" envDefault:"disable"`
	EncryptionKey      string `env:"ENCRYPTION_KEY,required"`
	OpenAPIPath        string `env:"OPENAPI_PATH" envDefault:"api/openapi.yml"`
	WorkflowConfigPath string `env:"WORKFLOW_CONFIG_PATH" envDefault:"configs/workflow.yml"`
}

// DSN builds the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// WorkflowConfig tunes the background workflow machinery. It lives in a yaml
// file rather than the environment so operators can adjust the sweep cadence
// without touching deployment manifests.
type WorkflowConfig struct {
	// SweepSchedule is a cron expression with a seconds field.
	SweepSchedule string `yaml:"sweepSchedule"`
}

// DefaultWorkflowConfig sweeps stalled orders once a minute.
func DefaultWorkflowConfig() WorkflowConfig {
	return WorkflowConfig{SweepSchedule: "0 * * * * *"}
}

// LoadWorkflowConfig reads the workflow tuning file. A missing file is not an
// error; defaults apply.
func LoadWorkflowConfig(path string) (WorkflowConfig, error) {
	cfg := DefaultWorkflowConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.SweepSchedule == "" {
		cfg.SweepSchedule = DefaultWorkflowConfig().SweepSchedule
	}
	return cfg, nil
}
