package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type APIConfig struct {
	BaseURL              string  `mapstructure:"base_url"`
	AuthToken            string  `mapstructure:"auth_token"`
	MaxRequestsPerSecond float32 `mapstructure:"max_requests_per_second"`
}

func (config APIConfig) validate() error {

	if config.BaseURL == "" {
		return fmt.Errorf("missing variable: api base url")
	}

	// AuthToken may stay empty: unauthenticated calls are allowed and the
	// server answers 401 until a token is supplied.
	return nil
}

func (config APIConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("api.base_url", "API_BASE_URL"); err != nil {
		return err
	}

	if err := viper.BindEnv("api.auth_token", "API_AUTH_TOKEN"); err != nil {
		return err
	}

	return viper.BindEnv("api.max_requests_per_second", "API_MAX_REQUESTS_PER_SECOND")
}
