package config

import "github.com/spf13/viper"

type SyncConfig struct {
	// Schedule is a cron expression for periodic background syncs.
	// Empty disables the scheduler.
	Schedule string `mapstructure:"schedule"`

	// SyncOnStart triggers a full sync right after startup.
	SyncOnStart bool `mapstructure:"sync_on_start"`
}

func (config SyncConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("sync.schedule", "SYNC_SCHEDULE"); err != nil {
		return err
	}

	return viper.BindEnv("sync.sync_on_start", "SYNC_ON_START")
}
