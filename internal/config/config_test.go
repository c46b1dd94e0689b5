package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {

	assert := assert.New(t)

	os.Setenv("API_BASE_URL", "https://staging.interviews.tools/api")
	os.Setenv("API_AUTH_TOKEN", "overrideToken")
	os.Setenv("API_MAX_REQUESTS_PER_SECOND", "9")
	os.Setenv("DB_CONNECTION_STRING", "override.db")
	os.Setenv("SYNC_SCHEDULE", "@hourly")
	os.Setenv("SYNC_ON_START", "false")
	defer func() {
		for _, key := range []string{"API_BASE_URL", "API_AUTH_TOKEN", "API_MAX_REQUESTS_PER_SECOND",
			"DB_CONNECTION_STRING", "SYNC_SCHEDULE", "SYNC_ON_START"} {
			os.Unsetenv(key)
		}
	}()

	cfg, err := loadConfig("../../configs/config.yaml")
	assert.NoError(err)

	assert.Equal("https://staging.interviews.tools/api", cfg.API.BaseURL)
	assert.Equal("overrideToken", cfg.API.AuthToken)
	assert.Equal(float32(9), cfg.API.MaxRequestsPerSecond)
	assert.Equal("override.db", cfg.DB.ConnectionString)
	assert.Equal("@hourly", cfg.Sync.Schedule)
	assert.False(cfg.Sync.SyncOnStart)
}

func Test_NotifierConfig_TokenRequiresChatID(t *testing.T) {

	assert.Error(t, NotifierConfig{TgToken: "token"}.validate())
	assert.NoError(t, NotifierConfig{TgToken: "token", TgChatID: 42}.validate())
	assert.NoError(t, NotifierConfig{}.validate())

	assert.True(t, NotifierConfig{TgToken: "token"}.Enabled())
	assert.False(t, NotifierConfig{}.Enabled())
}
