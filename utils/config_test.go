package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	LoadConfig()

	assert.Equal(t, "3001", AppConfig.AppPort)
	assert.Equal(t, "development", AppConfig.Env)
	assert.NotEmpty(t, AppConfig.JWTSecret)
	assert.False(t, IsProduction())
}
