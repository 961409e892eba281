package auth

import (
	"testing"

	"consultorio_back_end_go/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	utils.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken(User{ID: "ana@clinica.com"}, "professional")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@clinica.com", claims["userId"])
	assert.Equal(t, "professional", claims["userType"])
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	utils.AppConfig.JWTSecret = "test-secret"

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
