package config_test

import (
	"testing"

	"github.com/jrsteele09/go-oauth-gateway/internal/config"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	c := config.New()

	require.Equal(t, config.DefaultTokenURL, c.GetTokenURL())
	require.Equal(t, config.DefaultRedirectPath, c.GetRedirectPath())
	require.Positive(t, c.GetExchangeTimeout())
}

func TestConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("APP_NAME", "Test Gateway")
	t.Setenv("OAUTH_CLIENT_ID", "client-id")
	t.Setenv("OAUTH_CLIENT_SECRET", "client-secret")
	t.Setenv("OAUTH_TOKEN_URL", "https://provider.example.com/token")
	t.Setenv("REDIRECT_PATH", "/dashboard/")

	c := config.New()

	require.Equal(t, ":9090", c.GetPort())
	require.Equal(t, "Test Gateway", c.GetAppName())
	require.Equal(t, "client-id", c.GetClientID())
	require.Equal(t, "client-secret", c.GetClientSecret())
	require.Equal(t, "https://provider.example.com/token", c.GetTokenURL())
	require.Equal(t, "/dashboard/", c.GetRedirectPath())
}

func TestGetPortAlreadyPrefixed(t *testing.T) {
	t.Setenv("PORT", ":7070")

	require.Equal(t, ":7070", config.New().GetPort())
}
