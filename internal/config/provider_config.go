package config

import "time"

// ProviderConfig exposes the confidential client credentials and the token
// endpoint of the identity provider this gateway fronts. The credentials are
// deployment configuration: their absence is a server defect, never a caller
// error.
type ProviderConfig interface {
	GetClientID() string
	GetClientSecret() string
	GetTokenURL() string
	GetRedirectPath() string
	GetExchangeTimeout() time.Duration
}

const (
	clientIDEnvVar     = "OAUTH_CLIENT_ID"
	clientSecretEnvVar = "OAUTH_CLIENT_SECRET"
	tokenURLEnvVar     = "OAUTH_TOKEN_URL"
	redirectPathEnvVar = "REDIRECT_PATH"
)

// DefaultTokenURL is GitHub's token endpoint, the provider the gateway is
// deployed against by default.
const DefaultTokenURL = "https://github.com/login/oauth/access_token"

// DefaultRedirectPath is where the downstream admin application lives; the
// access token is delivered to it in the URL fragment.
const DefaultRedirectPath = "/admin/"

type Provider struct{}

var _ ProviderConfig = Provider{}

func (Provider) GetClientID() string {
	return GetEnv(clientIDEnvVar, "")
}

func (Provider) GetClientSecret() string {
	return GetEnv(clientSecretEnvVar, "")
}

func (Provider) GetTokenURL() string {
	return GetEnv(tokenURLEnvVar, DefaultTokenURL)
}

func (Provider) GetRedirectPath() string {
	return GetEnv(redirectPathEnvVar, DefaultRedirectPath)
}

func (Provider) GetExchangeTimeout() time.Duration {
	return 10 * time.Second
}
