package config

type Config interface {
	EnvConfig
	ProviderConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	Provider
}

func New() Config {
	return mainConfig{}
}
