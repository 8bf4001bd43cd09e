package config

// AppConfig holds the application configuration
type AppConfig struct {
	RecordStoreURL string
	RedisAddress   string
	ListenAddr     string
	BearerToken    string
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}
