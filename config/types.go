package config

// Config represents the complete configuration structure
type Config struct {
	WebCMS  WebCMSConfig  `mapstructure:"webcms"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// WebCMSConfig holds WebCMS API connection details
type WebCMSConfig struct {
	URL     string `mapstructure:"url"`
	APIKey  string `mapstructure:"api_key"`
	Timeout int    `mapstructure:"timeout"` // seconds
}

// OutputConfig controls how fetched payloads are printed
type OutputConfig struct {
	Pretty bool `mapstructure:"pretty"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
