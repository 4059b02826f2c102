package models

// Config is the application configuration, loaded from environment variables
// (optionally seeded from a .env file in local development).
type Config struct {
	App     AppConfig
	Server  ServerConfig
	API     APIConfig
	Redis   RedisConfig
	Storage StorageConfig
	Logger  LoggerConfig
}

// AppConfig holds application metadata.
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig configures the local presentation server.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// APIConfig points at the remote booking REST API.
type APIConfig struct {
	BaseURL string
	Timeout int // seconds
}

// RedisConfig configures the optional trip-search cache.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// StorageConfig configures the persisted session state.
type StorageConfig struct {
	Dir string
}

// LoggerConfig configures structured logging output.
type LoggerConfig struct {
	Level    string
	FilePath string
}
