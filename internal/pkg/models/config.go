package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	Geocoder GeocoderConfig
	Import   ImportConfig
	S3       S3Config
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
	// CacheTTL is how long postal code and geocode lookups stay cached, in minutes
	CacheTTL int
}

// NSQConfig contains NSQ producer configuration. An empty address disables event publishing.
type NSQConfig struct {
	Address string
}

// GeocoderConfig configures the external geocoding service
type GeocoderConfig struct {
	BaseURL    string
	APIKey     string
	Timeout    int // in seconds
	MaxRetries int
	// BatchLimit caps how many locations a single geocode request touches
	BatchLimit int
}

// ImportConfig holds defaults for the bulk location import
type ImportConfig struct {
	DuplicatesField string
	SampleSize      int
	MaxUploadSize   int64 // in bytes
}

// S3Config holds the object storage settings used for s3:// import sources
type S3Config struct {
	Region   string
	Endpoint string
}

// NewRelicConfig contains New Relic agent configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
