package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Gemini    GeminiConfig
	Nominatim NominatimConfig
	Places    PlacesConfig
	Match     MatchConfig
	Geocode   GeocodeConfig
	CORS      CORSConfig
	Logger    LoggerConfig
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
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// GeminiConfig contains configuration for the Gemini inference endpoint
type GeminiConfig struct {
	APIKey         string
	BaseURL        string
	Model          string
	TimeoutSeconds int
}

// NominatimConfig contains configuration for the OpenStreetMap geocoder
type NominatimConfig struct {
	BaseURL        string
	UserAgent      string
	TimeoutSeconds int
}

// PlacesConfig contains configuration for the Google Places endpoint
type PlacesConfig struct {
	APIKey         string
	BaseURL        string
	TimeoutSeconds int
}

// MatchConfig contains match engine specific configuration
type MatchConfig struct {
	RadiusMeters float64 // proximity tolerance passed to the store
}

// GeocodeConfig contains geocode cache configuration
type GeocodeConfig struct {
	CacheTTLMinutes int
}

// CORSConfig contains the allow-list applied to every endpoint
type CORSConfig struct {
	AllowedOrigins []string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
