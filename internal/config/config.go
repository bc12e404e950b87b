package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Export   ExportConfig
	Wallet   WalletConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  int
	WriteTimeout int
}

// BackendConfig points at the core banking API every resource is fetched
// from. There are no per-resource host overrides.
type BackendConfig struct {
	BaseURL string
	Timeout int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	// MigrationsPath is the golang-migrate file source for the schema.
	MigrationsPath string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	// CacheTTL is the list-page cache lifetime in seconds.
	CacheTTL int
}

type JWTConfig struct {
	SecretKey      string
	ExpirationTime int // in hours
}

type ExportConfig struct {
	// RowCap is the page size used when exporting "all" matching rows.
	RowCap int
}

type WalletConfig struct {
	// AdjustCeiling is the largest single credit or debit an admin may apply.
	AdjustCeiling float64
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 30),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 30),
		},
		Backend: BackendConfig{
			BaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:9000/api/v1"),
			Timeout: getEnvInt("BACKEND_TIMEOUT", 15),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", "password"),
			DBName:         getEnv("DB_NAME", "admin_console"),
			SSLMode:        getEnv("DB_SSL_MODE", "disable"),
			MigrationsPath: getEnv("DB_MIGRATIONS_PATH", "file://pkg/database/migrations"),
		},
		JWT: JWTConfig{
			SecretKey:      getEnv("JWT_SECRET", "your-secret-key"),
			ExpirationTime: getEnvInt("JWT_EXPIRY", 24),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			CacheTTL: getEnvInt("LIST_CACHE_TTL", 120),
		},
		Export: ExportConfig{
			RowCap: getEnvInt("EXPORT_ROW_CAP", 10000),
		},
		Wallet: WalletConfig{
			AdjustCeiling: float64(getEnvInt("WALLET_ADJUST_CEILING", 10000)),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
