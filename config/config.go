package config

import (
	"os"
	"strconv"
	"sync"
)

var (
	config     *Config
	configOnce sync.Once
)

// Config stores all configuration of the application
type Config struct {
	// Database
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// Server
	ServerPort string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Internal auth
	JWTSecretKey   string
	InternalAPIKey string

	// S3 media storage
	S3Region          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Bucket          string
	S3Endpoint        string
	S3PublicURL       string

	// Postal code lookup (Sepomex-compatible API)
	PostalCodeAPIURL string
	PostalCodeAPIKey string
}

// LoadConfig loads config from environment variables
func LoadConfig() *Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	return &Config{
		// Database config
		DBHost:     getEnv("DATABASE_HOST", "localhost"),
		DBUser:     getEnv("DATABASE_USER", "root"),
		DBPassword: getEnv("DATABASE_PASSWORD", ""),
		DBName:     getEnv("DATABASE_NAME", "cnk_ceneka"),
		DBPort:     getEnv("DATABASE_PORT", "3306"),

		// Server config
		ServerPort: getEnv("SERVER_PORT", "3000"),

		// Redis config
		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		// Internal auth config
		JWTSecretKey:   getEnv("JWT_SECRET_KEY", "cnk-secret-key-change-in-production"),
		InternalAPIKey: getEnv("INTERNAL_API_KEY", ""),

		// S3 media storage config
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Bucket:          getEnv("S3_BUCKET", "real-estate-properties"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3PublicURL:       getEnv("S3_PUBLIC_URL", ""),

		// Postal code lookup config
		PostalCodeAPIURL: getEnv("POSTAL_CODE_API_URL", "https://api.tau.com.mx/dipomex/v1/codigo_postal"),
		PostalCodeAPIKey: getEnv("POSTAL_CODE_API_KEY", ""),
	}
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		config = LoadConfig()
	})
	return config
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
