package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	Environment      string
	FirestoreProject string
	RedisAddr        string
	RedisPassword    string
	SessionTTL       time.Duration
	AdminAPIKey      string
	OTPDemoCode      string
	AirtableAPIKey   string
	AirtableBaseID   string
	AirtableOTPTable string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		FirestoreProject: getEnv("FIRESTORE_PROJECT_ID", ""),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		SessionTTL:       time.Duration(getEnvAsInt64("SESSION_TTL_HOURS", 24*30)) * time.Hour,
		AdminAPIKey:      getEnv("ADMIN_API_KEY", ""),
		OTPDemoCode:      getEnv("OTP_DEMO_CODE", "123456"),
		AirtableAPIKey:   getEnv("AIRTABLE_API_KEY", ""),
		AirtableBaseID:   getEnv("AIRTABLE_BASE_ID", ""),
		AirtableOTPTable: getEnv("AIRTABLE_OTP_TABLE", "OTPs"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
