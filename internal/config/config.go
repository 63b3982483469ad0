package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    int
	LocalServer   bool
	LocalURI      string
	ProdURI       string
	UploadBaseURI string
	GmailUsername string
	GmailPassword string
	Recipients    []string
	AdminUsername string
	AdminPassword string
	LimitOfPosts  int
	SessionSecret string
	MaxUploadSize int64
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func parseMaxUploadSize(value string) int64 {
	size, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 10 * 1024 * 1024
	}
	return size
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	return &Config{
		ServerPort:    getEnvAsInt("SERVER_PORT", 8080),
		LocalServer:   getEnvBool("LOCAL_SERVER", true),
		LocalURI:      getEnv("LOCAL_URI", "host=localhost port=5432 user=postgres password=password dbname=cleanblog sslmode=disable"),
		ProdURI:       getEnv("PROD_URI", ""),
		UploadBaseURI: getEnv("UPLOAD_BASE_URI", "static/uploads"),
		GmailUsername: getEnv("GMAIL_USERNAME", ""),
		GmailPassword: getEnv("GMAIL_PASSWORD", ""),
		Recipients:    getEnvAsList("RECIPIENTS", nil),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		LimitOfPosts:  getEnvAsInt("LIMIT_OF_POSTS", 5),
		SessionSecret: getEnv("SESSION_SECRET", "my-secret-key"),
		MaxUploadSize: parseMaxUploadSize(getEnv("MAX_UPLOAD_SIZE", "10485760")),
	}
}

// DatabaseURI selects the dev or prod connection string by LOCAL_SERVER.
func (c *Config) DatabaseURI() string {
	if c.LocalServer {
		return c.LocalURI
	}
	return c.ProdURI
}
