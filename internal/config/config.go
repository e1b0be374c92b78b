package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Backend names for the storage port.
const (
	BackendMongo = "mongo"
	BackendAstra = "astra"
)

// Config holds everything read from the environment at startup. The storage
// backend is a deployment-time choice, not a runtime feature.
type Config struct {
	MongoURI    string
	MongoDBName string

	AstraEndpoint string
	AstraToken    string
	AstraKeyspace string

	Backend string

	RedisAddr string
	HTTPPort  string
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := &Config{
		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDBName:   getEnv("MONGODB_DB_NAME", "freelinkd-db"),
		AstraEndpoint: os.Getenv("ASTRA_DB_API_ENDPOINT"),
		AstraToken:    os.Getenv("ASTRA_DB_APPLICATION_TOKEN"),
		AstraKeyspace: getEnv("ASTRA_DB_KEYSPACE", "default_keyspace"),
		Backend:       os.Getenv("DB_BACKEND"),
		RedisAddr:     os.Getenv("REDIS_URI"),
		HTTPPort:      getEnv("PORT", "8080"),
	}

	if cfg.Backend == "" {
		if cfg.AstraEndpoint != "" {
			cfg.Backend = BackendAstra
		} else {
			cfg.Backend = BackendMongo
		}
	}

	cfg.RedisAddr = strings.TrimPrefix(cfg.RedisAddr, "redis://")

	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
