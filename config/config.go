package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

// Config is everything the web tier needs at startup. All values come from
// the environment; a .env file is honored when present.
type Config struct {
	ListenAddr     string
	APIBaseURL     string
	TrackingURL    string
	AllowedOrigins []string
	CookieTTL      time.Duration
	CacheTTL       time.Duration
	RedisAddr      string
	KafkaBroker    string
	KafkaTopic     string
}

func Load() Config {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	return Config{
		ListenAddr:     getEnv("LISTEN_ADDR", ":8080"),
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:8000"),
		TrackingURL:    getEnv("TRACKING_URL", "http://localhost:8080"),
		AllowedOrigins: splitEnv("ALLOWED_ORIGINS", "http://localhost:8080,http://127.0.0.1:8080"),
		CookieTTL:      time.Duration(getEnvInt("COOKIE_TTL_MINUTES", 90)) * time.Minute,
		CacheTTL:       time.Duration(getEnvInt("CACHE_TTL_SECONDS", 60)) * time.Second,
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		KafkaBroker:    os.Getenv("KAFKA_BROKER"),
		KafkaTopic:     getEnv("KAFKA_TOPIC", "orders"),
	}
}

// MustInitRedis connects to redis or dies. Call only when RedisAddr is set;
// the listing cache is optional.
func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(broker),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
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
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func splitEnv(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
