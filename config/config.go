package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"food-order/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	// Path of the SQLite file.
	Path string `yaml:"path"`
	// DSN is used by the postgres driver.
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Host       string        `yaml:"host"`
	Port       string        `yaml:"port"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

type KafkaConfig struct {
	Broker  string `yaml:"broker"`
	Topic   string `yaml:"topic"`
	GroupID string `yaml:"group_id"`
}

type HTTPConfig struct {
	Addr    string `yaml:"addr"`
	BaseURL string `yaml:"base_url"`
}

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	HTTP     HTTPConfig     `yaml:"http"`
}

func Default() Config {
	return Config{
		Database: DatabaseConfig{Driver: storage.DriverSQLite, Path: DefaultStorePath()},
		Redis:    RedisConfig{Port: "6379", SessionTTL: 24 * time.Hour},
		Kafka:    KafkaConfig{Topic: "orders", GroupID: "food-order-popularity"},
		HTTP:     HTTPConfig{Addr: ":8081", BaseURL: "http://localhost:8081"},
	}
}

// DefaultStorePath places the database in the per-user configuration
// directory, falling back to the working directory.
func DefaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "food-order", "FoodOrder.sqlite")
}

// Load reads the YAML file at path, if any, on top of the defaults and then
// applies environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("open config: %w", err)
		default:
			defer file.Close()
			if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
				return cfg, fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Database.Driver != storage.DriverSQLite && cfg.Database.Driver != storage.DriverPostgres {
		return cfg, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setString("DB_DRIVER", &cfg.Database.Driver)
	setString("DB_PATH", &cfg.Database.Path)
	setString("DB_DSN", &cfg.Database.DSN)
	setString("REDIS_HOST", &cfg.Redis.Host)
	setString("REDIS_PORT", &cfg.Redis.Port)
	setString("KAFKA_BROKER", &cfg.Kafka.Broker)
	setString("KAFKA_TOPIC", &cfg.Kafka.Topic)
	setString("HTTP_ADDR", &cfg.HTTP.Addr)
	setString("BASE_URL", &cfg.HTTP.BaseURL)

	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SESSION_TTL: %w", err)
		}
		cfg.Redis.SessionTTL = ttl
	}
	return nil
}

func (c Config) StoreDSN() string {
	if c.Database.Driver == storage.DriverPostgres {
		return c.Database.DSN
	}
	return c.Database.Path
}

// OpenStore opens the store and provisions its schema.
func OpenStore(ctx context.Context, cfg Config) (*storage.Store, error) {
	store, err := storage.Open(ctx, cfg.Database.Driver, cfg.StoreDSN())
	if err != nil {
		return nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

func MustInitStore(ctx context.Context, cfg Config) *storage.Store {
	store, err := OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open store:", err)
	}
	return store
}

// MustInitRedis returns nil when no Redis host is configured.
func MustInitRedis(ctx context.Context, cfg Config) *redis.Client {
	if cfg.Redis.Host == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Host + ":" + cfg.Redis.Port,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// NewKafkaReader returns nil when no broker is configured.
func NewKafkaReader(cfg Config) *kafka.Reader {
	if cfg.Kafka.Broker == "" {
		return nil
	}
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Kafka.Broker},
		Topic:   cfg.Kafka.Topic,
		GroupID: cfg.Kafka.GroupID,
	})
}

// NewKafkaWriter returns nil when no broker is configured.
func NewKafkaWriter(cfg Config) *kafka.Writer {
	if cfg.Kafka.Broker == "" {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Kafka.Broker),
		Topic:    cfg.Kafka.Topic,
		Balancer: &kafka.LeastBytes{},
	}
}
