package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=4000"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev_secret"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	UploadsDir string `env:"UPLOADS_DIR, default=./uploads"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=eco_shop"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// ClientConfig drives the shop CLI: where the remote API lives and where the
// offline store keeps its data.
type ClientConfig struct {
	APIBase   string `env:"SHOP_API_BASE,   default=http://localhost:4000"`
	StorePath string `env:"SHOP_STORE_PATH, default=.ecoshop"`
	LogLevel  string `env:"LOG_LEVEL,       default=warn"`
}

// Load reads server configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// LoadClient reads shop CLI configuration from environment variables.
func LoadClient() *ClientConfig {
	var cfg ClientConfig
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load client configuration: %v", err))
	}
	return &cfg
}
