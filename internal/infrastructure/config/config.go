package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string        `env:"PORT,       default=8080"`
	Env       string        `env:"ENV,        default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=1h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`

	Auth    AuthConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Storage StorageConfig
}

// AuthConfig selects how the session token travels. Transport is "cookie",
// "header", or "both"; with "both" the cookie wins when present.
type AuthConfig struct {
	Transport  string `env:"AUTH_TRANSPORT, default=cookie"`
	CookieName string `env:"AUTH_COOKIE,    default=token"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=lecture_platform"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type StorageConfig struct {
	Endpoint  string `env:"STORAGE_ENDPOINT, default=localhost:9000"`
	AccessKey string `env:"STORAGE_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_SECRET_KEY"`
	Region    string `env:"STORAGE_REGION"`
	UseSSL    bool   `env:"STORAGE_USE_SSL, default=false"`
	Bucket    string `env:"STORAGE_BUCKET,  default=lecture-videos"`
	Prefix    string `env:"STORAGE_PREFIX,  default=lectures"`
}

// Production reports whether the process runs with production hardening
// (secure cookies, JSON logs).
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
