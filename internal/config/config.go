package config

import (
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-yaml/yaml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

type Config struct {
	Server Server `yaml:"server"`
	Log    Log    `yaml:"log"`
	API    API    `yaml:"api"`
}

type Server struct {
	Listen          string  `yaml:"listen"`
	PostgresDsn     string  `yaml:"postgresDsn"`
	RedisAddr       string  `yaml:"redisAddr"`
	RedisPassword   string  `yaml:"redisPassword"`
	RedisDB         int     `yaml:"redisDB"`
	MemcachedAddr   string  `yaml:"memcachedAddr"`
	EnableTrace     bool    `yaml:"enableTrace"`
	TraceEndpoint   string  `yaml:"traceEndpoint"`
	TraceSampleRate float64 `yaml:"traceSampleRate"`
}

type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

type API struct {
	JWTSecret    string        `yaml:"jwtSecret"`
	DefaultActor string        `yaml:"defaultActor"`
	MaxPageSize  int           `yaml:"maxPageSize"`
	CacheTTL     time.Duration `yaml:"cacheTTL"`
}

// Environment overrides, applied after the file.
const (
	EnvPostgresDsn   = "LOGISTICS_POSTGRES_DSN"
	EnvRedisAddr     = "LOGISTICS_REDIS_ADDR"
	EnvMemcachedAddr = "LOGISTICS_MEMCACHED_ADDR"
	EnvJWTSecret     = "LOGISTICS_JWT_SECRET"
	EnvListen        = "LOGISTICS_LISTEN"
	EnvLogLevel      = "LOGISTICS_LOG_LEVEL"
	EnvEnableTrace   = "LOGISTICS_ENABLE_TRACE"
)

// Load reads .env (when present), then the YAML file at path (when path
// is not empty), then environment overrides, and finally fills defaults.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "load .env")
	}

	var config Config
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return Config{}, err
		}
		defer file.Close()

		err = yaml.NewDecoder(file).Decode(&config)
		if err != nil {
			return Config{}, errors.Wrapf(err, "decode %s", path)
		}
	}

	config.applyEnv()
	config.applyDefaults()

	if config.Server.PostgresDsn == "" {
		return Config{}, errors.New("postgresDsn is required (set " + EnvPostgresDsn + ")")
	}

	return config, nil
}

func (c *Config) applyEnv() {
	override(&c.Server.PostgresDsn, EnvPostgresDsn)
	override(&c.Server.RedisAddr, EnvRedisAddr)
	override(&c.Server.MemcachedAddr, EnvMemcachedAddr)
	override(&c.Server.Listen, EnvListen)
	override(&c.API.JWTSecret, EnvJWTSecret)
	override(&c.Log.Level, EnvLogLevel)

	if v, ok := os.LookupEnv(EnvEnableTrace); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Server.EnableTrace = b
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8000"
	}
	if c.Server.TraceSampleRate <= 0 {
		c.Server.TraceSampleRate = 1
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.API.DefaultActor == "" {
		c.API.DefaultActor = "system"
	}
	if c.API.MaxPageSize <= 0 {
		c.API.MaxPageSize = 100
	}
	if c.API.CacheTTL <= 0 {
		c.API.CacheTTL = 5 * time.Minute
	}
}

func override(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
