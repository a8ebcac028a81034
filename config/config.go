package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env              string           `yaml:"env" env:"APP_ENV" env-default:"development"`
	DbConfig         DbConfig         `yaml:"db" env-required:"true"`
	HttpServerConfig HttpServerConfig `yaml:"http_server" env-required:"true"`
	CacheConfig      CacheConfig      `yaml:"cache" env-required:"true"`
	JWTConfig        JWTConfig        `yaml:"jwt" env-required:"true"`
}

type CacheConfig struct {
	Address                 string        `yaml:"address" env:"REDIS_ADDRESS" env-required:"true"`
	Db                      int           `yaml:"db" env:"REDIS_DB"`
	DefaultTeamCacheTtl     time.Duration `yaml:"default_team_cache_ttl" env-default:"5m"`
	DefaultTeamListCacheTtl time.Duration `yaml:"default_team_list_cache_ttl" env-default:"1m"`
	// Cron expression for rebuilding the cached team list. Empty disables the job.
	TeamListRefreshSpec string `yaml:"team_list_refresh_spec" env-default:"*/10 * * * *"`
}

type TLSConfig struct {
	Enabled  bool   `yaml:"enabled" env-default:"false"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

type HttpServerConfig struct {
	Address        string        `yaml:"address" env:"HTTP_ADDRESS" env-required:"true"`
	Timeout        time.Duration `yaml:"timeout" env-default:"10s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	TLS            TLSConfig     `yaml:"tls"`
	// Requests per minute per IP on login and on mutating team routes.
	LoginRateLimit int `yaml:"login_rate_limit" env-default:"10"`
	WriteRateLimit int `yaml:"write_rate_limit" env-default:"120"`
}

type DbConfig struct {
	Username        string        `yaml:"username" env:"DB_USER"`
	Host            string        `yaml:"host" env:"DB_HOST"`
	Port            string        `yaml:"port" env:"DB_PORT"`
	DbName          string        `yaml:"dbname" env:"DB_NAME"`
	SSLMode         string        `yaml:"ssl_mode" env-default:"disable"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"20"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"30m"`
}

type JWTConfig struct {
	AccessExpire time.Duration `yaml:"access_expire" env-required:"true"`
	Issuer       string        `yaml:"issuer" env-default:"torneos"`
}

// Load reads the YAML file at path and applies environment overrides.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", path)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return &cfg, nil
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/local.yaml"
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
