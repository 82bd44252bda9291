package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel       string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	DrawResetDelay time.Duration `yaml:"draw-reset-delay" env:"DRAW_RESET_DELAY" env-default:"500ms"`
	Storage        Storage       `yaml:"storage"`
}

type Storage struct {
	Type       string        `yaml:"type" env:"STORAGE_TYPE" env-default:"memory"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"STORAGE_SESSION_TTL" env-default:"0s"`
	Redis      Redis         `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if config.Storage.Type != StorageMemory && config.Storage.Type != StorageRedis {
		return nil, fmt.Errorf("unknown storage type %q", config.Storage.Type)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
