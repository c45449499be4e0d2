package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServiceName string        `yaml:"service_name" env:"SERVICE_NAME"`
	Server      ServerConfig  `yaml:"server"`
	DB          DBConfig      `yaml:"db"`
	Redis       RedisConfig   `yaml:"redis"`
	Jaeger      *JaegerConfig `yaml:"jaeger"`
	Pairing     PairingConfig `yaml:"pairing"`
	Cache       CacheConfig   `yaml:"cache"`
	Reaper      ReaperConfig  `yaml:"reaper"`
}

type ServerConfig struct {
	Mode   string `yaml:"mode"   env:"SERVER_MODE"`
	Port   int    `yaml:"port"   env:"SERVER_PORT"`
	Scheme string `yaml:"scheme" env:"SERVER_SCHEME"`
	Domain string `yaml:"domain" env:"SERVER_DOMAIN"`
}

type DBConfig struct {
	Host     string `yaml:"host"     env:"POSTGRES_HOST"`
	Port     int    `yaml:"port"     env:"POSTGRES_PORT"`
	User     string `yaml:"user"     env:"POSTGRES_USER"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	Database string `yaml:"database" env:"POSTGRES_DB"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"pass" env:"REDIS_PASS"`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string `yaml:"type"`
		Param int    `yaml:"param"`
	} `yaml:"sampler"`
	Reporter struct {
		LogSpans           bool   `yaml:"log_spans"`
		LocalAgentHostPort string `yaml:"local_agent_host_port" env:"JAEGER_AGENT"`
	} `yaml:"reporter"`
}

type PairingConfig struct {
	CodeLength  int `yaml:"code_length"  env:"PAIRING_CODE_LENGTH"`
	WindowMin   int `yaml:"window_min"   env:"PAIRING_WINDOW_MIN"`
	MaxAttempts int `yaml:"max_attempts" env:"PAIRING_MAX_ATTEMPTS"`
	BundleDays  int `yaml:"bundle_days"  env:"PAIRING_BUNDLE_DAYS"`
}

func (c PairingConfig) Window() time.Duration {
	return time.Duration(c.WindowMin) * time.Minute
}

// CacheConfig holds per-key-class TTLs in seconds.
type CacheConfig struct {
	DeviceSec       int `yaml:"device"            env:"CACHE_DEVICE_SEC"`
	ConnFullSec     int `yaml:"connection_full"   env:"CACHE_CONN_FULL_SEC"`
	ConnStatusSec   int `yaml:"connection_status" env:"CACHE_CONN_STATUS_SEC"`
	BundleFullSec   int `yaml:"bundle_full"       env:"CACHE_BUNDLE_FULL_SEC"`
	BundleStatusSec int `yaml:"bundle_status"     env:"CACHE_BUNDLE_STATUS_SEC"`
}

func (c CacheConfig) Device() time.Duration       { return time.Duration(c.DeviceSec) * time.Second }
func (c CacheConfig) ConnFull() time.Duration     { return time.Duration(c.ConnFullSec) * time.Second }
func (c CacheConfig) ConnStatus() time.Duration   { return time.Duration(c.ConnStatusSec) * time.Second }
func (c CacheConfig) BundleFull() time.Duration   { return time.Duration(c.BundleFullSec) * time.Second }
func (c CacheConfig) BundleStatus() time.Duration { return time.Duration(c.BundleStatusSec) * time.Second }

type ReaperConfig struct {
	IntervalMin int `yaml:"interval_min" env:"REAPER_INTERVAL_MIN"`
}

func (c ReaperConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMin) * time.Minute
}

// MustLoad reads the yaml config at path and applies environment
// overrides on top. Any failure is fatal.
func MustLoad(path string) Config {
	_ = godotenv.Load()

	conf := Default()

	bytes, err := os.ReadFile(path)
	if err != nil {
		zap.L().Fatal("failed to read config file", zap.String("path", path), zap.Error(err))
	}

	if err = yaml.Unmarshal(bytes, &conf); err != nil {
		zap.L().Fatal("failed to parse config file", zap.String("path", path), zap.Error(err))
	}

	if err = env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse env overrides", zap.Error(err))
	}

	return conf
}
