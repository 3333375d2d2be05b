package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Etcd    EtcdConfig    `mapstructure:"etcd"`
	Redis   RedisConfig   `mapstructure:"redis"`
	MongoDB MongoDBConfig `mapstructure:"mongodb"`
	Media   MediaConfig   `mapstructure:"media"`
	Log     LogConfig     `mapstructure:"log"`
}

type ServerConfig struct {
	Name string `mapstructure:"name"`
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

type EtcdConfig struct {
	Endpoints   []string      `mapstructure:"endpoints"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	Prefix      string        `mapstructure:"prefix"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type MongoDBConfig struct {
	URI      string `mapstructure:"uri"`
	Database string `mapstructure:"database"`
}

type MediaConfig struct {
	Dir     string `mapstructure:"dir"`
	BaseURL string `mapstructure:"base_url"`
}

type LogConfig struct {
	Level       string   `mapstructure:"level"`
	Encoding    string   `mapstructure:"encoding"`
	OutputPaths []string `mapstructure:"output_paths"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// Variables the seed CLI requires before it touches the store.
const (
	EnvSecret      = "STOREFRONT_SECRET"
	EnvDatabaseURI = "DATABASE_URI"
)

// SeedEnv is the configuration the seeding CLI reads from a .env file.
type SeedEnv struct {
	Secret      string
	DatabaseURI string
	Database    string
	MediaDir    string
}

// LoadSeedEnv reads a dotenv file and returns the seed configuration along
// with the names of any required variables that are missing. The caller
// decides what to do about missing values. A missing .env file is not an
// error; the variables may come from the process environment instead.
func LoadSeedEnv(envPath string) (*SeedEnv, []string, error) {
	v := viper.New()

	v.SetConfigFile(envPath)
	v.SetConfigType("env")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	v.SetDefault("DATABASE_NAME", "storefront")
	v.SetDefault("MEDIA_DIR", "media")

	env := &SeedEnv{
		Secret:      v.GetString(EnvSecret),
		DatabaseURI: v.GetString(EnvDatabaseURI),
		Database:    v.GetString("DATABASE_NAME"),
		MediaDir:    v.GetString("MEDIA_DIR"),
	}

	var missing []string
	if env.Secret == "" {
		missing = append(missing, EnvSecret)
	}
	if env.DatabaseURI == "" {
		missing = append(missing, EnvDatabaseURI)
	}

	return env, missing, nil
}
