// Package config loads application settings from an optional config file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type AuthConfig struct {
	// JWTSecret enables the bearer-token gate when non-empty.
	JWTSecret string `mapstructure:"jwt_secret"`
}

type HTTPConfig struct {
	CORSOrigin string `mapstructure:"cors_origin"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	HTTP     HTTPConfig     `mapstructure:"http"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// Load reads path (YAML, optional: a missing file is not an error) and then
// applies environment overrides. DATABASE_URL is required one way or the
// other.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("http.cors_origin", "*")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("FB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// unprefixed fallbacks for the usual deployment variables
	_ = v.BindEnv("database.url", "FB_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv("auth.jwt_secret", "FB_AUTH_JWT_SECRET", "JWT_SECRET")
	_ = v.BindEnv("server.port", "FB_SERVER_PORT", "PORT")
	_ = v.BindEnv("http.cors_origin", "FB_HTTP_CORS_ORIGIN", "CORS_ORIGIN")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Database.URL == "" {
		return nil, errors.New("database url is not set")
	}
	return &c, nil
}
