// Package config carga la configuración del proceso desde variables de entorno
// (y desde un .env si existe).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Port        string `koanf:"port" validate:"required,numeric"`
	DatabaseURL string `koanf:"database_url"` // vacío => store in-memory

	LogLevel  string `koanf:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat string `koanf:"log_format" validate:"omitempty,oneof=text json"`
	AppName   string `koanf:"app_name"`
	LogSQL    bool   `koanf:"log_sql"`

	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1,dive,required"`

	DBQueryTimeout  time.Duration `koanf:"db_query_timeout" validate:"gte=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// keys admitidas; el resto del entorno se ignora.
var keys = map[string]struct{}{
	"port":                 {},
	"database_url":         {},
	"log_level":            {},
	"log_format":           {},
	"app_name":             {},
	"log_sql":              {},
	"cors_allowed_origins": {},
	"db_query_timeout":     {},
	"shutdown_timeout":     {},
}

func Default() Config {
	return Config{
		Port:            "5000",
		LogLevel:        "info",
		LogFormat:       "text",
		AppName:         "puppy-service",
		DBQueryTimeout:  5 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load lee el entorno sobre los defaults y valida el resultado.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Variables vacías cuentan como no seteadas: no pisan el default.
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimSpace(key))
		if _, ok := keys[key]; !ok {
			return "", nil
		}
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	cfg := Default()
	err = k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.CORSAllowedOrigins = trimAll(cfg.CORSAllowedOrigins)
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
