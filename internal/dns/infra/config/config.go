package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Port is the network port the DNS server will bind to for both UDP
	// and TCP.
	Port int `koanf:"port" validate:"required,gte=1,lt=65535"`

	// Address is the interface address to bind to. Empty means all
	// interfaces.
	Address string `koanf:"address"`

	// TTL is the default TTL (seconds) applied to records that don't
	// carry one and aren't covered by a zone's SOA TTL.
	TTL uint32 `koanf:"ttl" validate:"required,gte=1"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
}

// envLoader loads environment variables with the prefix "DNSD_", lowercases
// the keys, and strips the prefix. Seamed as a var so tests can mock it.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "DNSD_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "DNSD_")), value
		},
	}), nil)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	k.Load(structs.Provider(AppConfig{
		Port:     53,
		Address:  "",
		TTL:      3600,
		Env:      "prod",
		LogLevel: "info",
	}, "koanf"), nil)

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
