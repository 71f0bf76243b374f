package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir overrides the directory holding base.yaml and the profile
// files. The default is "configs" under the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// layer is one source in the configuration stack.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load builds the dashboard configuration for profile. Later layers win:
//
//	defaults < configs/base.yaml < configs/{profile}.yaml < APP_* env
//
// Env names are matched against the keys already known so that field names
// containing underscores resolve correctly:
//
//	APP_SERVER_READ_TIMEOUT        -> server.read_timeout
//	APP_DASHBOARD_SEARCH_DEBOUNCE  -> dashboard.search_debounce
//	APP_CLIENT_RETRY_MAX_ATTEMPTS  -> client.retry.max_attempts
//
// List-valued keys such as server.allowed_origins take a comma-separated
// value.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	layers := []layer{
		{name: "defaults", load: loadDefaults},
		yamlLayer(filepath.Join(o.configDir, "base.yaml")),
		yamlLayer(filepath.Join(o.configDir, profile+".yaml")),
		{name: "environment", load: loadEnv},
	}
	for _, l := range layers {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func yamlLayer(path string) layer {
	return layer{
		name: path,
		load: func(k *koanf.Koanf) error {
			return k.Load(file.Provider(path), yaml.Parser())
		},
	}
}

func loadEnv(k *koanf.Koanf) error {
	known := envKeys(k.Keys())
	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			key, ok := known[name]
			if !ok {
				return strings.ReplaceAll(name, "_", "."), value
			}
			if isList(k.Get(key)) {
				return key, splitList(value)
			}
			return key, value
		},
	}), nil)
}

// envKeys maps the env spelling of every known key to the key itself:
// "server_read_timeout" -> "server.read_timeout".
func envKeys(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}

func isList(v any) bool {
	switch v.(type) {
	case []string, []any:
		return true
	default:
		return false
	}
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
