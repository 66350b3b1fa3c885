package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/callsdk/internal/model"
	"github.com/rs/zerolog/log"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Config drives the inspector service and the decode policy it applies.
type Config struct {
	Name            string       `toml:"name"`
	Addr            string       `toml:"addr"`
	CorsOrigins     []string     `toml:"cors_origins"`
	SchemaCacheSize int          `toml:"schema_cache_size"`
	AuthToken       string       `toml:"auth_token"` // bearer token for POST routes; empty disables
	Decode          DecodeConfig `toml:"decode"`
}

type DecodeConfig struct {
	CollectAll    bool `toml:"collect_all"`
	RetainUnknown bool `toml:"retain_unknown"`
	// EnumPolicies maps "Record.wire_name" to "strict" or "permissive".
	EnumPolicies map[string]string `toml:"enum_policies"`
}

func Default() Config {
	return Config{
		Name:            "callsdk-inspect",
		Addr:            ":9300",
		CorsOrigins:     []string{"http://localhost:3000"},
		SchemaCacheSize: 64,
	}
}

// Load reads a TOML file and overlays the keys it defines onto Default.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw Config
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Warn().Str("path", path).Interface("keys", undecoded).Msg("config has unknown keys")
	}

	if meta.IsDefined("name") {
		cfg.Name = strings.TrimSpace(raw.Name)
	}
	if meta.IsDefined("addr") {
		cfg.Addr = strings.TrimSpace(raw.Addr)
	}
	if meta.IsDefined("cors_origins") {
		cfg.CorsOrigins = normalizeOrigins(raw.CorsOrigins)
	}
	if meta.IsDefined("schema_cache_size") {
		cfg.SchemaCacheSize = raw.SchemaCacheSize
	}
	if meta.IsDefined("auth_token") {
		cfg.AuthToken = strings.TrimSpace(raw.AuthToken)
	}
	if meta.IsDefined("decode", "collect_all") {
		cfg.Decode.CollectAll = raw.Decode.CollectAll
	}
	if meta.IsDefined("decode", "retain_unknown") {
		cfg.Decode.RetainUnknown = raw.Decode.RetainUnknown
	}
	if meta.IsDefined("decode", "enum_policies") {
		cfg.Decode.EnumPolicies = raw.Decode.EnumPolicies
	}

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidConfig)
	}
	if strings.TrimSpace(cfg.Addr) == "" {
		return fmt.Errorf("%w: missing addr", ErrInvalidConfig)
	}
	if cfg.SchemaCacheSize <= 0 {
		return fmt.Errorf("%w: schema_cache_size must be positive, got %d", ErrInvalidConfig, cfg.SchemaCacheSize)
	}
	for _, origin := range cfg.CorsOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("%w: cors origin %q must be * or an http(s) URL", ErrInvalidConfig, origin)
		}
	}
	for key, raw := range cfg.Decode.EnumPolicies {
		if !validPolicyKey(key) {
			return fmt.Errorf("%w: enum_policies key %q is not Record.wire_name", ErrInvalidConfig, key)
		}
		if _, err := model.ParseEnumPolicy(raw); err != nil {
			return fmt.Errorf("%w: enum_policies[%q]: %v", ErrInvalidConfig, key, err)
		}
	}
	return nil
}

func validPolicyKey(key string) bool {
	record, wire, ok := strings.Cut(key, ".")
	return ok && record != "" && wire != "" && !strings.ContainsAny(key, " \t")
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, origin := range in {
		v := strings.TrimSpace(origin)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
