package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/callsdk/internal/model"
	"github.com/danmuck/callsdk/internal/testutil/testlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadOverlaysDefinedKeys(t *testing.T) {
	testlog.Start(t)
	path := writeConfig(t, `
addr = ":9400"

[decode]
collect_all = true

[decode.enum_policies]
"Call.record_type" = "strict"
"Conference.status" = "permissive"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	def := Default()
	assert.Equal(t, def.Name, cfg.Name)
	assert.Equal(t, ":9400", cfg.Addr)
	assert.Equal(t, def.CorsOrigins, cfg.CorsOrigins)
	assert.Equal(t, def.SchemaCacheSize, cfg.SchemaCacheSize)
	assert.True(t, cfg.Decode.CollectAll)
	assert.False(t, cfg.Decode.RetainUnknown)
	assert.Equal(t, map[string]string{
		"Call.record_type":  "strict",
		"Conference.status": "permissive",
	}, cfg.Decode.EnumPolicies)
}

func TestLoadEmptyOriginsClearsDefault(t *testing.T) {
	cfg, err := Load(writeConfig(t, `cors_origins = [" ", ""]`))
	require.NoError(t, err)
	assert.Empty(t, cfg.CorsOrigins)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty name":     `name = "  "`,
		"zero cache":     `schema_cache_size = 0`,
		"bad policy":     "[decode.enum_policies]\n\"Call.record_type\" = \"lenient\"",
		"bad policy key": "[decode.enum_policies]\nrecord_type = \"strict\"",
		"malformed toml": `addr = `,
		"bad origin":     `cors_origins = ["localhost:3000"]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, `schema_cache_size = -1`))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestCodecAppliesDecodeSection(t *testing.T) {
	cfg := Default()
	cfg.Decode.CollectAll = true
	cfg.Decode.EnumPolicies = map[string]string{"Item.color": "permissive"}

	color := model.NewEnum("ItemColor", "red")
	item := model.NewSchema("Item",
		model.Field("sku", "sku", model.String, model.Required()),
		model.Field("color", "color", model.EnumOf(color)),
		model.Field("qty", "qty", model.Int),
	)

	codec, err := cfg.Codec()
	require.NoError(t, err)

	rec, err := codec.Decode(item, map[string]any{"sku": "a", "color": "blue"})
	require.NoError(t, err)
	got, _ := rec.GetString("color")
	assert.Equal(t, "blue", got)

	_, err = codec.Decode(item, map[string]any{"color": "blue", "qty": "many"})
	assert.Len(t, model.FieldErrors(err), 2)

	cfg.Decode.EnumPolicies["Item.color"] = "sometimes"
	_, err = cfg.Codec()
	assert.Error(t, err)
}

func TestTemplateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "callsdk.toml")
	require.NoError(t, WriteTemplate(path, false))
	assert.Error(t, WriteTemplate(path, false))
	require.NoError(t, WriteTemplate(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Addr, cfg.Addr)
	assert.Equal(t, "permissive", cfg.Decode.EnumPolicies["Call.record_type"])
}

func TestEnvOverrides(t *testing.T) {
	env := map[string]string{
		EnvAddr:        "127.0.0.1:9500",
		EnvCorsOrigins: "http://a.test, http://b.test",
		EnvConfig:      "/etc/callsdk.toml",
	}
	getenv := func(k string) string { return env[k] }

	cfg := ApplyEnv(Default(), getenv)
	assert.Equal(t, "127.0.0.1:9500", cfg.Addr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
	assert.Equal(t, "/etc/callsdk.toml", PathFromEnv(getenv, "callsdk.toml"))
	assert.Equal(t, "callsdk.toml", PathFromEnv(func(string) string { return "" }, "callsdk.toml"))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("CALLSDK_TEST_DOTENV=from-file\n"), 0o600))
	t.Setenv("CALLSDK_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("CALLSDK_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "from-file", os.Getenv("CALLSDK_TEST_DOTENV"))
}
