package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/callsdk/internal/catalog"
	"github.com/danmuck/callsdk/internal/config"
	"github.com/danmuck/callsdk/internal/registry"
	"github.com/danmuck/callsdk/internal/testutil/testlog"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRecordsListsCatalog(t *testing.T) {
	testlog.Start(t)
	out, _, err := run(t, "", "records")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(catalog.Entries())+1)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, out, "SendDTMFParams")

	out, _, err = run(t, "", "records", "--group", "verify")
	require.NoError(t, err)
	assert.Contains(t, out, "CreateVerificationParams")
	assert.NotContains(t, out, "SendDTMFParams")
}

func TestDescribeAndSchema(t *testing.T) {
	testlog.Start(t)
	out, _, err := run(t, "", "describe", "ConferenceJoinParams")
	require.NoError(t, err)
	assert.Contains(t, out, "call_control_id")
	assert.Contains(t, out, "supervisor_role")
	assert.Contains(t, out, "strict")

	out, _, err = run(t, "", "schema", "SendDTMFParams")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "SendDTMFParams", doc["title"])

	_, _, err = run(t, "", "describe", "NoSuchRecord")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestDecodeJSONFile(t *testing.T) {
	testlog.Start(t)
	path := writeFile(t, "dtmf.json", `{"digits":"1www2","duration_millis":250,"trace":"x"}`)

	out, _, err := run(t, "", "decode", "SendDTMFParams", path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]any{"digits": "1www2", "duration_millis": float64(250)}, got)

	out, _, err = run(t, "", "decode", "SendDTMFParams", path, "--unknown")
	require.NoError(t, err)
	assert.Contains(t, out, `"trace": "x"`)

	out, _, err = run(t, "", "decode", "SendDTMFParams", path, "--extract", "$.digits")
	require.NoError(t, err)
	assert.Equal(t, "\"1www2\"\n", out)
}

func TestDecodeYAMLAndStdin(t *testing.T) {
	testlog.Start(t)
	path := writeFile(t, "join.yaml", "call_control_id: c-1\nmute: true\nwhisper_call_control_ids:\n  - w-1\n  - w-2\n")

	out, _, err := run(t, "", "decode", "ConferenceJoinParams", path, "--extract", "$.whisper_call_control_ids[1]")
	require.NoError(t, err)
	assert.Equal(t, "\"w-2\"\n", out)

	out, _, err = run(t, `{"call_control_id":"c-2"}`, "decode", "ConferenceJoinParams", "-")
	require.NoError(t, err)
	assert.JSONEq(t, `{"call_control_id":"c-2"}`, out)
}

func TestDecodeReportsViolations(t *testing.T) {
	testlog.Start(t)
	path := writeFile(t, "bad.json", `{"duration_millis":"long","call_control_ids":[1]}`)

	_, stderr, err := run(t, "", "decode", "SendDTMFParams", path)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(stderr, "\n"))
	assert.Contains(t, stderr, "missing_required_field")

	_, stderr, err = run(t, "", "decode", "SendDTMFParams", path, "--collect")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "3 violation(s)")
	assert.Equal(t, 3, strings.Count(stderr, "\n"))

	role := writeFile(t, "role.json", `{"call_control_id":"c-1","supervisor_role":"overlord"}`)
	_, _, err = run(t, "", "decode", "ConferenceJoinParams", role)
	require.Error(t, err)
	_, _, err = run(t, "", "decode", "ConferenceJoinParams", role, "--permissive", "ConferenceJoinParams.supervisor_role")
	require.NoError(t, err)

	_, _, err = run(t, "", "decode", "SendDTMFParams", writeFile(t, "list.json", `[1]`))
	assert.Error(t, err)
}

func TestExampleDecodesBack(t *testing.T) {
	testlog.Start(t)
	for _, nulls := range []string{"--nulls=false", "--nulls=true"} {
		out, _, err := run(t, "", "example", "ConferenceCreateParams", nulls)
		require.NoError(t, err)
		path := writeFile(t, "example.json", out)
		_, _, err = run(t, "", "decode", "ConferenceCreateParams", path)
		require.NoError(t, err, nulls)
	}
}

func TestBuildServerResolvesConfig(t *testing.T) {
	testlog.Start(t)
	gin.SetMode(gin.TestMode)
	path := writeFile(t, "callsdk.toml", "name = \"from-file\"\naddr = \":9301\"\n")
	env := map[string]string{config.EnvConfig: path, config.EnvAddr: ":9302"}
	getenv := func(k string) string { return env[k] }

	srv, used, err := buildServer(serveOptions{}, getenv)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "from-file", srv.Name)
	assert.Equal(t, ":9302", srv.Addr)

	srv, _, err = buildServer(serveOptions{addr: ":9303"}, getenv)
	require.NoError(t, err)
	assert.Equal(t, ":9303", srv.Addr)

	rr := httptest.NewRecorder()
	srv.HTTPRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	srv, used, err = buildServer(serveOptions{}, func(string) string { return "" })
	require.NoError(t, err)
	assert.Empty(t, used)
	assert.Equal(t, config.Default().Addr, srv.Addr)

	_, _, err = buildServer(serveOptions{configPath: filepath.Join(t.TempDir(), "missing.toml")}, getenv)
	assert.Error(t, err)
}
