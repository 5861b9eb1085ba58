package ctl

import (
	"bytes"
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/petstore-api/internal/app/api"
	"github.com/Apurer/petstore-api/internal/harness"
	platformobservability "github.com/Apurer/petstore-api/internal/platform/observability"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := api.DefaultConfig()
	cfg.GinMode = "test"
	instruments := platformobservability.Discard()
	server := httptest.NewServer(api.NewRouter(cfg, api.NewServices(api.MemoryRepositories(), instruments), instruments, nil))
	t.Cleanup(server.Close)
	return server
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T, baseURL, logDir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"base_url":"` + baseURL + `","log_dir":"` + filepath.ToSlash(logDir) + `"}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestListFiltersScenarios(t *testing.T) {
	out, err := execute(t, "list", "--filter", "api_store/")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(harness.Select(harness.Scenarios(), "api_store/")))
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "api_store/"), line)
	}
}

func TestRunWritesCurlLogs(t *testing.T) {
	server := newAPI(t)
	logDir := t.TempDir()
	config := writeConfig(t, server.URL, logDir)

	out, err := execute(t, "run", "--config", config, "--filter", "api_pet/get_pet")
	require.NoError(t, err, out)
	assert.Contains(t, out, "PASS api_pet/get_pet_id_invalid")
	assert.Contains(t, out, "0 failed")

	data, err := os.ReadFile(filepath.Join(logDir, "api_pet.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "curl -X GET")
}

func TestRunUnknownFilter(t *testing.T) {
	server := newAPI(t)
	_, err := execute(t, "run", "--base-url", server.URL, "--config", filepath.Join(t.TempDir(), "none.json"), "--filter", "nothing-matches")
	assert.Error(t, err)
}

func TestRequestPrintsStatusAndBody(t *testing.T) {
	server := newAPI(t)
	missing := filepath.Join(t.TempDir(), "none.json")

	out, err := execute(t, "request", "POST", "pet", "--base-url", server.URL, "--config", missing,
		"--data", `{"name":"Rex","category":"Dog","status":"available"}`)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "201 Created\n"), out)
	assert.Contains(t, out, `"name":"Rex"`)

	out, err = execute(t, "request", "get", "/pet/findByStatus?status=unknown", "--base-url", server.URL, "--config", missing)
	require.NoError(t, err)
	assert.Contains(t, out, "400 Bad Request")
	assert.Contains(t, out, "Status parameter is invalid; should be available, pending, or sold")

	_, err = execute(t, "request", "POST", "/pet", "--base-url", server.URL, "--config", missing, "--data", "{")
	assert.Error(t, err)
}

func TestMissingConfig(t *testing.T) {
	_, err := execute(t, "run", "--config", filepath.Join(t.TempDir(), "none.json"))
	assert.Error(t, err)
}
