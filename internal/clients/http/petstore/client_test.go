package petstore

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method string
	path   string
	query  string
	header http.Header
	body   string
}

func newEchoServer(t *testing.T, calls *[]captured) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*calls = append(*calls, captured{
			method: r.Method,
			path:   r.URL.EscapedPath(),
			query:  r.URL.RawQuery,
			header: r.Header.Clone(),
			body:   string(body),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewValidatesBaseURL(t *testing.T) {
	_, err := New("  ")
	assert.Error(t, err)
	_, err = New("not a url")
	assert.Error(t, err)

	c, err := New("http://127.0.0.1:5000/")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:5000", c.BaseURL())
}

func TestRequestsCarryRawStatusAndBody(t *testing.T) {
	var calls []captured
	server := newEchoServer(t, &calls)
	c, err := New(server.URL)
	require.NoError(t, err)
	ctx := context.Background()

	resp, err := c.AddPet(ctx, Fields{"name": "Rex"}, "key-1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.Status)
	var msg map[string]string
	require.NoError(t, resp.Decode(&msg))
	assert.Equal(t, "ok", msg["message"])

	_, err = c.FindPetsByStatus(ctx, "sold")
	require.NoError(t, err)
	_, err = c.Login(ctx, "alice", "")
	require.NoError(t, err)
	_, err = c.GetPet(ctx, "-1")
	require.NoError(t, err)
	_, err = c.StockInventory(ctx, 3, Fields{"quantity": 2})
	require.NoError(t, err)

	require.Len(t, calls, 5)
	assert.Equal(t, http.MethodPost, calls[0].method)
	assert.Equal(t, "/pet", calls[0].path)
	assert.Equal(t, "key-1", calls[0].header.Get("Idempotency-Key"))
	assert.JSONEq(t, `{"name":"Rex"}`, calls[0].body)
	assert.Equal(t, "status=sold", calls[1].query)
	assert.Equal(t, "username=alice", calls[2].query)
	assert.Equal(t, "/pet/-1", calls[3].path)
	assert.Equal(t, http.MethodPut, calls[4].method)
	assert.Equal(t, "/store/inventory/3", calls[4].path)
}

func TestUploadImageSendsMultipart(t *testing.T) {
	var calls []captured
	server := newEchoServer(t, &calls)
	c, err := New(server.URL)
	require.NoError(t, err)

	_, err = c.UploadImage(context.Background(), "1", "file", "rex.png", []byte("png"))
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.True(t, strings.HasPrefix(calls[0].header.Get("Content-Type"), "multipart/form-data"))
	assert.Contains(t, calls[0].body, `filename="rex.png"`)
}

func TestCurlRecorderWritesPerSuite(t *testing.T) {
	var calls []captured
	server := newEchoServer(t, &calls)
	dir := t.TempDir()
	recorder, err := NewCurlRecorder(dir)
	require.NoError(t, err)
	recorder.SetSuite("api_pet")
	c, err := New(server.URL, WithCurlRecorder(recorder))
	require.NoError(t, err)

	_, err = c.AddPet(context.Background(), Fields{"name": "O'Neil"}, "")
	require.NoError(t, err)
	require.NoError(t, recorder.Err())

	data, err := os.ReadFile(filepath.Join(dir, "api_pet.log"))
	require.NoError(t, err)
	line := strings.TrimSpace(string(data))
	assert.True(t, strings.HasPrefix(line, "curl -X POST '"+server.URL+"/pet'"))
	assert.Contains(t, line, `-H 'Content-Type: application/json'`)
	assert.Contains(t, line, `-d '{"name":"O'\''Neil"}'`)

	require.NoError(t, recorder.Clear())
	_, err = os.Stat(filepath.Join(dir, "api_pet.log"))
	assert.True(t, os.IsNotExist(err))
}

func TestCurlCommandElidesMultipart(t *testing.T) {
	header := http.Header{"Content-Type": []string{"multipart/form-data; boundary=x"}}
	line := CurlCommand(http.MethodPost, "http://h/pet/1/uploadImage", header, []byte("--x..."))
	assert.Contains(t, line, "--data-binary '<multipart body>'")
}
