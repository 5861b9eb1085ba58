package petstore

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// CurlRecorder appends one curl command per request to <dir>/<suite>.log.
type CurlRecorder struct {
	mu    sync.Mutex
	dir   string
	suite string
	err   error
}

// NewCurlRecorder records into dir, creating it when missing.
func NewCurlRecorder(dir string) (*CurlRecorder, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("curl log directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create curl log directory: %w", err)
	}
	return &CurlRecorder{dir: dir, suite: "petstore"}, nil
}

// SetSuite selects the log file subsequent requests are written to.
func (r *CurlRecorder) SetSuite(suite string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if suite = strings.TrimSpace(suite); suite != "" {
		r.suite = suite
	}
}

// Path returns the log file of the current suite.
func (r *CurlRecorder) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path()
}

func (r *CurlRecorder) path() string {
	return filepath.Join(r.dir, r.suite+".log")
}

// Clear removes every log file in the directory.
func (r *CurlRecorder) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	matches, err := filepath.Glob(filepath.Join(r.dir, "*.log"))
	if err != nil {
		return err
	}
	for _, match := range matches {
		if err := os.Remove(match); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// Err returns the first write error, if any. Recording never fails a request.
func (r *CurlRecorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Record appends the curl equivalent of a request.
func (r *CurlRecorder) Record(method, target string, header http.Header, body []byte) {
	line := CurlCommand(method, target, header, body)
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := os.OpenFile(r.path(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		r.keep(err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		r.keep(err)
	}
}

func (r *CurlRecorder) keep(err error) {
	if r.err == nil {
		r.err = err
	}
}

// CurlCommand renders a request as a single-line curl invocation. Multipart bodies are elided.
func CurlCommand(method, target string, header http.Header, body []byte) string {
	var b strings.Builder
	b.WriteString("curl -X ")
	b.WriteString(method)
	b.WriteString(" ")
	b.WriteString(shellQuote(target))
	keys := make([]string, 0, len(header))
	for key := range header {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		for _, value := range header[key] {
			b.WriteString(" -H ")
			b.WriteString(shellQuote(key + ": " + value))
		}
	}
	if len(body) > 0 {
		if strings.HasPrefix(header.Get("Content-Type"), "multipart/") {
			b.WriteString(" --data-binary '<multipart body>'")
		} else {
			b.WriteString(" -d ")
			b.WriteString(shellQuote(string(body)))
		}
	}
	return b.String()
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
