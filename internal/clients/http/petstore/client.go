// Package petstore is a black-box HTTP client for the Petstore API. Calls return the raw
// status and body so callers can assert on error responses as well as records.
package petstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Response is the raw outcome of a call.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// String returns the body as text.
func (r *Response) String() string {
	if r == nil {
		return ""
	}
	return string(r.Body)
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if r == nil || len(r.Body) == 0 {
		return errors.New("empty response body")
	}
	return json.Unmarshal(r.Body, v)
}

// Fields is a JSON object payload. Members left out are absent from the request.
type Fields map[string]any

// Client issues requests against a Petstore API base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	recorder   *CurlRecorder
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithCurlRecorder logs an equivalent curl command for every request.
func WithCurlRecorder(recorder *CurlRecorder) Option {
	return func(c *Client) {
		c.recorder = recorder
	}
}

// New builds a client for baseURL, for example http://127.0.0.1:8080.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("petstore base URL is required")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid petstore base URL: %w", err)
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends an arbitrary request. A non-nil payload is encoded as JSON.
func (c *Client) Do(ctx context.Context, method, path string, payload any, header http.Header) (*Response, error) {
	var body []byte
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = encoded
		if header == nil {
			header = http.Header{}
		}
		header.Set("Content-Type", "application/json")
	}
	return c.send(ctx, method, path, body, header)
}

func (c *Client) send(ctx context.Context, method, path string, body []byte, header http.Header) (*Response, error) {
	target := c.baseURL + path
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if c.recorder != nil {
		c.recorder.Record(method, target, req.Header, body)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// AddPet posts a pet. A non-empty idempotencyKey is sent as the Idempotency-Key header.
func (c *Client) AddPet(ctx context.Context, pet Fields, idempotencyKey string) (*Response, error) {
	var header http.Header
	if idempotencyKey != "" {
		header = http.Header{"Idempotency-Key": []string{idempotencyKey}}
	}
	return c.Do(ctx, http.MethodPost, "/pet", pet, header)
}

// GetPet fetches a pet. id is sent verbatim so malformed ids can be exercised.
func (c *Client) GetPet(ctx context.Context, id string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, "/pet/"+url.PathEscape(id), nil, nil)
}

func (c *Client) UpdatePet(ctx context.Context, id string, fields Fields) (*Response, error) {
	return c.Do(ctx, http.MethodPut, "/pet/"+url.PathEscape(id), fields, nil)
}

func (c *Client) DeletePet(ctx context.Context, id string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, "/pet/"+url.PathEscape(id), nil, nil)
}

// FindPetsByStatus queries by status. An empty status omits the parameter.
func (c *Client) FindPetsByStatus(ctx context.Context, status string) (*Response, error) {
	path := "/pet/findByStatus"
	if status != "" {
		path += "?" + url.Values{"status": []string{status}}.Encode()
	}
	return c.Do(ctx, http.MethodGet, path, nil, nil)
}

// UploadImage sends content as a multipart part named field. An empty filename sends
// the part without one.
func (c *Client) UploadImage(ctx context.Context, id, field, filename string, content []byte) (*Response, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreatePart(map[string][]string{
		"Content-Disposition": {fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename)},
		"Content-Type":        {"application/octet-stream"},
	})
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	header := http.Header{"Content-Type": []string{writer.FormDataContentType()}}
	return c.send(ctx, http.MethodPost, "/pet/"+url.PathEscape(id)+"/uploadImage", buf.Bytes(), header)
}

func (c *Client) Inventory(ctx context.Context) (*Response, error) {
	return c.Do(ctx, http.MethodGet, "/store/inventory", nil, nil)
}

func (c *Client) StockInventory(ctx context.Context, petID int64, fields Fields) (*Response, error) {
	return c.Do(ctx, http.MethodPut, "/store/inventory/"+strconv.FormatInt(petID, 10), fields, nil)
}

func (c *Client) AddInventory(ctx context.Context, fields Fields) (*Response, error) {
	return c.Do(ctx, http.MethodPost, "/store/inventory/add", fields, nil)
}

func (c *Client) RemoveInventory(ctx context.Context, fields Fields) (*Response, error) {
	return c.Do(ctx, http.MethodPost, "/store/inventory/remove", fields, nil)
}

func (c *Client) PlaceOrder(ctx context.Context, fields Fields) (*Response, error) {
	return c.Do(ctx, http.MethodPost, "/store/order", fields, nil)
}

func (c *Client) GetOrder(ctx context.Context, id string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, "/store/order/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListOrders(ctx context.Context) (*Response, error) {
	return c.Do(ctx, http.MethodGet, "/store/orders", nil, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, id string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, "/store/order/"+url.PathEscape(id), nil, nil)
}

func (c *Client) CreateUser(ctx context.Context, fields Fields) (*Response, error) {
	return c.Do(ctx, http.MethodPost, "/user", fields, nil)
}

// Login sends the credentials as query parameters; empty values are omitted.
func (c *Client) Login(ctx context.Context, username, password string) (*Response, error) {
	query := url.Values{}
	if username != "" {
		query.Set("username", username)
	}
	if password != "" {
		query.Set("password", password)
	}
	path := "/user/login"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return c.Do(ctx, http.MethodGet, path, nil, nil)
}

func (c *Client) GetUser(ctx context.Context, username string) (*Response, error) {
	return c.Do(ctx, http.MethodGet, "/user/"+url.PathEscape(username), nil, nil)
}

func (c *Client) UpdateUser(ctx context.Context, username string, fields Fields) (*Response, error) {
	return c.Do(ctx, http.MethodPut, "/user/"+url.PathEscape(username), fields, nil)
}

func (c *Client) DeleteUser(ctx context.Context, username string) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, "/user/"+url.PathEscape(username), nil, nil)
}

func (c *Client) Healthz(ctx context.Context) (*Response, error) {
	return c.Do(ctx, http.MethodGet, "/healthz", nil, nil)
}
