package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/model/config"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/geunaseh/jeumala/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const defaultTimeout = 30 * time.Second

// Client talks to the jeumala REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ interfaces.ResourceAPI = &Client{}

// Option is a functional option for Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// New creates a client for the server at baseURL, e.g. http://localhost:8080
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type errorResponse struct {
	Error string `json:"error"`
}

// do sends a JSON request and decodes a JSON response into out when non-nil
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to encode request body", goerr.V("path", path))
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("path", path))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		_ = json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&er)
		return &TransportError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: er.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Method: method, Path: path, StatusCode: resp.StatusCode,
			Err: goerr.Wrap(err, "failed to decode response")}
	}
	return nil
}

func resourcePath(endpoint types.ResourceName, id ...string) string {
	p := "/api/" + url.PathEscape(endpoint.String())
	for _, s := range id {
		p += "/" + url.PathEscape(s)
	}
	return p
}

// List fetches all records of endpoint
func (c *Client) List(ctx context.Context, endpoint types.ResourceName, token string) ([]model.Record, error) {
	var records []model.Record
	if err := c.do(ctx, http.MethodGet, resourcePath(endpoint), token, nil, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}

// Create posts a new record
func (c *Client) Create(ctx context.Context, endpoint types.ResourceName, token string, payload model.Record) error {
	return c.do(ctx, http.MethodPost, resourcePath(endpoint), token, payload, nil)
}

// Update replaces the writable fields of record id
func (c *Client) Update(ctx context.Context, endpoint types.ResourceName, token, id string, payload model.Record) error {
	return c.do(ctx, http.MethodPut, resourcePath(endpoint, id), token, payload, nil)
}

// Delete removes record id
func (c *Client) Delete(ctx context.Context, endpoint types.ResourceName, token, id string) error {
	return c.do(ctx, http.MethodDelete, resourcePath(endpoint, id), token, nil, nil)
}

// LoginRequest is the body of the login call
type LoginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password" masq:"secret"`
	SecretCode string `json:"secretCode" masq:"secret"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	AccessToken string      `json:"access_token" masq:"secret"`
	TokenType   string      `json:"token_type"`
	User        *model.User `json:"user"`
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, goerr.New("login response has no access token")
	}
	return &resp, nil
}

// Schema fetches the resource schemas served by the API
func (c *Client) Schema(ctx context.Context) (*config.Schema, error) {
	var schema config.Schema
	if err := c.do(ctx, http.MethodGet, "/api/schema", "", nil, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}

// Count returns the number of records of endpoint
func (c *Client) Count(ctx context.Context, endpoint types.ResourceName, token string) (int, error) {
	records, err := c.List(ctx, endpoint, token)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

type agentResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Task    model.Record `json:"task"`
}

// TaskParser returns a parser backed by the server's ai-agent endpoint
func (c *Client) TaskParser(tokens interfaces.TokenSource) interfaces.TaskParser {
	return &taskParser{client: c, tokens: tokens}
}

type taskParser struct {
	client *Client
	tokens interfaces.TokenSource
}

func (p *taskParser) ParseTask(ctx context.Context, text string) (model.Record, error) {
	var resp agentResponse
	body := map[string]string{"text": text}
	if err := p.client.do(ctx, http.MethodPost, "/api/ai-agent", p.tokens.Token(), body, &resp); err != nil {
		return nil, err
	}
	if resp.Task == nil {
		return nil, goerr.New("ai-agent response has no task")
	}
	return resp.Task, nil
}
