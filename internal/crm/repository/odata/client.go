package odata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2/clientcredentials"

	"crm-admin-gateway/internal/crm/repository"
	"crm-admin-gateway/internal/model"
)

// Client is the HTTP wrapper for the upstream OData CRM API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// ClientConfig configures the backend connection. When OAuth is set the
// client authenticates with the client-credentials grant; otherwise
// AccessToken is sent as a static bearer token.
type ClientConfig struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration
	OAuth       *clientcredentials.Config
}

// NewClient creates a new OData backend client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.OAuth != nil {
		// The oauth2 transport caches and refreshes the token itself.
		httpClient = cfg.OAuth.Client(context.Background())
		httpClient.Timeout = cfg.Timeout
	}

	return &Client{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
	}
}

// entityURL builds the OData single-entity path: /<Set>('<id>').
// Single quotes in the key literal double, same convention as $filter.
func (c *Client) entityURL(set model.EntitySet, id string) string {
	escaped := strings.ReplaceAll(id, "'", "''")
	return fmt.Sprintf("%s/%s('%s')", c.baseURL, set, escaped)
}

func (c *Client) do(ctx context.Context, method, url string, payload any) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s request: %w", method, err)
		}
		body = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", method, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call backend %s %s: %w", method, url, err)
	}
	return resp, nil
}

// List fetches one page of an entity set. rawQuery is the complete query
// string from the builder (leading "?" included) and is appended verbatim.
func (c *Client) List(ctx context.Context, set model.EntitySet, rawQuery string) (ListResult, error) {
	url := fmt.Sprintf("%s/%s%s", c.baseURL, set, rawQuery)

	resp, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ListResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return ListResult{}, fmt.Errorf("backend list error %d: %s", resp.StatusCode, string(raw))
	}

	var envelope listEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return ListResult{}, fmt.Errorf("failed to decode list response: %w", err)
	}

	count := len(envelope.Value)
	if envelope.Count != nil {
		count = *envelope.Count
	}
	return ListResult{Items: envelope.Value, Count: count}, nil
}

// Get fetches a single entity by key.
func (c *Client) Get(ctx context.Context, set model.EntitySet, id string) (json.RawMessage, error) {
	resp, err := c.do(ctx, http.MethodGet, c.entityURL(set, id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, repository.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("backend get error %d: %s", resp.StatusCode, string(raw))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read get response: %w", err)
	}
	return json.RawMessage(raw), nil
}

// Create inserts a new entity via POST /<Set>.
func (c *Client) Create(ctx context.Context, set model.EntitySet, payload any) (json.RawMessage, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, set)

	resp, err := c.do(ctx, http.MethodPost, url, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("backend create error %d: %s", resp.StatusCode, string(raw))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read create response: %w", err)
	}
	return json.RawMessage(raw), nil
}

// Update patches an entity. OData services may answer 204 No Content, in
// which case the current state is re-fetched.
func (c *Client) Update(ctx context.Context, set model.EntitySet, id string, payload any) (json.RawMessage, error) {
	resp, err := c.do(ctx, http.MethodPatch, c.entityURL(set, id), payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read update response: %w", err)
		}
		return json.RawMessage(raw), nil
	case http.StatusNoContent:
		return c.Get(ctx, set, id)
	case http.StatusNotFound:
		return nil, repository.ErrNotFound
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("backend update error %d: %s", resp.StatusCode, string(raw))
	}
}

// Delete removes an entity by key.
func (c *Client) Delete(ctx context.Context, set model.EntitySet, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, c.entityURL(set, id), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return repository.ErrNotFound
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backend delete error %d: %s", resp.StatusCode, string(raw))
	}
}
