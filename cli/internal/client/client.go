// ABOUTME: HTTP client for the HRG configurator API
// ABOUTME: Wraps API calls with error handling suited to CLI output

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/sharecode"
)

// Client is the API client for the configurator backend
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HealthResponse represents the /api/v1/health endpoint response
type HealthResponse struct {
	Status          string                  `json:"status"`
	CatalogVersion  string                  `json:"catalog_version,omitempty"`
	Counts          map[models.Category]int `json:"counts,omitempty"`
	ClearancePolicy string                  `json:"clearance_policy"`
}

// CatalogSummary represents the /api/v1/catalog endpoint response
type CatalogSummary struct {
	Version         string                  `json:"version"`
	Source          string                  `json:"source"`
	LoadedAt        time.Time               `json:"loaded_at"`
	Counts          map[models.Category]int `json:"counts"`
	EmptyCategories []models.Category       `json:"empty_categories"`
}

// ShareRequest asks the backend to generate builds and encode them
type ShareRequest struct {
	models.BuildSetRequest
	Preferences []models.Preference `json:"preferences,omitempty"`
}

// ShareResponse carries a share token
type ShareResponse struct {
	Token          string `json:"token"`
	Path           string `json:"path"`
	CatalogVersion string `json:"catalog_version"`
}

// SharedBuilds is a decoded share token
type SharedBuilds struct {
	Builds []sharecode.Build `json:"builds"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error      string          `json:"error"`
	Details    string          `json:"details,omitempty"`
	Code       int             `json:"code"`
	Category   models.Category `json:"category,omitempty"`
	Constraint string          `json:"constraint,omitempty"`
}

// APIError is returned when the backend answers with a non-2xx status
type APIError struct {
	StatusCode int
	Response   ErrorResponse
}

func (e *APIError) Error() string {
	msg := e.Response.Error
	if msg == "" {
		return fmt.Sprintf("backend returned status %d", e.StatusCode)
	}
	if e.Response.Details != "" {
		msg += ": " + e.Response.Details
	}
	return "backend error: " + msg
}

// IsStatus reports whether err is an APIError with the given status code
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// Health calls GET /api/v1/health.
// A degraded backend answers 503 with a health body, which is returned with the error.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("invalid response from backend: %w", err)
	}

	var health HealthResponse
	if resp.StatusCode == http.StatusServiceUnavailable {
		if json.Unmarshal(body, &health) == nil && health.Status != "" {
			return &health, &APIError{StatusCode: resp.StatusCode, Response: ErrorResponse{Error: "backend " + health.Status, Code: resp.StatusCode}}
		}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errorFromBody(resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("invalid response from backend: %w", err)
	}
	return &health, nil
}

// Catalog calls GET /api/v1/catalog
func (c *Client) Catalog(ctx context.Context) (*CatalogSummary, error) {
	var summary CatalogSummary
	if err := c.do(ctx, http.MethodGet, "/api/v1/catalog", nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GenerateBuilds calls POST /api/v1/builds
func (c *Client) GenerateBuilds(ctx context.Context, input models.BuildSetRequest) (*models.BuildSet, error) {
	var set models.BuildSet
	if err := c.do(ctx, http.MethodPost, "/api/v1/builds", input, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// GenerateBuild calls POST /api/v1/builds/{preference}
func (c *Client) GenerateBuild(ctx context.Context, input models.BuildRequest) (*models.Build, error) {
	var build models.Build
	path := "/api/v1/builds/" + url.PathEscape(string(input.Preference))
	if err := c.do(ctx, http.MethodPost, path, input.SetRequest(), &build); err != nil {
		return nil, err
	}
	return &build, nil
}

// CreateShare calls POST /api/v1/share
func (c *Client) CreateShare(ctx context.Context, input ShareRequest) (*ShareResponse, error) {
	var share ShareResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/share", input, &share); err != nil {
		return nil, err
	}
	return &share, nil
}

// DecodeShare calls GET /api/v1/share/{token}
func (c *Client) DecodeShare(ctx context.Context, token string) (*SharedBuilds, error) {
	var shared SharedBuilds
	if err := c.do(ctx, http.MethodGet, "/api/v1/share/"+url.PathEscape(token), nil, &shared); err != nil {
		return nil, err
	}
	return &shared, nil
}

// do sends a request with an optional JSON body and decodes a 200 response into out
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal input: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.handleErrorResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("invalid response from backend: %w", err)
	}
	return nil
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("request canceled")
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot connect to backend at %s: %w", c.baseURL, err)
}

// handleErrorResponse parses API error responses
func (c *Client) handleErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return errorFromBody(resp.StatusCode, body)
}

func errorFromBody(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}
	if err := json.Unmarshal(body, &apiErr.Response); err != nil {
		apiErr.Response = ErrorResponse{Code: status}
	}
	return apiErr
}
