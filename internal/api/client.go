package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/krishi-officer/krishicli/internal/models"
)

// Client wraps the Digital Krishi Officer HTTP API.
type Client struct {
	baseURL    string
	farmerID   string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL. The timeout matches
// the budget the backend's own integration suite allows an agent pipeline run.
func NewClient(baseURL, farmerID string) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		farmerID: farmerID,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SubmitQuery sends one farmer query through the multi-agent pipeline.
// The location is sent as null when empty.
func (c *Client) SubmitQuery(ctx context.Context, text, location string) (*models.QueryResponse, error) {
	var loc *string
	if location != "" {
		loc = &location
	}

	query := models.FarmerQuery{
		Text:      text,
		QueryType: "general",
		Location:  loc,
		FarmerID:  c.farmerID,
	}

	var response models.QueryResponse
	if err := c.postJSON(ctx, "/api/farmer-query", query, &response); err != nil {
		return nil, err
	}

	// A 2xx body that parsed but lacks the required fields is treated as an
	// error rather than rendered partially.
	if response.ID == "" || response.Status == "" || response.OriginalText == "" {
		return nil, fmt.Errorf("unexpected response shape: missing id, status or original_text")
	}

	return &response, nil
}

// Translate calls the direct Malayalam-to-English translation endpoint.
func (c *Client) Translate(ctx context.Context, text string) (*models.TranslationResponse, error) {
	request := models.TranslationRequest{
		Text:       text,
		SourceLang: "ml",
		TargetLang: "en",
	}

	var response models.TranslationResponse
	if err := c.postJSON(ctx, "/api/translate", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// GetQuery fetches a previously processed query by id.
func (c *Client) GetQuery(ctx context.Context, id string) (*models.QueryResponse, error) {
	var response models.QueryResponse
	if err := c.getJSON(ctx, "/api/queries/"+url.PathEscape(id), &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// Health checks the service and reports per-agent availability.
func (c *Client) Health(ctx context.Context) (*models.HealthStatus, error) {
	var status models.HealthStatus
	if err := c.getJSON(ctx, "/api/health", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("backend returned status %d: %s", resp.StatusCode, truncateBody(data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// truncateBody keeps error messages readable when the backend returns a page
// of HTML instead of JSON.
func truncateBody(data []byte) string {
	const max = 200
	body := strings.TrimSpace(string(data))
	if len(body) > max {
		return body[:max] + "..."
	}
	return body
}
