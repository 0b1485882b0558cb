// Package devops is the REST client for the tracking service. It owns all
// wire formats: responses are decoded once here and handed out as domain
// types, never as raw maps.
package devops

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"devops-board/internal/config"
	"devops-board/internal/domain"
)

// Client calls the tracking service REST API. It is stateless: nothing is
// cached between calls and no cursor is persisted.
type Client struct {
	http       *http.Client
	log        *zap.SugaredLogger
	baseURL    string
	org        string
	project    string
	apiVersion string
	authHeader string
}

// NewClient creates a client from the loaded configuration. Returns
// domain.ErrNotConfigured before any network call when the personal access
// token is missing.
func NewClient(cfg *config.Config, log *zap.SugaredLogger) (*Client, error) {
	if cfg.DevOps.PAT == "" {
		return nil, fmt.Errorf("%w: set DEVOPS_PAT or AZURE_DEVOPS_PAT", domain.ErrNotConfigured)
	}

	token := base64.StdEncoding.EncodeToString([]byte(":" + cfg.DevOps.PAT))

	return &Client{
		http:       &http.Client{Timeout: cfg.HTTP.RequestTimeout},
		log:        log.Named("devops.client"),
		baseURL:    strings.TrimRight(cfg.DevOps.BaseURL, "/"),
		org:        cfg.DevOps.Organization,
		project:    cfg.DevOps.Project,
		apiVersion: cfg.DevOps.APIVersion,
		authHeader: "Basic " + token,
	}, nil
}

// endpoint builds an organization-scoped URL. The path starts with the
// project segment; the api-version parameter is appended to every call.
func (c *Client) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api-version", c.apiVersion)
	return c.baseURL + "/" + c.org + "/" + path + "?" + params.Encode()
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, url, nil, "application/json")
}

// getRaw fetches a non-JSON resource, such as file contents.
func (c *Client) getRaw(ctx context.Context, url string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, url, nil, "application/octet-stream")
}

func (c *Client) postJSON(ctx context.Context, url string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, url, payload, "application/json")
}

func (c *Client) do(ctx context.Context, method, url string, body []byte, accept string) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Accept", accept)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("request failed", "method", method, "url", url, "error", err)
		return nil, &APIError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Reason: "failed to read response body: " + err.Error()}
	}

	c.log.Debugw("request done", "method", method, "url", url, "status", resp.StatusCode)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
			Details:    string(data),
		}
	}
	return data, nil
}
