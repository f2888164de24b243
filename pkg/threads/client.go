package threads

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"followaudit/pkg/errors"
	"followaudit/pkg/followset"
	"followaudit/pkg/logger"
)

// Client is a bearer-token authenticated Threads API client. Requests are
// sent once: there is no retry and no timeout beyond the http.Client's.
type Client struct {
	httpClient *http.Client
	headers    map[string]string
	baseURL    string
	logger     logger.Logger
}

// NewClient creates a client for baseURL presenting token on every request.
// A zero timeout keeps the http.Client default.
func NewClient(baseURL, token string, timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}
	if baseURL == "" {
		baseURL = BaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		headers: map[string]string{
			"Authorization": "Bearer " + token,
			"Accept":        "application/json",
		},
		baseURL: baseURL,
		logger:  log,
	}
}

// SetHeader sets a custom header for the client
func (c *Client) SetHeader(key, value string) {
	c.headers[key] = value
}

// SetHTTPClient replaces the underlying http.Client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// doRequest performs an HTTP request with the configured headers
func (c *Client) doRequest(method, url string) (*http.Response, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, &errors.Error{
			Type:    errors.ErrorTypeUnknown,
			Message: "failed to create request",
			Err:     err,
		}
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.ErrorWithFields("HTTP request failed", map[string]interface{}{
			"method":   method,
			"url":      url,
			"error":    err.Error(),
			"duration": duration,
		})
		return nil, &errors.Error{
			Type:    errors.ErrorTypeNetwork,
			Message: "request did not complete",
			Err:     err,
		}
	}

	logger.LogRequest(c.logger, method, url, resp.StatusCode, duration)
	return resp, nil
}

// checkResponseStatus accepts only 200; everything else becomes a typed error
// carrying the status code
func (c *Client) checkResponseStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	return &errors.Error{
		Type:    errors.TypeForStatus(resp.StatusCode),
		Message: fmt.Sprintf("unexpected status code: %d", resp.StatusCode),
		Code:    resp.StatusCode,
	}
}

// FetchFollowing returns the identifiers of every account the token owner
// follows
func (c *Client) FetchFollowing() (followset.Set, error) {
	url := FollowingURL(c.baseURL)

	resp, err := c.doRequest(http.MethodGet, url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkResponseStatus(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.Error{
			Type:    errors.ErrorTypeNetwork,
			Message: "failed to read response body",
			Code:    resp.StatusCode,
			Err:     err,
		}
	}

	var following FollowingResponse
	if err := json.Unmarshal(body, &following); err != nil {
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}
		c.logger.ErrorWithFields("failed to parse following list", map[string]interface{}{
			"url":          url,
			"error":        err.Error(),
			"body_preview": bodyPreview,
		})
		return nil, &errors.Error{
			Type:    errors.ErrorTypeParsing,
			Message: "failed to parse following list",
			Code:    resp.StatusCode,
			Err:     err,
		}
	}

	c.logger.DebugWithFields("fetched following list", map[string]interface{}{
		"count": len(following.Data),
	})

	return followset.New(following.IDs()...), nil
}

// DestroyFriendship unfollows one account
func (c *Client) DestroyFriendship(accountID string) error {
	resp, err := c.doRequest(http.MethodPost, DestroyFriendshipURL(c.baseURL, accountID))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)

	return c.checkResponseStatus(resp)
}
