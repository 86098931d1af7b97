package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"powerrocks/internal/analysis"
	"powerrocks/internal/model"
)

// ProviderClient talks to the utility provider's billing API. One
// client is built at process start and shared across requests so
// connections are reused; per-call clients are deliberately avoided.
type ProviderClient struct {
	BaseURL        string
	SubscriptionID string
	UserID         string
	SdpID          string
	Username       string
	Password       string
	Client         *http.Client

	// mu guards token: the client is shared across concurrently served
	// skill requests.
	mu    sync.Mutex
	token string
}

// NewProviderClient creates a provider client. The timeout bounds every
// outbound call; a stalled upstream surfaces as a data error instead of
// hanging the voice response.
func NewProviderClient(baseURL, subscriptionID, userID, sdpID, username, password string, timeout time.Duration) *ProviderClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ProviderClient{
		BaseURL:        strings.TrimSuffix(baseURL, "/") + "/",
		SubscriptionID: subscriptionID,
		UserID:         userID,
		SdpID:          sdpID,
		Username:       username,
		Password:       password,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// ProviderError represents a non-success response from the provider API.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges the configured credentials for a bearer token and
// stores it for subsequent calls. A non-200 or an empty token wraps
// analysis.ErrAuthentication; transport failures (including timeouts)
// wrap analysis.ErrDataUnavailable because the credentials were never
// actually rejected.
func (c *ProviderClient) Login(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.login(ctx)
}

// login performs the credential exchange. Callers must hold mu.
func (c *ProviderClient) login(ctx context.Context) error {
	u, err := url.Parse(c.BaseURL + "login")
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("username", c.Username)
	q.Set("password", c.Password)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Printf("[Provider] Request: POST %s (user=%s)", u.Path, c.Username)
	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		log.Printf("[Provider] Login failed: %v (duration: %v)", err, time.Since(start))
		return fmt.Errorf("%w: %v", analysis.ErrDataUnavailable, err)
	}
	defer resp.Body.Close()
	log.Printf("[Provider] Response: %d %s (duration: %v)", resp.StatusCode, resp.Status, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %v", analysis.ErrAuthentication, &ProviderError{
			StatusCode: resp.StatusCode,
			Code:       "LOGIN_FAILED",
			Message:    fmt.Sprintf("login returned status %d", resp.StatusCode),
		})
	}

	var body loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("%w: decoding login response: %v", analysis.ErrAuthentication, err)
	}
	if body.Token == "" {
		return fmt.Errorf("%w: login returned no token", analysis.ErrAuthentication)
	}
	c.token = body.Token
	return nil
}

// UserProfile fetches the account holder's profile.
func (c *ProviderClient) UserProfile(ctx context.Context) (model.Profile, error) {
	path := fmt.Sprintf("%s/users/%s", c.SubscriptionID, c.UserID)

	var profile model.Profile
	if err := c.getJSON(ctx, path, nil, &profile); err != nil {
		return model.Profile{}, err
	}
	if profile.FullName == "" {
		return model.Profile{}, fmt.Errorf("%w: profile has no name", analysis.ErrDataUnavailable)
	}
	return profile, nil
}

// Readings fetches measurements for the supply point over an inclusive
// date range and flattens them into engine readings. Implements
// analysis.ReadingSource.
func (c *ProviderClient) Readings(ctx context.Context, start, end time.Time) ([]model.Reading, error) {
	path := fmt.Sprintf("%s/sdps/%s/measurements", c.SubscriptionID, c.SdpID)
	query := url.Values{}
	query.Set("dayStart", start.Format("2006-01-02"))
	query.Set("dayEnd", end.Format("2006-01-02"))

	var groups []model.MeasurementGroup
	if err := c.getJSON(ctx, path, query, &groups); err != nil {
		return nil, err
	}

	readings := model.Readings(groups)
	log.Printf("[Provider] Success: %d readings (sdp=%s, start=%s, end=%s)",
		len(readings), c.SdpID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	return readings, nil
}

// ensureToken returns the cached bearer token, logging in first when
// none is held. Serialized on mu so concurrent requests share a single
// login instead of racing on the token.
func (c *ProviderClient) ensureToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token == "" {
		if err := c.login(ctx); err != nil {
			return "", err
		}
	}
	return c.token, nil
}

// invalidateToken drops the cached token, unless another request has
// already replaced the rejected one.
func (c *ProviderClient) invalidateToken(stale string) {
	c.mu.Lock()
	if c.token == stale {
		c.token = ""
	}
	c.mu.Unlock()
}

// getJSON performs an authenticated GET, logging in first if no token
// is held yet, and decodes the response body into out.
func (c *ProviderClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return err
	}

	u, err := url.Parse(c.BaseURL + path)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	log.Printf("[Provider] Request: GET %s", u.Path)
	start := time.Now()
	resp, err := c.Client.Do(req)
	if err != nil {
		log.Printf("[Provider] Request failed: %v (duration: %v)", err, time.Since(start))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()
	log.Printf("[Provider] Response: %d %s (duration: %v)", resp.StatusCode, resp.Status, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		// Success, continue
	case http.StatusUnauthorized, http.StatusForbidden:
		// Token expired or revoked mid-session.
		c.invalidateToken(token)
		return fmt.Errorf("%w: %v", analysis.ErrAuthentication, &ProviderError{
			StatusCode: resp.StatusCode,
			Code:       "UNAUTHORIZED",
			Message:    fmt.Sprintf("provider rejected token with status %d", resp.StatusCode),
		})
	default:
		return &ProviderError{
			StatusCode: resp.StatusCode,
			Code:       "API_ERROR",
			Message:    fmt.Sprintf("provider returned status %d: %s", resp.StatusCode, resp.Status),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
