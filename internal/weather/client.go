// Package weather fetches current conditions and a short forecast from
// the OpenWeatherMap API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the OpenWeatherMap data API root.
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// DefaultTimeout bounds each request.
const DefaultTimeout = 10 * time.Second

// APIKeyEnv names the environment variable holding the API key.
const APIKeyEnv = "OPENWEATHER_API_KEY"

// ErrNoAPIKey is returned when a client has no key to send.
var ErrNoAPIKey = errors.New("weather: no API key (set --api-key or " + APIKeyEnv + ")")

// Client is an OpenWeatherMap client. Requests use metric units and are
// not retried.
type Client struct {
	BaseURL string
	APIKey  string
	Lang    string
	HTTP    *http.Client
}

// NewClient creates a client with the default endpoint and timeout.
func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		APIKey:  apiKey,
		Lang:    "en",
		HTTP:    &http.Client{Timeout: DefaultTimeout},
	}
}

// StatusError is a non-200 response.
type StatusError struct {
	Endpoint string
	Code     int
	Message  string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("weather: %s: status %d: %s", e.Endpoint, e.Code, e.Message)
	}
	return fmt.Sprintf("weather: %s: status %d", e.Endpoint, e.Code)
}

// Current fetches the current conditions for a city.
func (c *Client) Current(ctx context.Context, city string) (*Current, error) {
	var out Current
	if err := c.get(ctx, "/weather", city, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Forecast fetches the 5-day forecast in 3-hour steps for a city.
func (c *Client) Forecast(ctx context.Context, city string) (*Forecast, error) {
	var out Forecast
	if err := c.get(ctx, "/forecast", city, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Report fetches both the current conditions and the forecast.
func (c *Client) Report(ctx context.Context, city string) (*Report, error) {
	cur, err := c.Current(ctx, city)
	if err != nil {
		return nil, err
	}
	fc, err := c.Forecast(ctx, city)
	if err != nil {
		return nil, err
	}
	return &Report{Current: *cur, Forecast: *fc}, nil
}

func (c *Client) get(ctx context.Context, endpoint, city string, out any) error {
	if c.APIKey == "" {
		return ErrNoAPIKey
	}
	if city == "" {
		return errors.New("weather: empty city name")
	}

	u, err := c.buildURL(endpoint, city)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("weather: %s: %w", endpoint, err)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather: %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&apiErr) //nolint:errcheck // Message is optional
		return &StatusError{Endpoint: endpoint, Code: resp.StatusCode, Message: apiErr.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("weather: %s: decode: %w", endpoint, err)
	}
	return nil
}

func (c *Client) buildURL(endpoint, city string) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base + endpoint)
	if err != nil {
		return "", fmt.Errorf("weather: bad base URL: %w", err)
	}

	q := u.Query()
	q.Set("appid", c.APIKey)
	q.Set("units", "metric")
	if c.Lang != "" {
		q.Set("lang", c.Lang)
	}
	q.Set("q", city)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
