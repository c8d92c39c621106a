// Package fetch retrieves raw forecast documents from Open-Meteo.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
)

const openMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

// Fetcher retrieves the document behind a URL. An empty string denotes any
// failure: transport error, timeout, non-2xx status, open circuit.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) string
}

// ForecastURL builds the upstream request for a coordinate pair: current
// conditions, hourly temperature, and a 16-day daily forecast window.
func ForecastURL(lat, lon float64) string {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("current", "temperature_2m,relative_humidity_2m,wind_speed_10m,wind_direction_10m,weather_code")
	values.Set("hourly", "temperature_2m")
	values.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_probability_max,weather_code")
	values.Set("forecast_days", "16")
	return fmt.Sprintf("%s?%s", openMeteoBaseURL, values.Encode())
}

// BackoffConfig controls exponential backoff behaviour.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// HTTPFetcher is a Fetcher backed by a shared HTTP client with retries,
// exponential backoff, and a circuit breaker.
type HTTPFetcher struct {
	client  *http.Client
	backoff BackoffConfig
	circuit *gobreaker.CircuitBreaker
}

// NewHTTPFetcher creates an HTTPFetcher with the default resilience settings.
func NewHTTPFetcher(client *http.Client) *HTTPFetcher {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &HTTPFetcher{
		client: client,
		backoff: BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		circuit: cb,
	}
}

var (
	errRateLimited = errors.New("rate limited")
	errServerError = errors.New("server error")
	errUnexpected  = errors.New("unexpected status code")
)

// Fetch retrieves the document body, retrying transient failures. All
// failure modes collapse to "" so that callers only distinguish empty from
// non-empty.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) string {
	body, err := f.do(ctx, rawURL)
	if err != nil {
		log.Printf("fetch: %s failed: %v", rawURL, err)
		return ""
	}
	return body
}

func (f *HTTPFetcher) do(ctx context.Context, rawURL string) (string, error) {
	if f.client == nil {
		return "", errors.New("http client not configured")
	}

	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return "", err
		}

		result, err := f.circuit.Execute(func() (interface{}, error) {
			resp, execErr := f.client.Do(req)
			if execErr != nil {
				return nil, execErr
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusTooManyRequests {
				return nil, errRateLimited
			}
			if resp.StatusCode >= 500 {
				return nil, errServerError
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
			}

			data, readErr := io.ReadAll(resp.Body)
			if readErr != nil {
				return nil, readErr
			}
			return string(data), nil
		})

		if err == nil {
			body, ok := result.(string)
			if !ok {
				return "", errors.New("unexpected result type from circuit breaker")
			}
			return body, nil
		}

		// If the circuit is open, propagate immediately.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", err
		}

		lastErr = err
		if attempt >= f.backoff.MaxRetries {
			return "", lastErr
		}

		delay := f.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > f.backoff.MaxInterval && f.backoff.MaxInterval > 0 {
			delay = f.backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}
