// README: Thin HTTP client for the aviationstack flights endpoint.
package flight

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrUpstreamTimeout = errors.New("flight API request timed out")
	ErrUpstream        = errors.New("flight API request failed")
)

// Client queries the upstream flights API. The caller owns filtering; the
// client only fetches raw bytes so the passthrough endpoint can echo them
// verbatim.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves flights between two IATA codes, optionally filtered by
// airline name upstream. Timeouts and transport failures map onto the two
// sentinel errors so handlers can pick 504 versus 502.
func (c *Client) Fetch(ctx context.Context, source, destination, airline string) ([]byte, error) {
	q := url.Values{}
	q.Set("access_key", c.apiKey)
	q.Set("dep_iata", source)
	q.Set("arr_iata", destination)
	if airline != "" {
		q.Set("airline_name", airline)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/flights?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrUpstreamTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrUpstream, err)
	}
	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
