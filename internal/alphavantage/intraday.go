package alphavantage

import (
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
)

// maxBodyBytes caps how much of an upstream reply is read.
const maxBodyBytes = 8 << 20

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.StatusCode)
}

// Intraday fetches the intraday series for symbol and classifies the reply.
func (c *Client) Intraday(ctx context.Context, apiKey, symbol string) (Response, error) {
	query := maps.Clone(c.query)
	query.Set("function", "TIME_SERIES_INTRADAY")
	query.Set("symbol", symbol)
	query.Set("interval", c.interval)
	query.Set("apikey", apiKey)

	url := fmt.Sprintf("%s?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return Decode(body, c.interval)
}
