package translator

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// postJSON sends one POST with a JSON body and returns the response body of
// a 200 answer. Any other status becomes an *APIError.
func postJSON(ctx context.Context, client *http.Client, provider ProviderID, url string, headers map[string]string, payload []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %s request failed: %v", ErrTransport, provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s response: %v", ErrTransport, provider, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			Provider:   provider,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), maxErrorBody),
		}
	}
	return body, nil
}
