// Package external holds the HTTP clients for third-party directory and banner services.
package external

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	deliverycontext "estatex/internal/delivery/context"

	"github.com/pkg/errors"
)

const (
	maxErrorBody    = 512
	maxResponseBody = 1 << 20
)

// getJSON issues a GET and decodes a 2xx JSON body into dest.
func getJSON(ctx context.Context, client *http.Client, url string, header http.Header, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.WithStack(err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "GET %s", req.URL.Redacted())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return errors.Errorf("GET %s returned %d: %s", req.URL.Redacted(), resp.StatusCode, body)
	}

	// A body past the limit is cut short and fails to decode.
	body := io.LimitReader(resp.Body, maxResponseBody)

	return errors.Wrapf(json.NewDecoder(body).Decode(dest), "decode %s", req.URL.Redacted())
}
