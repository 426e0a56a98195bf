package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Revalidator tells the presentation layer that the cached view for a path is
// stale and should be rebuilt.
type Revalidator interface {
	Revalidate(ctx context.Context, path string) error
}

// Webhook POSTs the stale path to a frontend revalidation endpoint.
type Webhook struct {
	endpoint string
	client   *http.Client
}

// NewWebhook creates a Webhook revalidator for the given endpoint
func NewWebhook(endpoint string) *Webhook {
	return &Webhook{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (w *Webhook) Revalidate(ctx context.Context, path string) error {
	body, err := json.Marshal(map[string]string{"path": path})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("revalidate webhook returned %s", resp.Status)
	}
	return nil
}

// Noop is used when no revalidation endpoint is configured.
type Noop struct{}

func (Noop) Revalidate(context.Context, string) error { return nil }
