package smoke

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/okian/laneboard/internal/domain/model"
)

// client is a thin HTTP wrapper over the board API.
type client struct {
	base string
	http *http.Client
}

func newClient(cfg *Config) *client {
	return &client{
		base: cfg.BaseURL,
		http: &http.Client{Timeout: cfg.Timeout},
	}
}

// health confirms the service answers before the run starts.
func (c *client) health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("building health request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("service unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected health status %d", resp.StatusCode)
	}
	return nil
}

// board fetches the full client list.
func (c *client) board(ctx context.Context) ([]model.Client, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/clients", nil)
	if err != nil {
		return nil, fmt.Errorf("building list request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected list status %d", resp.StatusCode)
	}
	var clients []model.Client
	if err := json.NewDecoder(resp.Body).Decode(&clients); err != nil {
		return nil, fmt.Errorf("decoding client list: %w", err)
	}
	return clients, nil
}

// submit issues one move and returns the updated board.
func (c *client) submit(ctx context.Context, m move) ([]model.Client, error) {
	body := map[string]any{}
	if m.Lane != nil {
		body["lane"] = string(*m.Lane)
	}
	if m.Priority != nil {
		body["priority"] = *m.Priority
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding move: %w", err)
	}

	url := fmt.Sprintf("%s/clients/%d", c.base, m.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building move request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submitting move: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("move rejected with status %d: %s", resp.StatusCode, detail)
	}
	var clients []model.Client
	if err := json.NewDecoder(resp.Body).Decode(&clients); err != nil {
		return nil, fmt.Errorf("decoding move response: %w", err)
	}
	return clients, nil
}
