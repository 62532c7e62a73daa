package api

import "context"

// Health returns the backend health report.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	var h Health
	if err := c.Get(ctx, "/health", &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// Stats returns the server-computed aggregate counts.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	if err := c.Get(ctx, "/stats", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
