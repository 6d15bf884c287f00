package client

import (
	"context"
	"time"
)

// PingStatus reports connectivity and version details from one API's ping
// endpoint.
type PingStatus struct {
	Version        string
	Status         string
	ActiveNode     string
	HA             bool
	DBConnected    bool
	ProxyConnected bool
	ResponseTime   time.Duration
}

type pingResponse struct {
	Version        string `json:"version"`
	Status         string `json:"status"`
	ActiveNode     string `json:"active_node"`
	HA             bool   `json:"ha"`
	DBConnected    bool   `json:"db_connected"`
	ProxyConnected bool   `json:"proxy_connected"`
}

// Ping hits the given backend's ping endpoint and measures the round trip.
func (c *Client) Ping(ctx context.Context, b Backend) (PingStatus, error) {
	var resp pingResponse
	start := time.Now()
	if err := c.do(ctx, "GET", b.basePath()+"ping/", nil, nil, &resp); err != nil {
		return PingStatus{}, err
	}
	return PingStatus{
		Version:        resp.Version,
		Status:         resp.Status,
		ActiveNode:     resp.ActiveNode,
		HA:             resp.HA,
		DBConnected:    resp.DBConnected,
		ProxyConnected: resp.ProxyConnected,
		ResponseTime:   time.Since(start),
	}, nil
}

// Me returns the record of the authenticated user. The identity API wraps
// the current user in a single-element paginated envelope.
func (c *Client) Me(ctx context.Context) (Record, error) {
	var pg page
	if err := c.do(ctx, "GET", Gateway.basePath()+"me/", nil, nil, &pg); err != nil {
		return nil, err
	}
	if len(pg.Results) == 0 {
		return nil, &Error{Kind: KindUnexpected, Message: "no user data returned from API"}
	}
	return pg.Results[0], nil
}

// CreateToken obtains a personal access token from the identity API using
// the client's current credentials.
func (c *Client) CreateToken(ctx context.Context, description string) (string, error) {
	body := map[string]any{"description": description}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, "POST", Gateway.basePath()+"tokens/", nil, body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &Error{Kind: KindUnexpected, Message: "token missing from API response"}
	}
	return resp.Token, nil
}
