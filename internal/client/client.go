package client

import (
	"net/http"
)

// Client wraps an *http.Client used for the websocket upgrade request.
type Client struct {
	c *http.Client
}

type ClientConfig struct {
	Insecure bool
}

func NewClient(cfg ClientConfig) *Client {
	transport := &http.Transport{
		TLSClientConfig: buildTLSConfig(cfg.Insecure),
	}

	return &Client{
		c: &http.Client{
			Transport: transport,
		},
	}
}

// HTTPClient returns the underlying *http.Client.
func (c *Client) HTTPClient() *http.Client {
	return c.c
}
