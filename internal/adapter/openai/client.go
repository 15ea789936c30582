package openai

import "net/http"

// Client talks to a DALL-E compatible image endpoint. The base URL is the
// full endpoint; nothing is appended to it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    baseURL,
		token:      token,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
