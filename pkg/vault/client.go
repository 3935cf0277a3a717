package vault

import (
	"net/http"

	"github.com/hashicorp/go-hclog"
)

// Client is the entry point for the DocVault REST API. Operations are
// grouped by resource category; all of them share one Transport.
type Client struct {
	// Objects holds the object-level operations (create, checkout,
	// history, deleted state).
	Objects *ObjectOperations

	// Favorites holds the per-user favorites operations.
	Favorites *FavoriteOperations

	transport *Transport
}

type options struct {
	logger     hclog.Logger
	httpClient *http.Client
}

// Option customizes a Client or Transport at construction time.
type Option func(*options)

// WithLogger sets the logger used for request-level debug logging.
func WithLogger(logger hclog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithHTTPClient replaces the HTTP client built from the Config. The
// caller is then responsible for authentication and TLS settings.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// NewClient builds a Client for the server described by cfg.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	transport, err := NewTransport(cfg, opts...)
	if err != nil {
		return nil, err
	}

	return &Client{
		Objects:   &ObjectOperations{transport: transport},
		Favorites: &FavoriteOperations{transport: transport},
		transport: transport,
	}, nil
}

// Transport exposes the underlying transport, mainly for callers that
// need to issue requests outside the typed surface.
func (c *Client) Transport() *Transport {
	return c.transport
}
