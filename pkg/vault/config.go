package vault

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/oauth2"
)

// Config contains the static configuration for a Client.
type Config struct {
	// BaseURL is the base URL of the DocVault server, without the /REST
	// prefix. Example: "https://vault.example.com"
	BaseURL string `yaml:"base_url" json:"baseUrl"`

	// AuthToken is the bearer token used for authentication.
	AuthToken string `yaml:"auth_token" json:"-"` // never serialized

	// TLSVerify controls TLS certificate verification. Set to false only
	// for development against self-signed certificates.
	TLSVerify *bool `yaml:"tls_verify,omitempty" json:"tlsVerify,omitempty"`

	// Timeout applies to each HTTP request. Default: 30 seconds.
	Timeout time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`

	// MaxRetries is how many times the transport retries a request that
	// failed with a connection error or a 5xx response. Default: 3.
	MaxRetries int `yaml:"max_retries,omitempty" json:"maxRetries,omitempty"`

	// RetryInterval is the initial backoff between retries; subsequent
	// waits grow exponentially. Default: 1 second.
	RetryInterval time.Duration `yaml:"retry_interval,omitempty" json:"retryInterval,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		TLSVerify:     &tlsVerify,
		Timeout:       30 * time.Second,
		MaxRetries:    3,
		RetryInterval: 1 * time.Second,
	}
}

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(checkHTTPURL)),
		validation.Field(&c.AuthToken, validation.Required),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&c.MaxRetries, validation.Min(0)),
		validation.Field(&c.RetryInterval, validation.Min(time.Duration(0))),
	)
}

func checkHTTPURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("must be a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("must include a host")
	}
	return nil
}

// NewHTTPClient creates the configured HTTP client. Bearer authentication
// is applied by an oauth2.Transport wrapping the connection transport.
func (c *Config) NewHTTPClient() *http.Client {
	base := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	if c.TLSVerify != nil && !*c.TLSVerify {
		base.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout: c.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.AuthToken}),
			Base:   base,
		},
	}
}
