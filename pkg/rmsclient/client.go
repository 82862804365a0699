// Package rmsclient provides the main entry point for creating RMS API clients
package rmsclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/wifinity-io/rms-client/internal/client"
	"github.com/wifinity-io/rms-client/pkg/rms"
)

// DefaultBaseURL is the public RMS API endpoint used when the config does not
// name one.
const DefaultBaseURL = "https://rms.teltonika-networks.com/api"

// TokenEnvVar is the environment variable NewFromEnv reads the access token
// from.
const TokenEnvVar = "RMS_ACCESS_TOKEN"

// New creates a new RMS API client from the given config.
func New(config *rms.Config) (rms.Client, error) {
	if config == nil {
		config = &rms.Config{}
	}

	if config.AccessToken == "" {
		return nil, rms.ErrTokenRequired
	}

	config.BaseURL = normalizeBaseURL(config.BaseURL)

	rmsClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return rmsClient, nil
}

// NewWithToken creates a new client for the public RMS endpoint with an
// access token.
func NewWithToken(token string) (rms.Client, error) {
	return New(&rms.Config{
		AccessToken: token,
	})
}

// NewFromEnv creates a new client with the access token taken from the
// RMS_ACCESS_TOKEN environment variable.
func NewFromEnv() (rms.Client, error) {
	return New(&rms.Config{
		AccessToken: os.Getenv(TokenEnvVar),
	})
}

// normalizeBaseURL trims a trailing slash and defaults the scheme to https
// for bare hostnames. An empty URL falls back to the public endpoint.
func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
