// Package client implements the rms.Client interface on top of the HTTP
// engine in internal/http.
package client

import (
	"context"
	"fmt"

	"github.com/wifinity-io/rms-client/internal/auth"
	"github.com/wifinity-io/rms-client/internal/constants"
	"github.com/wifinity-io/rms-client/internal/http"
	"github.com/wifinity-io/rms-client/pkg/rms"
)

// Client implements the rms.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     rms.Logger

	companies      rms.CompaniesClient
	devices        rms.DevicesClient
	tags           rms.TagsClient
	deviceCommands rms.DeviceCommandsClient
}

// New creates a new RMS API client from a validated config.
func New(config *rms.Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, rms.ErrBaseURLRequired
	}

	tokenManager, err := auth.NewStaticTokenManager(config.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("configuring authentication: %w", err)
	}

	httpClient := http.NewClient(config.BaseURL, tokenManager, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients(config)

	return client, nil
}

// httpOptions builds HTTP engine options from config.
func httpOptions(config *rms.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryDisabled {
		opts = append(opts, http.WithRetryDisabled())

		return opts
	}

	retryMax := constants.DefaultRetryMax
	if config.RetryMax > 0 {
		retryMax = config.RetryMax
	}

	waitMin := constants.DefaultRetryWaitMin
	if config.RetryWaitMin > 0 {
		waitMin = config.RetryWaitMin
	}

	waitMax := constants.DefaultRetryWaitMax
	if config.RetryWaitMax > 0 {
		waitMax = config.RetryWaitMax
	}

	opts = append(opts, http.WithRetryConfig(retryMax, waitMin, waitMax))

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients(config *rms.Config) {
	pageSize := constants.DefaultPageSize
	if config != nil && config.PageSize > 0 {
		pageSize = config.PageSize
	}

	maxPages := constants.DefaultMaxPages
	if config != nil && config.MaxPages > 0 {
		maxPages = config.MaxPages
	}

	c.companies = NewCompaniesClient(c.httpClient, pageSize, maxPages)
	c.devices = NewDevicesClient(c.httpClient, pageSize, maxPages)
	c.tags = NewTagsClient(c.httpClient, pageSize, maxPages)
	c.deviceCommands = NewDeviceCommandsClient(c.httpClient)
}

// Companies implements rms.Client.Companies.
func (c *Client) Companies() rms.CompaniesClient {
	return c.companies
}

// Devices implements rms.Client.Devices.
func (c *Client) Devices() rms.DevicesClient {
	return c.devices
}

// Tags implements rms.Client.Tags.
func (c *Client) Tags() rms.TagsClient {
	return c.tags
}

// DeviceCommands implements rms.Client.DeviceCommands.
func (c *Client) DeviceCommands() rms.DeviceCommandsClient {
	return c.deviceCommands
}

// GetUser implements rms.Client.GetUser.
func (c *Client) GetUser(ctx context.Context) (*rms.User, error) {
	resp, err := c.httpClient.Get(ctx, "/user", nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	user, err := rms.UnwrapSingle[rms.User](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return user, nil
}

// loggerAdapter adapts rms.Logger to http.Logger.
type loggerAdapter struct {
	logger rms.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
