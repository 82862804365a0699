package rms

import (
	"context"
	"time"
)

// CompaniesClient manages company resources.
type CompaniesClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Company], error)
	ListAll(ctx context.Context) ([]Company, error)
	Get(ctx context.Context, id int) (*Company, error)
	GetByName(ctx context.Context, name string) (*Company, error)
	Filter(ctx context.Context, filters map[string]string) ([]Company, error)
	Create(ctx context.Context, name string, parentID int, extra map[string]any) (*Company, error)
	Update(ctx context.Context, id int, data map[string]any) (*Company, error)
	Delete(ctx context.Context, id int) error
}

// DevicesClient manages device resources.
type DevicesClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Device], error)
	ListAll(ctx context.Context) ([]Device, error)
	Get(ctx context.Context, id int) (*Device, error)
	GetByFilter(ctx context.Context, filters map[string]string) (*Device, error)
	Filter(ctx context.Context, filters map[string]string) ([]Device, error)
	Create(ctx context.Context, request *DeviceCreateRequest) (*Device, error)
	Update(ctx context.Context, id int, data map[string]any) (*Device, error)
	Delete(ctx context.Context, id int) error
	SetMonitoring(ctx context.Context, targets []MonitoringTarget) (*CommandResult, error)
}

// TagsClient manages tag resources.
type TagsClient interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[Tag], error)
	ListAll(ctx context.Context) ([]Tag, error)
	Get(ctx context.Context, id int) (*Tag, error)
	Create(ctx context.Context, name string, extra map[string]any) (*Tag, error)
	Update(ctx context.Context, id int, data map[string]any) (*Tag, error)
	Delete(ctx context.Context, id int) error
}

// DeviceCommandsClient executes commands and bulk actions on devices.
type DeviceCommandsClient interface {
	Execute(ctx context.Context, deviceID int, command *DeviceCommand) (*CommandResult, error)
	ExecuteAction(ctx context.Context, action *DeviceAction) (*CommandResult, error)
	CancelActions(ctx context.Context, deviceIDs []int) (*CommandResult, error)
	ActionLogs(ctx context.Context, params *ActionLogParams) (*ListResponse[ActionLog], error)
}

// ActionLogParams filters the device action log endpoint. DeviceID or TagID
// must be set; the backend rejects unscoped log queries.
type ActionLogParams struct {
	DeviceID *int
	TagID    *int
	Limit    int
	Offset   int
}

// Client is the top-level RMS API client.
type Client interface {
	Companies() CompaniesClient
	Devices() DevicesClient
	Tags() TagsClient
	DeviceCommands() DeviceCommandsClient

	// GetUser returns the authenticated account.
	GetUser(ctx context.Context) (*User, error)
}

// Logger is the structured logging interface the HTTP layer writes to.
// Implementations adapt it to whatever logging library the host application
// uses; a nil logger disables logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration. It is read-only after the client
// is constructed; concurrent calls share no other state.
type Config struct {
	// BaseURL: base URL for the RMS API. rmsclient.New normalizes it by
	// trimming a trailing slash and adding "https://" if no scheme is
	// present. Defaults to the public RMS endpoint.
	BaseURL string

	// AccessToken: personal access token sent as a Bearer value on every
	// request. Required.
	AccessToken string

	// HTTPTimeout bounds each individual transport attempt, not the whole
	// retry sequence. Callers needing an overall deadline should use the
	// context they pass to client methods.
	HTTPTimeout time.Duration

	// RetryDisabled turns retries off entirely: exactly one attempt per
	// call, no backoff.
	RetryDisabled bool
	// RetryMax: maximum number of retries after the first attempt for
	// network failures and 5xx responses. If 0, a default is used.
	RetryMax int
	// RetryWaitMin: backoff before the first retry; doubles each retry.
	RetryWaitMin time.Duration
	// RetryWaitMax: cap on the backoff delay.
	RetryWaitMax time.Duration

	// PageSize: items requested per page by ListAll and iterators.
	PageSize int
	// MaxPages bounds pagination loops against a misbehaving backend.
	MaxPages int

	// Debug enables request/response logging when a Logger is provided.
	// The bearer token is masked before any header is logged.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
