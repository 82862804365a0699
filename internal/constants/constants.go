package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for one HTTP attempt.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default number of retries after the first
	// attempt for network failures and 5xx responses.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the backoff before the first retry; it
	// doubles on each subsequent retry.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax caps the backoff delay.
	DefaultRetryWaitMax = 60 * time.Second
)

// Pagination limits.
const (
	// DefaultPageSize is the backend's default page size.
	DefaultPageSize = 100

	// DefaultMaxPages bounds pagination loops against a backend that
	// keeps returning full pages.
	DefaultMaxPages = 1000
)

// Logging limits.
const (
	// MaxLogBodyLength is the truncation point for logged bodies.
	MaxLogBodyLength = 1000
)

// Display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)
