//go:build integration
// +build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/wifinity-io/rms-client/pkg/rms"
	"github.com/wifinity-io/rms-client/pkg/rmsclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	BaseURL     string
	AccessToken string
	AllowWrites bool
	Verbose     bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		BaseURL:     os.Getenv("RMS_TEST_BASE_URL"),
		AccessToken: os.Getenv("RMS_TEST_TOKEN"),
		AllowWrites: os.Getenv("RMS_TEST_WRITE") == "true",
		Verbose:     os.Getenv("RMS_TEST_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if config.AccessToken == "" {
		t.Skip("RMS_TEST_TOKEN not set, skipping integration test")
	}
}

// SkipIfReadOnly skips tests that create or delete resources unless
// RMS_TEST_WRITE=true is set.
func (config *TestConfig) SkipIfReadOnly(t *testing.T) {
	if !config.AllowWrites {
		t.Skip("RMS_TEST_WRITE not set, skipping write test")
	}
}

// NewTestClient builds a client against the configured endpoint
func NewTestClient(t *testing.T, config *TestConfig) rms.Client {
	cfg := &rms.Config{
		BaseURL:     config.BaseURL,
		AccessToken: config.AccessToken,
		Debug:       config.Verbose,
	}
	if config.Verbose {
		cfg.Logger = testLogger{t: t}
	}

	client, err := rmsclient.New(cfg)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	return client
}

// GenerateTestName produces a unique name for test resources
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

type testLogger struct {
	t *testing.T
}

func (l testLogger) Debug(msg string, fields map[string]interface{}) { l.log("DEBUG", msg, fields) }
func (l testLogger) Info(msg string, fields map[string]interface{})  { l.log("INFO", msg, fields) }
func (l testLogger) Warn(msg string, fields map[string]interface{})  { l.log("WARN", msg, fields) }
func (l testLogger) Error(msg string, fields map[string]interface{}) { l.log("ERROR", msg, fields) }

func (l testLogger) log(level, msg string, fields map[string]interface{}) {
	l.t.Logf("[%s] %s %v", level, msg, fields)
}
