package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/wifinity-io/rms-client/internal/constants"
	"github.com/wifinity-io/rms-client/pkg/rms"
	"github.com/wifinity-io/rms-client/pkg/rmsclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	defaultJSONIndent = 2
)

// CreateClient builds an RMS client from the effective configuration: flags
// override environment variables, which override the config file.
func CreateClient() (rms.Client, error) {
	config := loadConfig()

	client, err := rmsclient.New(&rms.Config{
		BaseURL:     config.API,
		AccessToken: config.Token,
		Debug:       viper.GetBool("verbose"),
		Logger:      newStderrLogger(viper.GetBool("verbose")),
	})
	if err != nil {
		return nil, fmt.Errorf("creating RMS client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer encodes data as indented JSON on stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML on stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultJSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// formatTime renders an optional timestamp for table output.
func formatTime(t *time.Time) string {
	if t == nil {
		return constants.NotAvailable
	}

	return t.Format("2006-01-02 15:04")
}

// stderrLogger writes structured debug output to stderr when verbose mode is
// on. It satisfies rms.Logger.
type stderrLogger struct {
	verbose bool
}

func newStderrLogger(verbose bool) rms.Logger {
	return &stderrLogger{verbose: verbose}
}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	if !l.verbose {
		return
	}

	fmt.Fprintf(os.Stderr, "[%s] %s", level, msg)

	for key, value := range fields {
		fmt.Fprintf(os.Stderr, " %s=%v", key, value)
	}

	fmt.Fprintln(os.Stderr)
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}
