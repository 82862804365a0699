package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	rmshttp "github.com/wifinity-io/rms-client/internal/http"
)

func TestMaskHeaders(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Set("Authorization", "Bearer super-secret-token")
	header.Set("X-Api-Key", "key-value")
	header.Set("Cookie", "session=abc")
	header.Set("Content-Type", "application/json")

	masked := rmshttp.MaskHeaders(header)

	assert.Equal(t, "Bearer ***", masked["Authorization"])
	assert.Equal(t, "***", masked["X-Api-Key"])
	assert.Equal(t, "***", masked["Cookie"])
	assert.Equal(t, "application/json", masked["Content-Type"])
}

func TestMaskHeaders_NonBearerAuthorization(t *testing.T) {
	t.Parallel()

	header := http.Header{}
	header.Set("Authorization", "Basic dXNlcjpwYXNz")

	masked := rmshttp.MaskHeaders(header)

	assert.Equal(t, "***", masked["Authorization"])
}
