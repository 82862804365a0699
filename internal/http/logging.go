package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/wifinity-io/rms-client/internal/constants"
)

// Header names whose values are masked before logging.
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// MaskHeaders copies headers with sensitive values replaced. Bearer values
// keep their scheme so logs stay readable without leaking the token.
func MaskHeaders(header http.Header) map[string]string {
	masked := make(map[string]string, len(header))

	for name, values := range header {
		value := strings.Join(values, ", ")

		if sensitiveHeaders[strings.ToLower(name)] {
			if strings.HasPrefix(value, "Bearer ") {
				masked[name] = "Bearer " + constants.MaskedSecret
			} else {
				masked[name] = constants.MaskedSecret
			}

			continue
		}

		masked[name] = value
	}

	return masked
}

// truncateBody renders a body for logging, cutting it at MaxLogBodyLength.
func truncateBody(body []byte) string {
	if len(body) == 0 {
		return "<empty>"
	}

	if len(body) > constants.MaxLogBodyLength {
		return fmt.Sprintf("%s... (truncated, %d bytes total)", body[:constants.MaxLogBodyLength], len(body))
	}

	return string(body)
}

func (c *Client) logRequest(method, fullURL string, header http.Header, body []byte) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method":  method,
		"url":     fullURL,
		"headers": MaskHeaders(header),
		"body":    truncateBody(body),
	})
}

func (c *Client) logResponse(method, fullURL string, resp *Response) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":  method,
		"url":     fullURL,
		"status":  resp.StatusCode,
		"headers": MaskHeaders(resp.Headers),
		"body":    truncateBody(resp.Body),
	})
}

func (c *Client) logError(method, fullURL string, err error) {
	if c.logger == nil {
		return
	}

	c.logger.Error("HTTP request failed", map[string]interface{}{
		"method": method,
		"url":    fullURL,
		"error":  err.Error(),
	})
}
