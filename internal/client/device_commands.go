package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/wifinity-io/rms-client/internal/http"
	"github.com/wifinity-io/rms-client/pkg/rms"
)

// DeviceCommandsClient implements rms.DeviceCommandsClient.
type DeviceCommandsClient struct {
	httpClient *http.Client
}

// NewDeviceCommandsClient creates a new device commands client.
func NewDeviceCommandsClient(httpClient *http.Client) *DeviceCommandsClient {
	return &DeviceCommandsClient{
		httpClient: httpClient,
	}
}

// Execute implements rms.DeviceCommandsClient.Execute.
func (c *DeviceCommandsClient) Execute(ctx context.Context, deviceID int, command *rms.DeviceCommand) (*rms.CommandResult, error) {
	if command == nil || command.Command == "" {
		return nil, fmt.Errorf("command: %w", rms.ErrMissingField)
	}

	path := "/devices/" + strconv.Itoa(deviceID) + "/command"

	resp, err := c.httpClient.Post(ctx, path, command)
	if err != nil {
		return nil, fmt.Errorf("executing device command: %w", err)
	}

	return parseCommandResult(resp.Body)
}

// ExecuteAction implements rms.DeviceCommandsClient.ExecuteAction. An action
// must target either an explicit device list or a tag.
func (c *DeviceCommandsClient) ExecuteAction(ctx context.Context, action *rms.DeviceAction) (*rms.CommandResult, error) {
	if action == nil || action.Action == "" {
		return nil, fmt.Errorf("action: %w", rms.ErrMissingField)
	}

	if len(action.DeviceIDs) == 0 && action.TagID == nil {
		return nil, rms.ErrIDOrFilterRequired
	}

	resp, err := c.httpClient.Post(ctx, "/devices/actions", action)
	if err != nil {
		return nil, fmt.Errorf("executing device action: %w", err)
	}

	return parseCommandResult(resp.Body)
}

// CancelActions implements rms.DeviceCommandsClient.CancelActions.
func (c *DeviceCommandsClient) CancelActions(ctx context.Context, deviceIDs []int) (*rms.CommandResult, error) {
	if len(deviceIDs) == 0 {
		return nil, fmt.Errorf("device ids: %w", rms.ErrMissingField)
	}

	body := map[string]any{"devices": deviceIDs}

	resp, err := c.httpClient.Post(ctx, "/devices/actions/cancel", body)
	if err != nil {
		return nil, fmt.Errorf("canceling device actions: %w", err)
	}

	return parseCommandResult(resp.Body)
}

// ActionLogs implements rms.DeviceCommandsClient.ActionLogs. The backend
// rejects unscoped queries, so a device or tag must be named.
func (c *DeviceCommandsClient) ActionLogs(ctx context.Context, params *rms.ActionLogParams) (*rms.ListResponse[rms.ActionLog], error) {
	if params == nil || (params.DeviceID == nil && params.TagID == nil) {
		return nil, rms.ErrIDOrFilterRequired
	}

	queryParams := url.Values{}
	if params.DeviceID != nil {
		queryParams.Set("device_id", strconv.Itoa(*params.DeviceID))
	}

	if params.TagID != nil {
		queryParams.Set("tag_id", strconv.Itoa(*params.TagID))
	}

	if params.Limit > 0 {
		queryParams.Set("limit", strconv.Itoa(params.Limit))
	}

	if params.Offset > 0 {
		queryParams.Set("offset", strconv.Itoa(params.Offset))
	}

	resp, err := c.httpClient.Get(ctx, "/devices/actions/logs", queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing action logs: %w", err)
	}

	var list rms.ListResponse[rms.ActionLog]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing action logs: %w", err)
	}

	return &list, nil
}

func parseCommandResult(body []byte) (*rms.CommandResult, error) {
	if len(body) == 0 {
		return &rms.CommandResult{Success: true}, nil
	}

	var result rms.CommandResult

	err := json.Unmarshal(body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing command response: %w", err)
	}

	return &result, nil
}
