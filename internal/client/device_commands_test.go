package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/wifinity-io/rms-client/internal/http"
	"github.com/wifinity-io/rms-client/pkg/rms"
)

func newTestDeviceCommandsClient(serverURL string) *DeviceCommandsClient {
	return NewDeviceCommandsClient(internalhttp.NewClient(serverURL, nil))
}

func TestDeviceCommandsClient_Execute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/devices/7/command", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var command rms.DeviceCommand
		require.NoError(t, json.NewDecoder(r.Body).Decode(&command))
		assert.Equal(t, "reboot", command.Command)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "data": {"task_id": 1001}}`))
	}))
	defer server.Close()

	commands := newTestDeviceCommandsClient(server.URL)

	result, err := commands.Execute(context.Background(), 7, &rms.DeviceCommand{Command: "reboot"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Data)
}

func TestDeviceCommandsClient_Execute_EmptyCommand(t *testing.T) {
	commands := newTestDeviceCommandsClient("http://unused.invalid")

	_, err := commands.Execute(context.Background(), 7, &rms.DeviceCommand{})
	require.ErrorIs(t, err, rms.ErrMissingField)
}

func TestDeviceCommandsClient_ExecuteAction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/devices/actions", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var action rms.DeviceAction
		require.NoError(t, json.NewDecoder(r.Body).Decode(&action))
		assert.Equal(t, "firmware_update", action.Action)
		assert.Equal(t, []int{1, 2, 3}, action.DeviceIDs)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	commands := newTestDeviceCommandsClient(server.URL)

	result, err := commands.ExecuteAction(context.Background(), &rms.DeviceAction{
		Action:    "firmware_update",
		DeviceIDs: []int{1, 2, 3},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestDeviceCommandsClient_ExecuteAction_NoTarget(t *testing.T) {
	commands := newTestDeviceCommandsClient("http://unused.invalid")

	_, err := commands.ExecuteAction(context.Background(), &rms.DeviceAction{Action: "reboot"})
	require.ErrorIs(t, err, rms.ErrIDOrFilterRequired)
}

func TestDeviceCommandsClient_CancelActions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/devices/actions/cancel", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string][]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []int{4, 5}, body["devices"])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	commands := newTestDeviceCommandsClient(server.URL)

	result, err := commands.CancelActions(context.Background(), []int{4, 5})
	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestDeviceCommandsClient_ActionLogs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/devices/actions/logs", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("device_id"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		response := rms.ListResponse[rms.ActionLog]{
			Data: []rms.ActionLog{
				{ID: 1, DeviceID: 7, Action: "reboot", Status: "completed"},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	commands := newTestDeviceCommandsClient(server.URL)

	deviceID := 7
	logs, err := commands.ActionLogs(context.Background(), &rms.ActionLogParams{
		DeviceID: &deviceID,
		Limit:    10,
	})
	require.NoError(t, err)
	require.Len(t, logs.Data, 1)
	assert.Equal(t, "completed", logs.Data[0].Status)
}

func TestDeviceCommandsClient_ActionLogs_Unscoped(t *testing.T) {
	commands := newTestDeviceCommandsClient("http://unused.invalid")

	_, err := commands.ActionLogs(context.Background(), &rms.ActionLogParams{})
	require.ErrorIs(t, err, rms.ErrIDOrFilterRequired)

	_, err = commands.ActionLogs(context.Background(), nil)
	require.ErrorIs(t, err, rms.ErrIDOrFilterRequired)
}
