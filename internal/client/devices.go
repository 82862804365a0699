package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/wifinity-io/rms-client/internal/http"
	"github.com/wifinity-io/rms-client/pkg/rms"
)

// deviceFilterFields is the allow-list of filters the devices endpoint
// accepts server-side. Anything else is rejected before a request is sent.
var deviceFilterFields = map[string]bool{
	"status":     true,
	"mac":        true,
	"model":      true,
	"company_id": true,
}

// DevicesClient implements rms.DevicesClient.
type DevicesClient struct {
	httpClient *http.Client
	pageSize   int
	maxPages   int
}

// NewDevicesClient creates a new devices client.
func NewDevicesClient(httpClient *http.Client, pageSize, maxPages int) *DevicesClient {
	return &DevicesClient{
		httpClient: httpClient,
		pageSize:   pageSize,
		maxPages:   maxPages,
	}
}

// List implements rms.DevicesClient.List.
func (c *DevicesClient) List(ctx context.Context, params *rms.QueryParams) (*rms.ListResponse[rms.Device], error) {
	path := "/devices"

	var queryParams url.Values

	if params != nil {
		if err := validateDeviceFilters(params.Filters); err != nil {
			return nil, err
		}

		queryParams = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, path, queryParams)
	if err != nil {
		return nil, fmt.Errorf("listing devices: %w", err)
	}

	var list rms.ListResponse[rms.Device]

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing devices list: %w", err)
	}

	return &list, nil
}

// ListAll implements rms.DevicesClient.ListAll.
func (c *DevicesClient) ListAll(ctx context.Context) ([]rms.Device, error) {
	params := rms.NewQueryParams().WithLimit(c.pageSize)

	return rms.CollectAll[rms.Device](ctx, c, params, rms.WithMaxPages(c.maxPages))
}

// Get implements rms.DevicesClient.Get.
func (c *DevicesClient) Get(ctx context.Context, id int) (*rms.Device, error) {
	path := "/devices/" + strconv.Itoa(id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting device: %w", err)
	}

	device, err := rms.UnwrapSingle[rms.Device](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing device: %w", err)
	}

	return device, nil
}

// GetByFilter implements rms.DevicesClient.GetByFilter. Exactly one device
// must match; zero matches return ErrNoMatch and two or more return
// ErrMultipleMatches so ambiguity never passes silently.
func (c *DevicesClient) GetByFilter(ctx context.Context, filters map[string]string) (*rms.Device, error) {
	if len(filters) == 0 {
		return nil, rms.ErrIDOrFilterRequired
	}

	devices, err := c.Filter(ctx, filters)
	if err != nil {
		return nil, err
	}

	switch len(devices) {
	case 0:
		return nil, fmt.Errorf("device matching %v: %w", filters, rms.ErrNoMatch)
	case 1:
		return &devices[0], nil
	default:
		return nil, fmt.Errorf("device matching %v: %w", filters, rms.ErrMultipleMatches)
	}
}

// Filter implements rms.DevicesClient.Filter. Filters are applied server-side
// across every page of the result.
func (c *DevicesClient) Filter(ctx context.Context, filters map[string]string) ([]rms.Device, error) {
	if err := validateDeviceFilters(filters); err != nil {
		return nil, err
	}

	params := rms.NewQueryParams().WithLimit(c.pageSize)
	for field, value := range filters {
		params.WithFilter(field, value)
	}

	devices, err := rms.CollectAll[rms.Device](ctx, c, params, rms.WithMaxPages(c.maxPages))
	if err != nil {
		return nil, fmt.Errorf("filtering devices: %w", err)
	}

	return devices, nil
}

// Create implements rms.DevicesClient.Create. Required fields depend on the
// device series: rut and tcr devices register by MAC, trb devices by IMEI.
func (c *DevicesClient) Create(ctx context.Context, request *rms.DeviceCreateRequest) (*rms.Device, error) {
	if err := validateDeviceCreate(request); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/devices", request)
	if err != nil {
		return nil, fmt.Errorf("creating device: %w", err)
	}

	device, err := rms.UnwrapSingle[rms.Device](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing device response: %w", err)
	}

	return device, nil
}

// Update implements rms.DevicesClient.Update.
func (c *DevicesClient) Update(ctx context.Context, id int, data map[string]any) (*rms.Device, error) {
	path := "/devices/" + strconv.Itoa(id)

	resp, err := c.httpClient.Put(ctx, path, data)
	if err != nil {
		return nil, fmt.Errorf("updating device: %w", err)
	}

	device, err := rms.UnwrapSingle[rms.Device](resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing device response: %w", err)
	}

	return device, nil
}

// Delete implements rms.DevicesClient.Delete.
func (c *DevicesClient) Delete(ctx context.Context, id int) error {
	path := "/devices/" + strconv.Itoa(id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting device: %w", err)
	}

	return nil
}

// SetMonitoring implements rms.DevicesClient.SetMonitoring.
func (c *DevicesClient) SetMonitoring(ctx context.Context, targets []rms.MonitoringTarget) (*rms.CommandResult, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("monitoring targets: %w", rms.ErrMissingField)
	}

	body := &rms.MonitoringRequest{Devices: targets}

	resp, err := c.httpClient.Put(ctx, "/devices/monitoring", body)
	if err != nil {
		return nil, fmt.Errorf("updating device monitoring: %w", err)
	}

	return parseCommandResult(resp.Body)
}

func validateDeviceFilters(filters map[string]string) error {
	var invalid []string

	for field := range filters {
		if !deviceFilterFields[field] {
			invalid = append(invalid, field)
		}
	}

	if len(invalid) > 0 {
		sort.Strings(invalid)

		return fmt.Errorf("%w: %s", rms.ErrInvalidFilter, strings.Join(invalid, ", "))
	}

	return nil
}

func validateDeviceCreate(request *rms.DeviceCreateRequest) error {
	var missing []string

	if request.CompanyID <= 0 {
		missing = append(missing, "company_id")
	}

	if request.DeviceSeries == "" {
		missing = append(missing, "device_series")
	}

	if request.Serial == "" {
		missing = append(missing, "serial")
	}

	if request.PasswordConfirmation == "" {
		missing = append(missing, "password_confirmation")
	}

	switch request.DeviceSeries {
	case rms.DeviceSeriesRUT, rms.DeviceSeriesTCR:
		if request.MAC == "" {
			missing = append(missing, "mac")
		}
	case rms.DeviceSeriesTRB:
		if request.IMEI == "" {
			missing = append(missing, "imei")
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", rms.ErrMissingField, strings.Join(missing, ", "))
	}

	return nil
}
