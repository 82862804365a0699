package rms

import (
	"encoding/json"
	"time"
)

// Meta carries pagination information on list responses. Total is a pointer
// because not every endpoint reports it.
type Meta struct {
	Total  *int `json:"total,omitempty"  yaml:"total,omitempty"`
	Limit  int  `json:"limit,omitempty"  yaml:"limit,omitempty"`
	Offset int  `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// ListResponse represents a paginated list response envelope.
type ListResponse[T any] struct {
	Data []T  `json:"data" yaml:"data"`
	Meta Meta `json:"meta" yaml:"meta"`
}

// SingleResponse represents a single-entity envelope. Some endpoints return
// the entity bare, others wrap it under "data"; UnwrapSingle handles both.
type SingleResponse[T any] struct {
	Data T `json:"data" yaml:"data"`
}

// UnwrapSingle decodes a single-entity response body, accepting both the
// bare entity and the {"data": {...}} wrapped form. For wrapped list bodies
// holding a single element, the first element is returned.
func UnwrapSingle[T any](body []byte) (*T, error) {
	var probe struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(body, &probe); err == nil && len(probe.Data) > 0 {
		if probe.Data[0] == '[' {
			var list []T
			if err := json.Unmarshal(probe.Data, &list); err == nil && len(list) > 0 {
				return &list[0], nil
			}
		}

		var wrapped T
		if err := json.Unmarshal(probe.Data, &wrapped); err == nil {
			return &wrapped, nil
		}
	}

	var entity T
	if err := json.Unmarshal(body, &entity); err != nil {
		return nil, err
	}

	return &entity, nil
}

// Company represents an RMS company.
type Company struct {
	ID        int        `json:"id"                   yaml:"id"`
	Name      string     `json:"name"                 yaml:"name"`
	ParentID  *int       `json:"parent_id,omitempty"  yaml:"parent_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// DeviceStatus is the connectivity state reported for a device.
type DeviceStatus string

// Device statuses accepted by the devices filter.
const (
	DeviceStatusOnline       DeviceStatus = "online"
	DeviceStatusOffline      DeviceStatus = "offline"
	DeviceStatusNotActivated DeviceStatus = "not_activated"
)

// DeviceSeries is the hardware series a device belongs to.
type DeviceSeries string

// Device series known to the registration endpoint.
const (
	DeviceSeriesRUT DeviceSeries = "rut"
	DeviceSeriesTRB DeviceSeries = "trb"
	DeviceSeriesTCR DeviceSeries = "tcr"
	DeviceSeriesTAP DeviceSeries = "tap"
	DeviceSeriesOTD DeviceSeries = "otd"
	DeviceSeriesSWM DeviceSeries = "swm"
)

// Device represents an RMS device.
type Device struct {
	ID          int          `json:"id"                     yaml:"id"`
	Name        string       `json:"name,omitempty"         yaml:"name,omitempty"`
	Serial      string       `json:"serial,omitempty"       yaml:"serial,omitempty"`
	MAC         string       `json:"mac,omitempty"          yaml:"mac,omitempty"`
	IMEI        string       `json:"imei,omitempty"         yaml:"imei,omitempty"`
	Model       string       `json:"model,omitempty"        yaml:"model,omitempty"`
	Status      DeviceStatus `json:"status,omitempty"       yaml:"status,omitempty"`
	CompanyID   int          `json:"company_id,omitempty"   yaml:"company_id,omitempty"`
	Monitoring  *bool        `json:"monitoring,omitempty"   yaml:"monitoring,omitempty"`
	LastSeenAt  *time.Time   `json:"last_seen_at,omitempty" yaml:"last_seen_at,omitempty"`
	CreatedAt   *time.Time   `json:"created_at,omitempty"   yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty"   yaml:"updated_at,omitempty"`
	Firmware    string       `json:"firmware,omitempty"     yaml:"firmware,omitempty"`
	Description string       `json:"description,omitempty"  yaml:"description,omitempty"`
}

// DeviceCreateRequest is the payload for registering a new device.
// CompanyID, DeviceSeries, Serial and PasswordConfirmation are always
// required; MAC is required for the rut/tcr series, IMEI for trb. The
// requirements mirror the backend's rules and are checked client-side as a
// convenience only.
type DeviceCreateRequest struct {
	CompanyID            int          `json:"company_id"`
	DeviceSeries         DeviceSeries `json:"device_series"`
	Serial               string       `json:"serial"`
	PasswordConfirmation string       `json:"password_confirmation"`
	Name                 string       `json:"name,omitempty"`
	MAC                  string       `json:"mac,omitempty"`
	IMEI                 string       `json:"imei,omitempty"`
	Description          string       `json:"description,omitempty"`
	AutoCredit           *bool        `json:"auto_credit,omitempty"`
}

// MonitoringTarget names a device in a bulk monitoring update.
type MonitoringTarget struct {
	ID         int  `json:"id"`
	Monitoring bool `json:"monitoring"`
}

// MonitoringRequest is the payload for PUT /devices/monitoring.
type MonitoringRequest struct {
	Devices []MonitoringTarget `json:"devices"`
}

// Tag represents an RMS tag.
type Tag struct {
	ID        int        `json:"id"                   yaml:"id"`
	Name      string     `json:"name"                 yaml:"name"`
	CompanyID int        `json:"company_id,omitempty" yaml:"company_id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// User represents the authenticated RMS account.
type User struct {
	ID        int    `json:"id"                   yaml:"id"`
	Username  string `json:"username,omitempty"   yaml:"username,omitempty"`
	Email     string `json:"email,omitempty"      yaml:"email,omitempty"`
	CompanyID int    `json:"company_id,omitempty" yaml:"company_id,omitempty"`
}

// DeviceCommand is the payload for executing a command on a single device.
type DeviceCommand struct {
	Command    string         `json:"command"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// DeviceAction is the payload for a bulk action across a device list.
type DeviceAction struct {
	Action    string `json:"action"`
	DeviceIDs []int  `json:"devices,omitempty"`
	TagID     *int   `json:"tag_id,omitempty"`
}

// ActionLog is one entry returned by the device action log endpoint.
type ActionLog struct {
	ID        int        `json:"id"                   yaml:"id"`
	DeviceID  int        `json:"device_id,omitempty"  yaml:"device_id,omitempty"`
	Action    string     `json:"action,omitempty"     yaml:"action,omitempty"`
	Status    string     `json:"status,omitempty"     yaml:"status,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// CommandResult is the acknowledgement returned by command and action
// endpoints.
type CommandResult struct {
	Success bool            `json:"success,omitempty" yaml:"success,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"    yaml:"data,omitempty"`
	Meta    *Meta           `json:"meta,omitempty"    yaml:"meta,omitempty"`
}
