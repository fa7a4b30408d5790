package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessEventType names an outcome of the invitation access flow.
type AccessEventType string

const (
	AccessEventGranted            AccessEventType = "granted"
	AccessEventIdentityCaptured   AccessEventType = "identity_captured"
	AccessEventDeviceRegistered   AccessEventType = "device_registered"
	AccessEventIdentityMismatch   AccessEventType = "identity_mismatch"
	AccessEventDeviceLimitReached AccessEventType = "device_limit_reached"
	AccessEventTokenInvalid       AccessEventType = "token_invalid"
	AccessEventTokenRegenerated   AccessEventType = "token_regenerated"
	AccessEventDevicesCleared     AccessEventType = "devices_cleared"
	AccessEventQuotaChanged       AccessEventType = "quota_changed"
)

// IsValid checks if the event type is known.
func (t AccessEventType) IsValid() bool {
	switch t {
	case AccessEventGranted, AccessEventIdentityCaptured, AccessEventDeviceRegistered,
		AccessEventIdentityMismatch, AccessEventDeviceLimitReached, AccessEventTokenInvalid,
		AccessEventTokenRegenerated, AccessEventDevicesCleared, AccessEventQuotaChanged:
		return true
	default:
		return false
	}
}

// AccessEvent is an audit record of something that happened to a guest's access.
type AccessEvent struct {
	ID          uuid.UUID       `json:"id"`
	GuestID     uuid.UUID       `json:"guest_id"`
	Type        AccessEventType `json:"type"`
	Fingerprint string          `json:"fingerprint,omitempty"`
	Detail      string          `json:"detail,omitempty"`
	RequestID   string          `json:"request_id,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
}
