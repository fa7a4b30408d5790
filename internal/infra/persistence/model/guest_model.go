package model

import (
	"time"

	"github.com/google/uuid"
)

// GuestModel is the GORM-specific struct for the 'guests' table.
type GuestModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Token             string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_guests_token"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Phone             string    `gorm:"type:varchar(64);not null"`
	Email             string    `gorm:"type:varchar(320);not null"`
	EventAccess       []string  `gorm:"type:jsonb;serializer:json;not null"`
	MaxDevicesAllowed int       `gorm:"not null"`
	FirstAccessAt     *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (GuestModel) TableName() string {
	return "guests"
}

// GuestDeviceModel is the GORM-specific struct for the 'guest_devices' table.
// A fingerprint appears at most once per guest.
type GuestDeviceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	GuestID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_guest_devices_guest_fingerprint,priority:1"`
	Fingerprint string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_guest_devices_guest_fingerprint,priority:2"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GuestDeviceModel) TableName() string {
	return "guest_devices"
}
