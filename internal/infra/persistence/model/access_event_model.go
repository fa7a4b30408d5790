package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessEventModel is the GORM-specific struct for the 'access_events' table.
type AccessEventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	GuestID     uuid.UUID `gorm:"type:uuid;not null;index:idx_access_events_guest_occurred,priority:1"`
	Type        string    `gorm:"type:varchar(64);not null"`
	Fingerprint string    `gorm:"type:varchar(128);not null"`
	Detail      string    `gorm:"type:text;not null"`
	RequestID   string    `gorm:"type:varchar(64);not null"`
	OccurredAt  time.Time `gorm:"not null;index:idx_access_events_guest_occurred,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (AccessEventModel) TableName() string {
	return "access_events"
}
