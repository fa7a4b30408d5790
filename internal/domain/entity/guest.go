// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Guest is an invitee holding one opaque invitation link.
type Guest struct {
	ID                uuid.UUID  `json:"id"`                  // Immutable identifier, survives token regeneration.
	Token             string     `json:"-"`                   // Opaque secret embedded in the invitation link.
	Name              string     `json:"name"`                // Display name shown on the invitation.
	Phone             string     `json:"phone,omitempty"`     // Identity of record, may be empty.
	Email             string     `json:"email,omitempty"`     // Identity of record, may be empty.
	EventAccess       []string   `json:"event_access"`        // Event ids the guest may view. Owned by the guest list.
	MaxDevicesAllowed int        `json:"max_devices_allowed"` // Device quota for this guest.
	FirstAccessAt     *time.Time `json:"first_access_at"`     // Set once on the first granted access.
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// HasIdentity reports whether a phone number or an email is on file.
func (g *Guest) HasIdentity() bool {
	return g.Phone != "" || g.Email != ""
}

// GuestDevice is one fingerprint admitted to a guest's invitation.
type GuestDevice struct {
	ID          uuid.UUID `json:"id"`
	GuestID     uuid.UUID `json:"guest_id"`
	Fingerprint string    `json:"fingerprint"`
	CreatedAt   time.Time `json:"created_at"`
}
