package models

import (
	"time"

	"github.com/google/uuid"
)

// UnclaimedPhone marks a device that has been issued a pairing code
// but not redeemed by any user yet.
const UnclaimedPhone = "unclaimed"

type Device struct {
	ID          uuid.UUID `db:"id"           json:"id"`
	Code        string    `db:"code"         json:"code"`
	PhoneNumber string    `db:"phone_number" json:"phoneNumber"`
	ExpiresAt   time.Time `db:"expires_at"   json:"expiresAt"`
	CreatedAt   time.Time `db:"created_at"   json:"createdAt"`
}

func (d *Device) IsExpired(now time.Time) bool {
	return !d.ExpiresAt.After(now)
}

func (d *Device) IsClaimed() bool {
	return d.PhoneNumber != "" && d.PhoneNumber != UnclaimedPhone
}
