package models

import (
	"time"

	"github.com/google/uuid"
)

type Bundle struct {
	ID            uuid.UUID `db:"id"             json:"id"`
	DeviceID      uuid.UUID `db:"device_id"      json:"deviceId"`
	ExpiresAt     time.Time `db:"expires_at"     json:"expiresAt"`
	RemainingDays int       `db:"remaining_days" json:"remainingDays"`
	CreatedAt     time.Time `db:"created_at"     json:"createdAt"`
}

// BundleValidity computes validity from expiresAt at query time. The stored
// remaining_days column is a creation-time snapshot and is never trusted here.
func BundleValidity(expiresAt, now time.Time) (valid bool, days, hours int) {
	left := expiresAt.Sub(now)
	if left <= 0 {
		return false, 0, 0
	}

	days = int(left / (24 * time.Hour))
	hours = int((left % (24 * time.Hour)) / time.Hour)
	return true, days, hours
}
