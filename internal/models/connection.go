package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type ConnectionStatus string

const (
	StatusPending ConnectionStatus = "PENDING"
	StatusActive  ConnectionStatus = "ACTIVE"
	StatusExpired ConnectionStatus = "EXPIRED"
	StatusRevoked ConnectionStatus = "REVOKED"
)

// ValidStatuses lists every recognized connection status, in the order
// reported by validation errors.
var ValidStatuses = []ConnectionStatus{
	StatusPending,
	StatusActive,
	StatusExpired,
	StatusRevoked,
}

// ParseConnectionStatus is the single validation point for status input,
// shared by connection create and update paths.
func ParseConnectionStatus(v string) (ConnectionStatus, error) {
	s := ConnectionStatus(v)
	for _, valid := range ValidStatuses {
		if s == valid {
			return s, nil
		}
	}
	return "", fmt.Errorf("invalid connection status %q, valid values are: %v", v, ValidStatuses)
}

func (s ConnectionStatus) IsValid() bool {
	_, err := ParseConnectionStatus(string(s))
	return err == nil
}

type Connection struct {
	ID        uuid.UUID        `db:"id"         json:"id"`
	DeviceID  uuid.UUID        `db:"device_id"  json:"deviceId"`
	Status    ConnectionStatus `db:"status"     json:"status"`
	CreatedAt time.Time        `db:"created_at" json:"createdAt"`
}
