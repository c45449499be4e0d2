package dto

import (
	"time"

	md "github.com/JMURv/pairlink/internal/models"
	"github.com/google/uuid"
)

type ConnectDeviceRequest struct {
	Phone string `json:"phone" validate:"required,e164"`
	Code  string `json:"code"  validate:"required"`
}

type GeneratePairingCodeResponse struct {
	Code string `json:"code"`
}

// DeviceResponse is the projection returned by device reads and cached
// under device:{code}. Status is the device's current connection status.
type DeviceResponse struct {
	ID          uuid.UUID           `json:"id"`
	Code        string              `json:"code"`
	PhoneNumber string              `json:"phoneNumber"`
	Status      md.ConnectionStatus `json:"status"`
	ExpiresAt   time.Time           `json:"expiresAt"`
	CreatedAt   time.Time           `json:"createdAt"`
}
