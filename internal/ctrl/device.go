package ctrl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JMURv/pairlink/internal/dto"
	md "github.com/JMURv/pairlink/internal/models"
	"github.com/JMURv/pairlink/internal/pairing"
	"github.com/JMURv/pairlink/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type deviceCtrl interface {
	GeneratePairingCode(ctx context.Context) (*dto.GeneratePairingCodeResponse, error)
	GetDeviceByCode(ctx context.Context, code string) (*dto.DeviceResponse, error)
	ConnectDevice(ctx context.Context, phone, code string) (*dto.DeviceResponse, error)
	CleanupExpiredDevices(ctx context.Context) (int64, error)
}

type deviceRepo interface {
	GetDeviceByCode(ctx context.Context, code string) (*md.Device, error)
	GetLiveDeviceByCode(ctx context.Context, code string) (*md.Device, error)
	CreateDevice(ctx context.Context, code string, expiresAt time.Time) (*md.Device, error)
	SetDevicePhone(ctx context.Context, id uuid.UUID, phone string) error
	DeleteExpiredDevices(ctx context.Context) (int64, error)
}

type userRepo interface {
	GetUserByPhone(ctx context.Context, phone string) (*md.User, error)
}

const deviceCacheKey = "device:%v"

// GeneratePairingCode issues a fresh device with a collision-free code.
// Uniqueness is enforced by retrying against the repository up to the
// configured attempt budget; exhausting it is a reported failure, not
// something retried further up.
func (c *Controller) GeneratePairingCode(ctx context.Context) (*dto.GeneratePairingCodeResponse, error) {
	const op = "devices.GeneratePairingCode.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	for i := 0; i < c.conf.Pairing.MaxAttempts; i++ {
		code := pairing.Generate(c.conf.Pairing.CodeLength)

		_, err := c.repo.GetLiveDeviceByCode(ctx, code)
		if err == nil {
			continue
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}

		res, err := c.repo.CreateDevice(ctx, code, time.Now().Add(c.conf.Pairing.Window()))
		if err != nil {
			return nil, err
		}

		if _, err = c.CreateNewConnection(ctx, string(md.StatusPending), res); err != nil {
			return nil, err
		}

		c.cacheDevice(ctx, res, md.StatusPending, time.Until(res.ExpiresAt))
		return &dto.GeneratePairingCodeResponse{Code: res.Code}, nil
	}

	zap.L().Error(
		"pairing code attempt budget exhausted",
		zap.Int("attempts", c.conf.Pairing.MaxAttempts),
	)
	return nil, ErrCodeAllocation
}

// GetDeviceByCode resolves a device projection by its pairing code,
// cache-first. A device found past its expiry is transitioned to
// EXPIRED best-effort before the projection is returned.
func (c *Controller) GetDeviceByCode(ctx context.Context, code string) (*dto.DeviceResponse, error) {
	const op = "devices.GetDeviceByCode.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	code = strings.ToUpper(code)
	if !pairing.IsValidCode(code, c.conf.Pairing.CodeLength) {
		return nil, ErrNotFound
	}

	cached := &dto.DeviceResponse{}
	if err := c.cache.GetToStruct(ctx, fmt.Sprintf(deviceCacheKey, code), cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetDeviceByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if res.IsExpired(time.Now()) {
		if err = c.UpdateConnectionStatus(ctx, string(md.StatusExpired), res); err != nil {
			zap.L().Warn(
				"failed to expire device connection",
				zap.String("code", res.Code),
				zap.Error(err),
			)
		}
	}

	status := c.GetConnectionStatusByDevice(ctx, res)
	return c.cacheDevice(ctx, res, status, c.conf.Cache.Device()), nil
}

// ConnectDevice claims a device for the user owning the phone number.
// Re-claiming by the same user is idempotent; a claim against a device
// held by a different user is a conflict.
func (c *Controller) ConnectDevice(ctx context.Context, phone, code string) (*dto.DeviceResponse, error) {
	const op = "devices.ConnectDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	user, err := c.repo.GetUserByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// The claim path reads the repository directly so a cached
	// projection can never race the ownership check.
	res, err := c.repo.GetDeviceByCode(ctx, strings.ToUpper(code))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if res.IsExpired(time.Now()) {
		return nil, ErrCodeExpired
	}

	status := c.GetConnectionStatusByDevice(ctx, res)
	if status == md.StatusActive && res.IsClaimed() && res.PhoneNumber != user.Phone {
		return nil, ErrAlreadyConnected
	}

	if err = c.repo.SetDevicePhone(ctx, res.ID, user.Phone); err != nil {
		return nil, err
	}
	res.PhoneNumber = user.Phone

	conn, err := c.CreateNewConnection(ctx, string(md.StatusActive), res)
	if err != nil {
		return nil, err
	}

	if _, err = c.CreateOrRenewBundle(ctx, c.conf.Pairing.BundleDays, res); err != nil {
		return nil, err
	}

	return c.cacheDevice(ctx, res, conn.Status, c.conf.Cache.Device()), nil
}

// CleanupExpiredDevices bulk-deletes devices past their pairing window.
// Removing nothing is a normal outcome.
func (c *Controller) CleanupExpiredDevices(ctx context.Context) (int64, error) {
	const op = "devices.CleanupExpiredDevices.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	removed, err := c.repo.DeleteExpiredDevices(ctx)
	if err != nil {
		return 0, err
	}

	zap.L().Info("expired devices removed", zap.Int64("count", removed))
	return removed, nil
}

func (c *Controller) cacheDevice(ctx context.Context, d *md.Device, status md.ConnectionStatus, ttl time.Duration) *dto.DeviceResponse {
	res := &dto.DeviceResponse{
		ID:          d.ID,
		Code:        d.Code,
		PhoneNumber: d.PhoneNumber,
		Status:      status,
		ExpiresAt:   d.ExpiresAt,
		CreatedAt:   d.CreatedAt,
	}

	if ttl <= 0 {
		return res
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, ttl, fmt.Sprintf(deviceCacheKey, d.Code), bytes)
	}

	return res
}
