package ctrl

import (
	"context"
	"errors"
	"fmt"

	md "github.com/JMURv/pairlink/internal/models"
	"github.com/JMURv/pairlink/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type connectionCtrl interface {
	GetConnectionByDevice(ctx context.Context, device *md.Device) *md.Connection
	GetConnectionStatusByDevice(ctx context.Context, device *md.Device) md.ConnectionStatus
	CreateNewConnection(ctx context.Context, status string, device *md.Device) (*md.Connection, error)
	UpdateConnectionStatus(ctx context.Context, status string, device *md.Device) error
}

type connectionRepo interface {
	GetLatestConnectionByDevice(ctx context.Context, deviceID uuid.UUID) (*md.Connection, error)
	CreateConnection(ctx context.Context, deviceID uuid.UUID, status md.ConnectionStatus) (*md.Connection, error)
	UpdateConnectionStatus(ctx context.Context, deviceID uuid.UUID, status md.ConnectionStatus) (int64, error)
}

const connStatusCacheKey = "connection:%v"
const connFullCacheKey = "connection:full:%v"

// GetConnectionByDevice returns the device's latest connection record,
// cache-first. Lookup failures of any kind degrade to absence; a
// genuine no-connection result is never cached.
func (c *Controller) GetConnectionByDevice(ctx context.Context, device *md.Device) *md.Connection {
	const op = "connections.GetConnectionByDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cacheKey := fmt.Sprintf(connFullCacheKey, device.Code)
	cached := &md.Connection{}
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached
	}

	res, err := c.repo.GetLatestConnectionByDevice(ctx, device.ID)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			zap.L().Error(
				"failed to fetch connection",
				zap.String("device", device.ID.String()),
				zap.Error(err),
			)
		}
		return nil
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, c.conf.Cache.ConnFull(), cacheKey, bytes)
	}

	return res
}

// GetConnectionStatusByDevice returns the device's current status,
// cache-first, caching only the status scalar. A cached value outside
// the recognized set is treated as a miss and re-fetched.
func (c *Controller) GetConnectionStatusByDevice(ctx context.Context, device *md.Device) md.ConnectionStatus {
	const op = "connections.GetConnectionStatusByDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cacheKey := fmt.Sprintf(connStatusCacheKey, device.Code)
	if val, err := c.cache.GetString(ctx, cacheKey); err == nil {
		if status, err := md.ParseConnectionStatus(val); err == nil {
			return status
		}
	}

	res, err := c.repo.GetLatestConnectionByDevice(ctx, device.ID)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			zap.L().Error(
				"failed to fetch connection status",
				zap.String("device", device.ID.String()),
				zap.Error(err),
			)
		}
		return ""
	}

	c.cache.Set(ctx, c.conf.Cache.ConnStatus(), cacheKey, string(res.Status))
	return res.Status
}

// CreateNewConnection appends a connection row for the device. The new
// row supersedes prior ones for "latest" queries.
func (c *Controller) CreateNewConnection(ctx context.Context, status string, device *md.Device) (*md.Connection, error) {
	const op = "connections.CreateNewConnection.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	parsed, err := md.ParseConnectionStatus(status)
	if err != nil {
		return nil, err
	}

	res, err := c.repo.CreateConnection(ctx, device.ID, parsed)
	if err != nil {
		return nil, err
	}

	c.cache.Set(ctx, c.conf.Cache.ConnStatus(), fmt.Sprintf(connStatusCacheKey, device.Code), string(parsed))
	c.cache.Delete(ctx, fmt.Sprintf(connFullCacheKey, device.Code))

	return res, nil
}

// UpdateConnectionStatus rewrites the status of the device's existing
// connection in place. Matching zero rows is a logic error.
func (c *Controller) UpdateConnectionStatus(ctx context.Context, status string, device *md.Device) error {
	const op = "connections.UpdateConnectionStatus.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	parsed, err := md.ParseConnectionStatus(status)
	if err != nil {
		return err
	}

	affected, err := c.repo.UpdateConnectionStatus(ctx, device.ID, parsed)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w for device %s", ErrConnectionNotFound, device.ID)
	}

	c.cache.Set(ctx, c.conf.Cache.ConnStatus(), fmt.Sprintf(connStatusCacheKey, device.Code), string(parsed))
	c.cache.Delete(ctx, fmt.Sprintf(connFullCacheKey, device.Code))

	return nil
}
