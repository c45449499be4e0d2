package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/JMURv/pairlink/internal/dto"
	md "github.com/JMURv/pairlink/internal/models"
	"github.com/JMURv/pairlink/internal/repo"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
)

type bundleCtrl interface {
	LoadActiveBundle(ctx context.Context, deviceCode string) (*dto.BundleStatusResponse, error)
	CreateOrRenewBundle(ctx context.Context, days int, device *md.Device) (*md.Bundle, error)
}

type bundleRepo interface {
	GetLatestBundleByDeviceCode(ctx context.Context, code string) (*md.Bundle, error)
	GetLatestBundleByDevice(ctx context.Context, deviceID uuid.UUID) (*md.Bundle, error)
	CreateBundle(ctx context.Context, deviceID uuid.UUID, expiresAt time.Time, remainingDays int) (*md.Bundle, error)
	RenewBundle(ctx context.Context, id uuid.UUID, expiresAt time.Time, remainingDays int) error
}

const bundleCacheKey = "bundle:%v"
const bundleStatusCacheKey = "bundle-status:%v"

// LoadActiveBundle returns the validity projection of the device's
// newest bundle, cache-first. Validity is recomputed from expiresAt at
// query time; a device without bundles yields the zero projection.
func (c *Controller) LoadActiveBundle(ctx context.Context, deviceCode string) (*dto.BundleStatusResponse, error) {
	const op = "bundles.LoadActiveBundle.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cacheKey := fmt.Sprintf(bundleStatusCacheKey, deviceCode)
	cached := &dto.BundleStatusResponse{}
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	res, err := c.repo.GetLatestBundleByDeviceCode(ctx, deviceCode)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return &dto.BundleStatusResponse{}, nil
		}
		return nil, err
	}

	valid, days, hours := md.BundleValidity(res.ExpiresAt, time.Now())
	proj := &dto.BundleStatusResponse{
		IsValid:        valid,
		RemainingDays:  days,
		RemainingHours: hours,
	}

	bytes, err := json.Marshal(proj)
	if err == nil {
		c.cache.Set(ctx, c.conf.Cache.BundleStatus(), cacheKey, bytes)
	}

	return proj, nil
}

// CreateOrRenewBundle extends the device's bundle by days, creating one
// when none exists. While a full bundle record is still cached the call
// short-circuits and returns it unchanged, throttling redundant renewal
// writes within the cache TTL window.
func (c *Controller) CreateOrRenewBundle(ctx context.Context, days int, device *md.Device) (*md.Bundle, error) {
	const op = "bundles.CreateOrRenewBundle.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	cacheKey := fmt.Sprintf(bundleCacheKey, device.Code)
	cached := &md.Bundle{}
	if err := c.cache.GetToStruct(ctx, cacheKey, cached); err == nil {
		return cached, nil
	}

	expiresAt := time.Now().Add(time.Duration(days) * 24 * time.Hour)

	res, err := c.repo.GetLatestBundleByDevice(ctx, device.ID)
	switch {
	case err == nil:
		if err = c.repo.RenewBundle(ctx, res.ID, expiresAt, days); err != nil {
			return nil, err
		}
		res.ExpiresAt = expiresAt
		res.RemainingDays = days
	case errors.Is(err, repo.ErrNotFound):
		res, err = c.repo.CreateBundle(ctx, device.ID, expiresAt, days)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	bytes, err := json.Marshal(res)
	if err == nil {
		c.cache.Set(ctx, c.conf.Cache.BundleFull(), cacheKey, bytes)
	}

	// The validity projection is stale after a renewal.
	c.cache.Delete(ctx, fmt.Sprintf(bundleStatusCacheKey, device.Code))

	return res, nil
}
