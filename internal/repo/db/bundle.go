package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	md "github.com/JMURv/pairlink/internal/models"
	"github.com/JMURv/pairlink/internal/repo"
	"github.com/google/uuid"
)

func (r *Repository) GetLatestBundleByDeviceCode(ctx context.Context, code string) (*md.Bundle, error) {
	res := &md.Bundle{}
	err := r.conn.GetContext(ctx, res, bundleGetLatestByDeviceCodeQ, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetLatestBundleByDevice(ctx context.Context, deviceID uuid.UUID) (*md.Bundle, error) {
	res := &md.Bundle{}
	err := r.conn.GetContext(ctx, res, bundleGetLatestByDeviceQ, deviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateBundle(ctx context.Context, deviceID uuid.UUID, expiresAt time.Time, remainingDays int) (*md.Bundle, error) {
	res := &md.Bundle{}
	err := r.conn.GetContext(ctx, res, bundleCreateQ, deviceID, expiresAt, remainingDays)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// RenewBundle moves an existing bundle's expiry forward and refreshes
// the remaining-days snapshot.
func (r *Repository) RenewBundle(ctx context.Context, id uuid.UUID, expiresAt time.Time, remainingDays int) error {
	res, err := r.conn.ExecContext(ctx, bundleRenewQ, expiresAt, remainingDays, id)
	if err != nil {
		return err
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return repo.ErrNotFound
	}

	return nil
}
