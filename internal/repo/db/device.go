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

// GetDeviceByCode returns the latest device row for the code, expired or not.
func (r *Repository) GetDeviceByCode(ctx context.Context, code string) (*md.Device, error) {
	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceGetByCodeQ, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

// GetLiveDeviceByCode returns the device for the code only while its
// pairing window is still open.
func (r *Repository) GetLiveDeviceByCode(ctx context.Context, code string) (*md.Device, error) {
	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceGetLiveByCodeQ, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateDevice(ctx context.Context, code string, expiresAt time.Time) (*md.Device, error) {
	res := &md.Device{}
	err := r.conn.GetContext(ctx, res, deviceCreateQ, code, md.UnclaimedPhone, expiresAt)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *Repository) SetDevicePhone(ctx context.Context, id uuid.UUID, phone string) error {
	res, err := r.conn.ExecContext(ctx, deviceSetPhoneQ, phone, id)
	if err != nil {
		return err
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return repo.ErrNotFound
	}

	return nil
}

// DeleteExpiredDevices removes every device past its pairing window and
// reports how many rows were removed.
func (r *Repository) DeleteExpiredDevices(ctx context.Context) (int64, error) {
	res, err := r.conn.ExecContext(ctx, deviceDeleteExpiredQ)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
