package db

import (
	"context"
	"database/sql"
	"errors"

	md "github.com/JMURv/pairlink/internal/models"
	"github.com/JMURv/pairlink/internal/repo"
	"github.com/google/uuid"
)

// GetLatestConnectionByDevice returns the most recently created
// connection row for the device. Older rows are history only.
func (r *Repository) GetLatestConnectionByDevice(ctx context.Context, deviceID uuid.UUID) (*md.Connection, error) {
	res := &md.Connection{}
	err := r.conn.GetContext(ctx, res, connGetLatestByDeviceQ, deviceID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) CreateConnection(ctx context.Context, deviceID uuid.UUID, status md.ConnectionStatus) (*md.Connection, error) {
	res := &md.Connection{}
	err := r.conn.GetContext(ctx, res, connCreateQ, deviceID, status)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// UpdateConnectionStatus rewrites the status of the device's connection
// rows in place and returns the number of rows affected.
func (r *Repository) UpdateConnectionStatus(ctx context.Context, deviceID uuid.UUID, status md.ConnectionStatus) (int64, error) {
	res, err := r.conn.ExecContext(ctx, connUpdateStatusQ, status, deviceID)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
