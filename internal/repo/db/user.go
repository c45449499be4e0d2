package db

import (
	"context"
	"database/sql"
	"errors"

	md "github.com/JMURv/pairlink/internal/models"
	"github.com/JMURv/pairlink/internal/repo"
)

func (r *Repository) GetUserByPhone(ctx context.Context, phone string) (*md.User, error) {
	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByPhoneQ, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}
