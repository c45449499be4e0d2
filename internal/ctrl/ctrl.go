package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/JMURv/pairlink/internal/config"
)

type AppRepo interface {
	deviceRepo
	connectionRepo
	bundleRepo
	userRepo
}

type AppCtrl interface {
	deviceCtrl
	connectionCtrl
	bundleCtrl
}

// CacheService is the optional overlay in front of the repository.
// Writes never fail the caller; read errors signal a fallback to the
// durable store.
type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	GetString(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
	InvalidateKeysByPattern(ctx context.Context, pattern string)
}

type Controller struct {
	conf  config.Config
	repo  AppRepo
	cache CacheService
}

func New(conf config.Config, repo AppRepo, cache CacheService) *Controller {
	return &Controller{
		conf:  conf,
		repo:  repo,
		cache: cache,
	}
}
