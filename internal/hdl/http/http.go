package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/JMURv/pairlink/internal/ctrl"
	mid "github.com/JMURv/pairlink/internal/hdl/http/middleware"
	"github.com/JMURv/pairlink/internal/hdl/http/utils"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	router *chi.Mux
	srv    *http.Server
	ctrl   ctrl.AppCtrl
}

func New(ctrl ctrl.AppCtrl) *Handler {
	r := chi.NewRouter()
	return &Handler{
		router: r,
		ctrl:   ctrl,
	}
}

func (h *Handler) Start(port int) {
	h.router.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		mid.Prometheus,
	)

	h.RegisterDeviceRoutes()
	h.router.Get(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			utils.SuccessResponse(w, http.StatusOK, "OK")
		},
	)

	h.srv = &http.Server{
		Handler:      h.router,
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}
