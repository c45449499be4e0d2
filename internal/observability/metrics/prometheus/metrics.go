package prometheus

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var reqMetrics = prometheus.NewSummaryVec(
	prometheus.SummaryOpts{
		Name:       "request_metrics",
		Help:       "Request duration seconds",
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	},
	[]string{"status", "op"},
)

func ObserveRequest(d time.Duration, status int, op string) {
	reqMetrics.WithLabelValues(strconv.Itoa(status), op).Observe(d.Seconds())
}

type Handler struct {
	port int
	srv  *http.Server
}

func New(port int) *Handler {
	prometheus.MustRegister(reqMetrics)
	return &Handler{port: port}
}

func (h *Handler) Start(ctx context.Context) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	h.srv = &http.Server{
		Addr:    fmt.Sprintf(":%v", h.port),
		Handler: mux,
	}

	zap.L().Info("Starting metrics server", zap.String("addr", h.srv.Addr))
	go func() {
		if err := h.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Error("Metrics server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	if err := h.srv.Shutdown(context.Background()); err != nil {
		zap.L().Debug("Error shutting down metrics server", zap.Error(err))
	}
	zap.L().Info("Metrics server has been stopped")
}
