package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/roboholdem/roboholdem/common/log"
	"go.uber.org/zap"
)

var (
	RoundsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "holdem_rounds_total",
		Help: "rounds finished, by actual outcome",
	}, []string{"outcome"})

	BluffsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "holdem_bluffs_total",
		Help: "rounds the robot bluffed",
	})

	DetectedBluffsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "holdem_detected_bluffs_total",
		Help: "bluffs the participant called and won",
	})

	AllInsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "holdem_robot_all_ins_total",
		Help: "rounds the robot went all in",
	})

	ActiveGames = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "holdem_active_games",
		Help: "games currently running",
	})
)

func init() {
	prometheus.MustRegister(RoundsTotal)
	prometheus.MustRegister(BluffsTotal)
	prometheus.MustRegister(DetectedBluffsTotal)
	prometheus.MustRegister(AllInsTotal)
	prometheus.MustRegister(ActiveGames)
}

// 在单独端口上起/metrics，不跟ws server共用mux
func Serve(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(fmt.Sprintf(":%v", port), mux); err != nil {
			log.L.Error("metrics server stopped", zap.Error(err))
		}
	}()
}
