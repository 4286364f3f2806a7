package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var backendRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "livedash_backend_requests_total",
	Help: "到采集后端的请求数，按结果（ok/error）统计",
}, []string{"outcome"})
