package livedash_sdk

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterMetrics 暴露 Prometheus 指标（轮询次数 / 丢弃节拍 / 失败数）。
// 默认路由 /metrics。
func RegisterMetrics(r *gin.Engine, path string) {
	if path == "" {
		path = "/metrics"
	}
	r.GET(path, gin.WrapH(promhttp.Handler()))
}
