package feed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollTicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "livedash_poll_ticks_total",
		Help: "实际发起的轮询次数，按类型（feed/summary）统计",
	}, []string{"kind"})

	pollSkipsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "livedash_poll_skips_total",
		Help: "因上一次拉取未完成而被丢弃的节拍数",
	}, []string{"kind"})

	pollErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "livedash_poll_errors_total",
		Help: "轮询请求失败次数（失败只打日志，下个节拍自然重试）",
	}, []string{"kind"})
)
