// Package metrics 提供基于Prometheus的指标收集
//
// # 指标一览
//
//   - bookshelf_http_requests_total{method,path,status}: HTTP请求总数（Counter）
//   - bookshelf_http_request_duration_seconds{method,path}: HTTP请求耗时（Histogram）
//   - bookshelf_http_requests_in_progress: 正在处理的请求数（Gauge）
//   - bookshelf_books_added_total / bookshelf_books_removed_total: 目录变更（Counter）
//   - bookshelf_books_in_catalog: 最近一次读取到的图书数量（Gauge）
//   - bookshelf_store_anomalies_total{kind}: 存储异常（decode/read/persist）
//   - bookshelf_circuit_breaker_state{name}: 熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）
//   - bookshelf_events_published_total{routing_key,result}: 目录事件发布结果
//
// # 使用示例
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	metrics.IncCounter(metrics.BooksAddedTotal)
//	metrics.IncCounterVec(metrics.StoreAnomaliesTotal, map[string]string{"kind": "decode"})
//
// 标签只使用有限取值（kind、method、status），不要把ISBN等用户输入作为标签。
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	initOnce sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// 目录指标

	BooksAddedTotal   prometheus.Counter
	BooksRemovedTotal prometheus.Counter
	BooksInCatalog    prometheus.Gauge

	// StoreAnomaliesTotal 存储异常总数
	// 标签：kind（decode/read/persist）
	StoreAnomaliesTotal *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态
	CircuitBreakerState *prometheus.GaugeVec

	// EventsPublishedTotal 目录事件发布总数
	// 标签：routing_key、result（success/failure）
	EventsPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
// 可重复调用，只会注册一次（promauto注册到默认Registry，重复注册会panic）
func InitMetrics() {
	initOnce.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookshelf_http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "bookshelf_http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 整表读写，耗时与目录大小线性相关
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "bookshelf_http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		BooksAddedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bookshelf_books_added_total",
				Help: "添加图书总数",
			},
		)

		BooksRemovedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "bookshelf_books_removed_total",
				Help: "删除请求总数（不论是否命中）",
			},
		)

		BooksInCatalog = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "bookshelf_books_in_catalog",
				Help: "最近一次读取到的图书数量",
			},
		)

		StoreAnomaliesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookshelf_store_anomalies_total",
				Help: "存储异常总数（已降级处理）",
			},
			[]string{"kind"},
		)

		CircuitBreakerState = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "bookshelf_circuit_breaker_state",
				Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
			},
			[]string{"name"},
		)

		EventsPublishedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookshelf_events_published_total",
				Help: "目录事件发布总数",
			},
			[]string{"routing_key", "result"},
		)
	})
}

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	if counter == nil {
		return
	}
	counter.Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	if counter == nil {
		return
	}
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	if gauge == nil {
		return
	}
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	if gauge == nil {
		return
	}
	gauge.Set(value)
}

// SetGaugeVec 设置GaugeVec值（带标签）
func SetGaugeVec(gauge *prometheus.GaugeVec, labels map[string]string, value float64) {
	if gauge == nil {
		return
	}
	gauge.With(labels).Set(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	if histogram == nil {
		return
	}
	histogram.With(labels).Observe(value)
}
