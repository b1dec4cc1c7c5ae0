// Package metrics 提供基于Prometheus的指标收集
//
// # 核心概念
//
//   - Counter（计数器）：只增不减的累计值，如请求总数、创建记录数
//   - Gauge（仪表盘）：可增可减的瞬时值，如正在处理的请求数
//   - Histogram（直方图）：观测值的分布，如请求耗时
//
// # 使用示例
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	// 业务代码中
//	metrics.RecordCreated(metrics.KindBook)
//
// # 命名规范
//
//  1. Counter以`_total`结尾
//  2. Histogram以单位结尾（`_seconds`）
//  3. 避免高基数标签：path使用路由模板（/books/:isbn），不使用实际ISBN
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// 记录类型标签值
const (
	KindBook     = "book"
	KindCustomer = "customer"
)

var (
	// once 防止重复注册（promauto重复注册会panic）
	once sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/books/:isbn）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// RecordsCreatedTotal 创建成功的记录数
	// 标签：kind（book/customer）
	RecordsCreatedTotal *prometheus.CounterVec

	// RecordConflictsTotal 唯一键冲突次数
	// 标签：kind（book/customer）
	RecordConflictsTotal *prometheus.CounterVec

	// StoreErrorsTotal 存储故障次数
	// 标签：operation（add_book/get_book/...）
	StoreErrorsTotal *prometheus.CounterVec

	// CacheRequestsTotal 缓存查询次数
	// 标签：kind（book/customer）、result（hit/miss/error）
	CacheRequestsTotal *prometheus.CounterVec

	// CircuitBreakerState 熔断器状态（0=CLOSED 1=OPEN 2=HALF_OPEN）
	// 标签：name（redis/rabbitmq）
	CircuitBreakerState *prometheus.GaugeVec

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数（Counter）
	// 标签：exchange（交换机）、routing_key（路由键）、result（success/failure）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 可重复调用，只有第一次会注册到默认Registry
func InitMetrics() {
	once.Do(register)
}

func register() {
	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 记录业务指标
	RecordsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "records_created_total",
			Help: "创建成功的记录数",
		},
		[]string{"kind"},
	)

	RecordConflictsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_conflicts_total",
			Help: "唯一键冲突次数",
		},
		[]string{"kind"},
	)

	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "存储故障次数",
		},
		[]string{"operation"},
	)

	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_requests_total",
			Help: "记录缓存查询次数",
		},
		[]string{"kind", "result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED 1=OPEN 2=HALF_OPEN）",
		},
		[]string{"name"},
	)

	// 消息队列指标
	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key", "result"},
	)
}

// RecordCreated 记录创建成功
func RecordCreated(kind string) {
	InitMetrics()
	RecordsCreatedTotal.WithLabelValues(kind).Inc()
}

// RecordConflict 记录唯一键冲突
func RecordConflict(kind string) {
	InitMetrics()
	RecordConflictsTotal.WithLabelValues(kind).Inc()
}

// StoreError 记录存储故障
func StoreError(operation string) {
	InitMetrics()
	StoreErrorsTotal.WithLabelValues(operation).Inc()
}

// RecordFailure 按错误分类记录失败：冲突计入record_conflicts_total，
// 服务端错误计入store_errors_total，客户端错误不计数
func RecordFailure(kind, operation string, err error) {
	switch {
	case err == nil:
	case apperrors.IsKind(err, apperrors.KindConflict):
		RecordConflict(kind)
	case !apperrors.IsAppError(err), apperrors.IsKind(err, apperrors.KindInternal):
		StoreError(operation)
	}
}

// CacheResult 记录缓存查询结果（hit/miss/error）
func CacheResult(kind, result string) {
	InitMetrics()
	CacheRequestsTotal.WithLabelValues(kind, result).Inc()
}

// SetBreakerState 更新熔断器状态
func SetBreakerState(name string, state float64) {
	InitMetrics()
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// MessagePublished 记录消息发布结果
func MessagePublished(exchange, routingKey string, err error) {
	InitMetrics()
	result := "success"
	if err != nil {
		result = "failure"
	}
	MessagesPublishedTotal.WithLabelValues(exchange, routingKey, result).Inc()
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
