package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Metrics holds all the Prometheus metrics for the server
type Metrics struct {
	// MCP tool metrics
	MCPToolCallsTotal   *prometheus.CounterVec
	MCPToolCallDuration *prometheus.HistogramVec
	MCPToolErrorsTotal  *prometheus.CounterVec

	// Module metrics
	ModuleEnabled       *prometheus.GaugeVec
	ModuleRequestsTotal *prometheus.CounterVec

	// Upstream FMP API metrics
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec

	logger *zap.Logger
}

var defaultMetrics *Metrics

// Init initializes the metrics system
func Init(logger *zap.Logger) *Metrics {
	if defaultMetrics != nil {
		return defaultMetrics
	}

	m := &Metrics{
		logger: logger,
	}

	m.MCPToolCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcp_tool_calls_total",
			Help: "Total number of MCP tool calls",
		},
		[]string{"tool_name", "module", "status"},
	)

	m.MCPToolCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mcp_tool_call_duration_seconds",
			Help:    "MCP tool call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tool_name", "module"},
	)

	m.MCPToolErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mcp_tool_errors_total",
			Help: "Total number of MCP tool errors",
		},
		[]string{"tool_name", "module", "error_type"},
	)

	m.ModuleEnabled = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "module_enabled",
			Help: "Module enabled status (0=disabled, 1=enabled)",
		},
		[]string{"module_name"},
	)

	m.ModuleRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "module_requests_total",
			Help: "Total number of requests per module",
		},
		[]string{"module_name"},
	)

	m.UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fmp_upstream_requests_total",
			Help: "Total number of FMP API requests",
		},
		[]string{"endpoint", "status"},
	)

	m.UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fmp_upstream_request_duration_seconds",
			Help:    "FMP API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	defaultMetrics = m
	logger.Info("Metrics system initialized")
	return m
}

// Get returns the default metrics instance
func Get() *Metrics {
	return defaultMetrics
}

// SetModuleEnabled sets the enabled status for a module
func (m *Metrics) SetModuleEnabled(moduleName string, enabled bool) {
	value := 0.0
	if enabled {
		value = 1.0
	}
	m.ModuleEnabled.WithLabelValues(moduleName).Set(value)
}

// RecordMCPToolCall records an MCP tool call
func RecordMCPToolCall(toolName, module string, duration time.Duration, success bool) {
	m := Get()
	if m == nil {
		return
	}

	status := "failure"
	if success {
		status = "success"
	}

	m.MCPToolCallsTotal.WithLabelValues(toolName, module, status).Inc()
	m.MCPToolCallDuration.WithLabelValues(toolName, module).Observe(duration.Seconds())
}

// RecordMCPToolError records an MCP tool error
func RecordMCPToolError(toolName, module, errorType string) {
	m := Get()
	if m != nil {
		m.MCPToolErrorsTotal.WithLabelValues(toolName, module, errorType).Inc()
	}
}

// RecordModuleRequest records a module request
func RecordModuleRequest(moduleName string) {
	m := Get()
	if m != nil {
		m.ModuleRequestsTotal.WithLabelValues(moduleName).Inc()
	}
}

// RecordUpstreamRequest records an FMP API request. A status of 0 means the
// request never produced a response.
func RecordUpstreamRequest(endpoint string, status int, duration time.Duration) {
	m := Get()
	if m == nil {
		return
	}

	label := "error"
	if status >= 200 && status < 300 {
		label = "success"
	} else if status > 0 {
		label = "failure"
	}

	m.UpstreamRequestsTotal.WithLabelValues(endpoint, label).Inc()
	m.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}
