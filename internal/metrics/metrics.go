package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Reload Metrics
var (
	ReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReloadsTotal,
			Help: HelpTextReloadsTotal,
		},
		[]string{LabelResult},
	)

	ReloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameReloadDuration,
			Help:    HelpTextReloadDuration,
			Buckets: ReloadLatencyBuckets,
		},
	)

	LoadProblems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameLoadProblems,
			Help: HelpTextLoadProblems,
		},
		[]string{LabelSeverity},
	)

	SkippedFiles = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSkippedFiles,
			Help: HelpTextSkippedFiles,
		},
	)
)

// Registry Metrics
var (
	RegisteredMenus = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRegisteredMenus,
			Help: HelpTextRegisteredMenus,
		},
	)

	RegisteredCommands = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRegisteredCommands,
			Help: HelpTextRegisteredCommands,
		},
	)

	RegisteredOpenItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameRegisteredOpenItems,
			Help: HelpTextRegisteredOpenItems,
		},
	)
)

// Session Metrics
var (
	MenuOpensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMenuOpensTotal,
			Help: HelpTextMenuOpensTotal,
		},
		[]string{LabelMenu},
	)

	IconClicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIconClicksTotal,
			Help: HelpTextIconClicksTotal,
		},
		[]string{LabelMenu},
	)

	OpenSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameOpenSessions,
			Help: HelpTextOpenSessions,
		},
	)
)

// Admin API Metrics
var (
	AdminRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAdminRejectionsTotal,
			Help: HelpTextAdminRejectionsTotal,
		},
		[]string{LabelReason},
	)

	EventSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameEventSubscribers,
			Help: HelpTextEventSubscribers,
		},
	)

	EventsDroppedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEventsDroppedTotal,
			Help: HelpTextEventsDroppedTotal,
		},
	)
)
