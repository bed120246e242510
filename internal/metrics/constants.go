package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Reload metric names
const (
	MetricNameReloadsTotal   = "menu_reloads_total"
	MetricNameReloadDuration = "menu_reload_duration_seconds"
	MetricNameLoadProblems   = "menu_load_problems"
	MetricNameSkippedFiles   = "menu_skipped_files"
)

// Registry metric names
const (
	MetricNameRegisteredMenus     = "registered_menus"
	MetricNameRegisteredCommands  = "registered_menu_commands"
	MetricNameRegisteredOpenItems = "registered_menu_open_items"
)

// Session metric names
const (
	MetricNameMenuOpensTotal  = "menu_opens_total"
	MetricNameIconClicksTotal = "menu_icon_clicks_total"
	MetricNameOpenSessions    = "menu_open_sessions"
)

// Admin API metric names
const (
	MetricNameAdminRejectionsTotal = "admin_rejected_requests_total"
	MetricNameEventSubscribers     = "reload_event_subscribers"
	MetricNameEventsDroppedTotal   = "reload_events_dropped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Reload metric help text
const (
	HelpTextReloadsTotal   = "Total number of menu reload passes"
	HelpTextReloadDuration = "Menu reload pass duration in seconds"
	HelpTextLoadProblems   = "Problems collected by the last successful reload"
	HelpTextSkippedFiles   = "Menu files skipped by the last successful reload"
)

// Registry metric help text
const (
	HelpTextRegisteredMenus     = "Number of registered menus"
	HelpTextRegisteredCommands  = "Number of registered open commands"
	HelpTextRegisteredOpenItems = "Number of registered open items"
)

// Session metric help text
const (
	HelpTextMenuOpensTotal  = "Total number of menus shown to players"
	HelpTextIconClicksTotal = "Total number of icon clicks handled"
	HelpTextOpenSessions    = "Number of players with a tracked open menu"
)

// Admin API metric help text
const (
	HelpTextAdminRejectionsTotal = "Admin API requests rejected before reaching a handler"
	HelpTextEventSubscribers     = "Clients subscribed to reload events"
	HelpTextEventsDroppedTotal   = "Reload events not delivered to a slow subscriber"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelResult   = "result"
	LabelSeverity = "severity"
	LabelMenu     = "menu"
	LabelReason   = "reason"
)

// Label values
const (
	ResultSuccess   = "success"
	ResultFailure   = "failure"
	SeverityError   = "error"
	SeverityWarning = "warning"

	ReasonUnauthorized = "unauthorized"
	ReasonRateLimited  = "rate_limited"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ReloadLatencyBuckets covers reload passes from 1ms to 30s.
var ReloadLatencyBuckets = []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10, 30}

// UnmatchedPath labels requests that matched no route.
const UnmatchedPath = "unmatched"
