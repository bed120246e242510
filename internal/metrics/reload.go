package metrics

import "time"

// RecordReload updates the reload metrics after a pass. failed is true when
// the pass aborted before touching the registry.
func RecordReload(duration time.Duration, failed bool, errors, warnings, skipped int) {
	result := ResultSuccess
	if failed {
		result = ResultFailure
	}
	ReloadsTotal.WithLabelValues(result).Inc()
	ReloadDuration.Observe(duration.Seconds())
	if failed {
		return
	}
	LoadProblems.WithLabelValues(SeverityError).Set(float64(errors))
	LoadProblems.WithLabelValues(SeverityWarning).Set(float64(warnings))
	SkippedFiles.Set(float64(skipped))
}

// RecordRegistry publishes the size of each registry index.
func RecordRegistry(menus, commands, openItems int) {
	RegisteredMenus.Set(float64(menus))
	RegisteredCommands.Set(float64(commands))
	RegisteredOpenItems.Set(float64(openItems))
}
