package sse

import "github.com/osse101/chestmenus/internal/reload"

// PublishReload broadcasts a reload.completed event for report.
func (h *Hub) PublishReload(report *reload.Report) {
	h.Publish(EventTypeReloadCompleted, ReloadCompletedPayload{
		ReloadID:   report.ID,
		Files:      report.Files,
		Menus:      report.Menus,
		Errors:     report.Errors,
		Warnings:   report.Warnings,
		DurationMs: report.Duration.Milliseconds(),
	})
}

// PublishReloadFailure broadcasts a reload.failed event.
func (h *Hub) PublishReloadFailure(err error) {
	h.Publish(EventTypeReloadFailed, ReloadFailedPayload{Error: err.Error()})
}
