package report

import (
	"context"
	"time"
)

// ReportEventType identifies a point in the report fill lifecycle.
type ReportEventType string

const (
	ReportStart    ReportEventType = "report:start"
	RowSuccess     ReportEventType = "row:success"
	RowFailed      ReportEventType = "row:failed"
	ReportComplete ReportEventType = "report:complete"
	ReportFailed   ReportEventType = "report:failed"
)

// ReportEvent carries the details of a single lifecycle event.
type ReportEvent struct {
	Type      ReportEventType `json:"type"`
	Timestamp int64           `json:"timestamp"` // Unix milliseconds.
	ReportID  string          `json:"reportId"`  // Identifies one Fill run.
	RowIndex  *int            `json:"rowIndex,omitempty"`
	Error     *string         `json:"error,omitempty"`
	Duration  *int64          `json:"duration,omitempty"` // Milliseconds since the run started.
}

// EventCallback is invoked for every event of a subscribed type. Returning an
// error does not abort the fill.
type EventCallback func(ctx context.Context, event ReportEvent) error

func createEvent(
	eventType ReportEventType,
	reportID string,
	rowIndex *int,
	err *string,
	startTime time.Time,
) ReportEvent {
	var duration *int64
	if !startTime.IsZero() {
		d := time.Since(startTime).Milliseconds()
		duration = &d
	}

	return ReportEvent{
		Type:      eventType,
		Timestamp: time.Now().UnixMilli(),
		ReportID:  reportID,
		RowIndex:  rowIndex,
		Error:     err,
		Duration:  duration,
	}
}
