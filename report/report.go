// Package report provides the driver around the templating core: it scans a
// document for {...} spans and fills the whole document once per data row,
// emitting lifecycle events for observability.
package report

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/asaidimu/go-events"
	"github.com/asaidimu/go-weft/core"
	"github.com/asaidimu/go-weft/core/directive"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// spanRe isolates the directive text between { and }. Braces do not nest.
var spanRe = regexp.MustCompile(`\{([^{}]*)\}`)

// Report renders one source document repeatedly, once per row. The visibility
// map is shared across all rows of a run; the source text and visibility are
// read-only, so a Report may fill rows concurrently from multiple goroutines.
type Report struct {
	source        string
	evaluator     *directive.Evaluator
	visibility    core.Visibility
	bus           *events.TypedEventBus[ReportEvent]
	logger        *zap.Logger
	subscriptions map[string]func()
	subMu         sync.RWMutex
}

// NewReport creates a Report for the given source document. The evaluator
// supplies directive resolution and the function registry; visibility may be
// nil to leave every field visible.
func NewReport(source string, evaluator *directive.Evaluator, visibility core.Visibility, logger *zap.Logger) (*Report, error) {
	if evaluator == nil {
		return nil, fmt.Errorf("evaluator cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	bus, err := events.NewTypedEventBus[ReportEvent](events.DefaultConfig())
	if err != nil {
		return nil, fmt.Errorf("could not initialize event bus: %w", err)
	}

	return &Report{
		source:        source,
		evaluator:     evaluator,
		visibility:    visibility,
		bus:           bus,
		logger:        logger,
		subscriptions: make(map[string]func()),
	}, nil
}

// FillRow fills every {...} span of the source document against a single row
// and returns the completed document. Per-field and per-filter problems
// render inline; an unregistered function aborts the row.
func (r *Report) FillRow(row core.Row) (string, error) {
	var evalErr error
	out := spanRe.ReplaceAllStringFunc(r.source, func(span string) string {
		value, err := r.evaluator.Evaluate(span[1:len(span)-1], row, r.visibility)
		if err != nil {
			if evalErr == nil {
				evalErr = err
			}
			return ""
		}
		return value
	})
	if evalErr != nil {
		return "", evalErr
	}
	return out, nil
}

// Fill renders one document per row, in order, emitting lifecycle events on
// the report's event bus. The first failing row aborts the run.
func (r *Report) Fill(rows []core.Row) ([]string, error) {
	reportID := uuid.New().String()
	startTime := time.Now()
	r.emit(createEvent(ReportStart, reportID, nil, nil, time.Time{}))

	docs := make([]string, 0, len(rows))
	for i, row := range rows {
		doc, err := r.FillRow(row)
		if err != nil {
			errStr := err.Error()
			index := i
			r.emit(createEvent(RowFailed, reportID, &index, &errStr, startTime))
			r.emit(createEvent(ReportFailed, reportID, nil, &errStr, startTime))
			return nil, fmt.Errorf("failed to fill row %d: %w", i, err)
		}
		index := i
		r.emit(createEvent(RowSuccess, reportID, &index, nil, startTime))
		docs = append(docs, doc)
	}

	r.emit(createEvent(ReportComplete, reportID, nil, nil, startTime))
	r.logger.Info("Report filled",
		zap.String("report_id", reportID),
		zap.Int("rows", len(rows)))
	return docs, nil
}

// Subscribe registers a callback for one event type and returns a
// subscription identifier usable with Unsubscribe.
func (r *Report) Subscribe(event ReportEventType, callback EventCallback) string {
	r.subMu.Lock()
	defer r.subMu.Unlock()

	unsubscribe := r.bus.Subscribe(string(event), callback)
	id := uuid.New().String()
	r.subscriptions[id] = unsubscribe
	return id
}

// Unsubscribe removes a previously registered subscription.
func (r *Report) Unsubscribe(id string) {
	r.subMu.Lock()
	defer r.subMu.Unlock()

	if unsubscribe, ok := r.subscriptions[id]; ok {
		unsubscribe()
		delete(r.subscriptions, id)
	}
}

func (r *Report) emit(event ReportEvent) {
	if r.bus != nil {
		r.bus.Emit(string(event.Type), event)
	}
}
