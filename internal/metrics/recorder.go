package metrics

import "sync"

type Recorder interface {
	RecordCommissionCalculated(representativeID string)
	RecordCommissionPaid()
	RecordAllocation(operation string)
	RecordEngineError(operation string)
}

type recorder struct {
	metrics *metrics
}

type noopRecorder struct{}

func (noopRecorder) RecordCommissionCalculated(string) {}
func (noopRecorder) RecordCommissionPaid()             {}
func (noopRecorder) RecordAllocation(string)           {}
func (noopRecorder) RecordEngineError(string)          {}

var (
	activeRecorder Recorder = noopRecorder{}
	recorderMu     sync.RWMutex
)

func setRecorder(rec Recorder) {
	if rec == nil {
		return
	}
	recorderMu.Lock()
	activeRecorder = rec
	recorderMu.Unlock()
}

func RecordCommissionCalculated(representativeID string) {
	current().RecordCommissionCalculated(representativeID)
}

func RecordCommissionPaid() {
	current().RecordCommissionPaid()
}

func RecordAllocation(operation string) {
	current().RecordAllocation(operation)
}

func RecordEngineError(operation string) {
	current().RecordEngineError(operation)
}

func current() Recorder {
	recorderMu.RLock()
	rec := activeRecorder
	recorderMu.RUnlock()
	return rec
}

func (r *recorder) RecordCommissionCalculated(representativeID string) {
	r.metrics.commissionsCalculated.WithLabelValues(representativeID).Inc()
}

func (r *recorder) RecordCommissionPaid() {
	r.metrics.commissionsPaid.Inc()
}

func (r *recorder) RecordAllocation(operation string) {
	r.metrics.allocations.WithLabelValues(operation).Inc()
}

func (r *recorder) RecordEngineError(operation string) {
	r.metrics.engineErrors.WithLabelValues(operation).Inc()
}
