// Package metrics provides observability for engine operations run by
// the daemon.
//
// Components receive a Recorder through dependency injection and default
// to NoopRecorder, so metrics impose no overhead and no wiring burden
// unless the daemon activates the Prometheus implementation.
package metrics

import "time"

// Recorder receives operation-level measurements.
type Recorder interface {
	// ObserveOperation records one engine operation on one document.
	ObserveOperation(op string, d time.Duration, err error)
	// SetDiagnostics records the diagnostic count of the latest
	// reference sweep.
	SetDiagnostics(n int)
	// IncReformatted counts files rewritten by the watcher.
	IncReformatted()
}

// NoopRecorder is the default Recorder; every method does nothing.
type NoopRecorder struct{}

func (NoopRecorder) ObserveOperation(string, time.Duration, error) {}
func (NoopRecorder) SetDiagnostics(int)                            {}
func (NoopRecorder) IncReformatted()                               {}
