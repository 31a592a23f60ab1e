package recorder

import "TickerScope/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) Record(_ *model.Snapshot) error { return nil }
func (n *NoopRecorder) Close() error                   { return nil }
