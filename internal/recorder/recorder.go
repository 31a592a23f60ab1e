package recorder

import "TickerScope/internal/model"

// Recorder persists analysis snapshots for later review.
type Recorder interface {
	Record(snap *model.Snapshot) error
	Close() error
}
