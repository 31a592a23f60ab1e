package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"TickerScope/internal/analyzer"
	"TickerScope/internal/recorder"
	"TickerScope/internal/report"
)

// Scheduler re-analyzes a watch list of symbols on a cron schedule, printing
// each snapshot and recording it.
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Recorder recorder.Recorder
	Symbols  []string
	Period   string
}

// New creates a new Scheduler.
func New(an *analyzer.Analyzer, rec recorder.Recorder, symbols []string, period string) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: an,
		Recorder: rec,
		Symbols:  symbols,
		Period:   period,
	}
}

// Register adds the watch task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.runAll); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the watch task immediately (for manual trigger / startup).
func (s *Scheduler) RunNow() {
	s.runAll()
}

func (s *Scheduler) runAll() {
	log.Printf("[INFO] running watch task for %d symbols", len(s.Symbols))
	for _, sym := range s.Symbols {
		result := s.Analyzer.Analyze(sym, s.Period)
		if result.Err != "" {
			log.Printf("[ERROR] watch %s: %s", sym, result.Err)
			continue
		}
		fmt.Print(report.FormatSnapshot(result.Snapshot))
		if err := s.Recorder.Record(result.Snapshot); err != nil {
			log.Printf("[ERROR] record snapshot %s: %v", sym, err)
		}
	}
}
