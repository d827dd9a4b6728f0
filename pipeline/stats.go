package pipeline

import (
	"sync/atomic"
	"time"
)

// Summary describes a finished run.
type Summary struct {
	Output    string        `json:"output"`
	Directory bool          `json:"directory"`
	Elapsed   time.Duration `json:"elapsed"`
	Total     int           `json:"total"`     // images found
	Processed int           `json:"processed"` // images written
	Failed    int           `json:"failed"`
	Bytes     int64         `json:"bytes"` // total output size
}

// runStats is updated concurrently by pool workers.
type runStats struct {
	processed atomic.Int64
	failed    atomic.Int64
	bytes     atomic.Int64
}

func (s *runStats) done(n int64) {
	s.processed.Add(1)
	s.bytes.Add(n)
}

func (s *runStats) fail() {
	s.failed.Add(1)
}

func (s *runStats) fill(sum *Summary) {
	sum.Processed = int(s.processed.Load())
	sum.Failed = int(s.failed.Load())
	sum.Bytes = s.bytes.Load()
}
