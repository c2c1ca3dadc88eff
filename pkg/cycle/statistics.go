package cycle

import (
	"sync/atomic"
)

// Statistics tracks container activity. Counters are atomic so a metrics
// scraper may read them while the owning goroutine mutates the container.
type Statistics struct {
	inserts       atomic.Int64
	erases        atomic.Int64
	reallocations atomic.Int64
	frontShifts   atomic.Int64
	outOfRange    atomic.Int64
	maxSize       atomic.Int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{}
}

// Insert records n inserted elements and the resulting size.
func (s *Statistics) Insert(n, size int) {
	s.inserts.Add(int64(n))
	s.observeSize(size)
}

// Erase records n erased elements.
func (s *Statistics) Erase(n int) {
	s.erases.Add(int64(n))
}

// Reallocation records a move to a new backing block.
func (s *Statistics) Reallocation() {
	s.reallocations.Add(1)
}

// FrontShift records an insertion or erasure served by moving start.
func (s *Statistics) FrontShift() {
	s.frontShifts.Add(1)
}

// OutOfRange records a rejected checked access.
func (s *Statistics) OutOfRange() {
	s.outOfRange.Add(1)
}

func (s *Statistics) observeSize(size int) {
	for {
		current := s.maxSize.Load()
		if int64(size) <= current || s.maxSize.CompareAndSwap(current, int64(size)) {
			return
		}
	}
}

// Inserts returns the total number of inserted elements.
func (s *Statistics) Inserts() int64 { return s.inserts.Load() }

// Erases returns the total number of erased elements.
func (s *Statistics) Erases() int64 { return s.erases.Load() }

// Reallocations returns how many times the backing block was replaced.
func (s *Statistics) Reallocations() int64 { return s.reallocations.Load() }

// FrontShifts returns how many front insertions/erasures moved start instead of data.
func (s *Statistics) FrontShifts() int64 { return s.frontShifts.Load() }

// OutOfRangeErrors returns how many checked accesses were rejected.
func (s *Statistics) OutOfRangeErrors() int64 { return s.outOfRange.Load() }

// MaxSize returns the largest size the container has reached.
func (s *Statistics) MaxSize() int64 { return s.maxSize.Load() }

// Reset sets all counters to zero.
func (s *Statistics) Reset() {
	s.inserts.Store(0)
	s.erases.Store(0)
	s.reallocations.Store(0)
	s.frontShifts.Store(0)
	s.outOfRange.Store(0)
	s.maxSize.Store(0)
}

// StatsSummary is a snapshot of all statistics.
type StatsSummary struct {
	Inserts       int64 `json:"inserts"`
	Erases        int64 `json:"erases"`
	Reallocations int64 `json:"reallocations"`
	FrontShifts   int64 `json:"front_shifts"`
	OutOfRange    int64 `json:"out_of_range"`
	MaxSize       int64 `json:"max_size"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Inserts:       s.Inserts(),
		Erases:        s.Erases(),
		Reallocations: s.Reallocations(),
		FrontShifts:   s.FrontShifts(),
		OutOfRange:    s.OutOfRangeErrors(),
		MaxSize:       s.MaxSize(),
	}
}
