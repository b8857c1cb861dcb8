// Package gui mirrors a throttled subset of the price stream into a display
// file so a human can watch the feed without being flooded.
package gui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"main/internal/bus"
	"main/internal/obs"
	"main/internal/pricing"
)

const (
	DefaultThrottleMS = 300
	DefaultMaxUpdates = 100
)

// Service listens to prices and appends at most one row per throttle window,
// up to maxUpdates rows in total. Time is read as millisecond-of-second, so
// elapsed time compensates for the once-a-second wraparound.
type Service struct {
	bus.NopListener[pricing.Price]

	w        io.Writer
	metrics  *obs.Metrics
	nowMS    func() int64
	throttle int64

	lastMS    int64
	primed    bool
	remaining int
}

func NewService(w io.Writer, throttleMS int64, maxUpdates int, metrics *obs.Metrics) *Service {
	if throttleMS <= 0 {
		throttleMS = DefaultThrottleMS
	}
	if maxUpdates <= 0 {
		maxUpdates = DefaultMaxUpdates
	}
	return &Service{
		w:         w,
		metrics:   metrics,
		nowMS:     func() int64 { return int64(time.Now().Nanosecond() / int(time.Millisecond)) },
		throttle:  throttleMS,
		remaining: maxUpdates,
	}
}

// SetClock replaces the millisecond-of-second clock.
func (s *Service) SetClock(nowMS func() int64) {
	s.nowMS = nowMS
}

func (s *Service) ProcessAdd(p pricing.Price) {
	if s.remaining == 0 {
		return
	}
	now := s.nowMS()
	if s.primed {
		elapsed := now
		for elapsed < s.lastMS {
			elapsed += 1000
		}
		if elapsed-s.lastMS < s.throttle {
			return
		}
	}
	s.lastMS = now
	s.primed = true
	s.remaining--
	fmt.Fprintf(s.w, "%d,%s\n", now, strings.Join(p.Row(), ","))
	s.metrics.IncGUIWrite()
}
