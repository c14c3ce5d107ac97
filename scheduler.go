package canopy

import (
	"slices"
	"strconv"
)

// Animation describes a scheduled, time-bounded progress callback.
//
// Progress receives the linear progress in [0, 1] every Advance once the
// animation is active. Done receives the label after the final Progress call
// with p == 1. Both are optional.
type Animation struct {
	Label    string  // empty for an auto-generated label
	Duration float64 // seconds; negative is treated as 0
	Delay    float64 // seconds between scheduling and activation
	Progress func(p float64)
	Done     func(label string)
}

// animationEntry is a scheduled Animation with its resolved time window.
type animationEntry struct {
	Animation
	seq       uint64
	startTime float64
	endTime   float64
}

// progressAt returns the clamped progress at now. Zero-length windows
// complete immediately.
func (e *animationEntry) progressAt(now float64) float64 {
	if e.Duration == 0 {
		return 1
	}
	p := (now - e.startTime) / e.Duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Scheduler owns the table of running animations. Create one per host and
// pass it to whatever schedules animations; call Advance once per frame
// before drawing.
//
// Scheduler is not safe for concurrent use.
type Scheduler struct {
	entries   map[string]*animationEntry
	now       float64
	seq       uint64
	snapshot  []*animationEntry // reused per Advance
	advancing bool
}

// NewScheduler creates an empty scheduler whose clock starts at 0.
func NewScheduler() *Scheduler {
	return &Scheduler{entries: make(map[string]*animationEntry)}
}

// Now returns the timestamp of the most recent Advance. Newly scheduled
// animations measure their delay from this time.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Schedule registers a and returns its effective label. An existing entry
// with the same label is replaced and its Done callback is never called.
func (s *Scheduler) Schedule(a Animation) string {
	s.seq++
	if a.Label == "" {
		a.Label = "animation_" + strconv.FormatUint(s.seq, 10)
	}
	if a.Duration < 0 {
		a.Duration = 0
	}
	e := &animationEntry{
		Animation: a,
		seq:       s.seq,
		startTime: s.now + a.Delay,
	}
	e.endTime = e.startTime + a.Duration
	s.entries[a.Label] = e
	return a.Label
}

// Add schedules an unlabeled, undelayed animation and returns its label.
func (s *Scheduler) Add(progress func(p float64), duration float64) string {
	return s.Schedule(Animation{Progress: progress, Duration: duration})
}

// Cancel removes the animation with the given label. Its Done callback is
// not called. No-op if the label is unknown.
func (s *Scheduler) Cancel(label string) {
	delete(s.entries, label)
}

// Has reports whether an animation with the given label is scheduled.
func (s *Scheduler) Has(label string) bool {
	_, ok := s.entries[label]
	return ok
}

// seqOf returns the scheduling sequence number of label's entry, or 0 when
// the label is not scheduled.
func (s *Scheduler) seqOf(label string) uint64 {
	if e, ok := s.entries[label]; ok {
		return e.seq
	}
	return 0
}

// Len returns the number of scheduled animations.
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Labels returns the scheduled labels in scheduling order.
func (s *Scheduler) Labels() []string {
	entries := s.sorted(nil)
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	return labels
}

// Clear drops every scheduled animation without calling any callback.
func (s *Scheduler) Clear() {
	clear(s.entries)
}

// Advance moves the clock to now and steps every scheduled animation.
//
// Animations that are not yet active are skipped. Active animations receive
// their progress; those reaching 1 are removed and then their Done callback
// fires. Callbacks may schedule or cancel animations freely: the pass works
// on a snapshot taken before the first callback, new entries wait until the
// next Advance, and entries cancelled or replaced mid-pass are skipped.
func (s *Scheduler) Advance(now float64) {
	if s.advancing {
		logger.Warn("nested Scheduler.Advance ignored", "now", now)
		return
	}
	s.advancing = true
	defer func() { s.advancing = false }()

	s.now = now
	s.snapshot = s.sorted(s.snapshot[:0])
	for i, e := range s.snapshot {
		s.snapshot[i] = nil
		if s.entries[e.Label] != e {
			continue
		}
		if now < e.startTime {
			continue
		}
		p := e.progressAt(now)
		if e.Progress != nil {
			e.Progress(p)
		}
		if p < 1 {
			continue
		}
		// Cancelled or replaced from inside its own progress callback.
		if s.entries[e.Label] != e {
			continue
		}
		delete(s.entries, e.Label)
		if e.Done != nil {
			e.Done(e.Label)
		}
	}
	s.snapshot = s.snapshot[:0]
}

// sorted appends the current entries to buf in scheduling order.
func (s *Scheduler) sorted(buf []*animationEntry) []*animationEntry {
	for _, e := range s.entries {
		buf = append(buf, e)
	}
	slices.SortFunc(buf, func(a, b *animationEntry) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	return buf
}
