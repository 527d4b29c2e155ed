package frame

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats summarises how often and how long each system ran.
type SchedulerStats struct {
	SystemCount int
	Frames      uint64
	Systems     []SystemStats
}

// SystemStats holds the timings of one system. Min, Max and Avg are zero
// until the system has run.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// binder is implemented by *Singleton[T].
type binder interface {
	Init(resources *Resources)
}

// registered is a system plus its running timings.
type registered struct {
	system System
	timing SystemStats
}

func (r *registered) observe(d time.Duration) {
	t := &r.timing
	if t.ExecutionCount == 0 || d < t.MinDuration {
		t.MinDuration = d
	}
	t.MaxDuration = max(t.MaxDuration, d)
	t.ExecutionCount++
	t.LastDuration = d
	t.TotalDuration += d
	t.AvgDuration = t.TotalDuration / time.Duration(t.ExecutionCount)
}

// Scheduler runs registered systems in registration order, once per frame.
type Scheduler struct {
	resources *Resources
	systems   []*registered
	frames    uint64
}

// NewScheduler creates a scheduler whose systems share resources.
func NewScheduler(resources *Resources) *Scheduler {
	return &Scheduler{resources: resources}
}

// Resources returns the table systems are bound to.
func (s *Scheduler) Resources() *Resources {
	return s.resources
}

// Register appends a system and binds its exported fields that have an
// Init(*Resources) method, such as Singleton.
func (s *Scheduler) Register(system System) {
	s.bind(system)

	typ := reflect.TypeOf(system)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	s.systems = append(s.systems, &registered{
		system: system,
		timing: SystemStats{Name: typ.Name()},
	})
}

func (s *Scheduler) bind(system System) {
	v := reflect.ValueOf(system)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return
	}
	v = v.Elem()
	for i := range v.NumField() {
		field := v.Field(i)
		if !field.CanSet() || !field.CanAddr() {
			continue
		}
		if b, ok := field.Addr().Interface().(binder); ok {
			b.Init(s.resources)
		}
	}
}

// Once executes every system with the given delta time, then flushes the
// frame's deferred commands.
func (s *Scheduler) Once(dt float64) {
	f := newUpdateFrame(dt, s.frames, s.resources)
	s.frames++

	for _, r := range s.systems {
		start := time.Now()
		r.system.Execute(f)
		r.observe(time.Since(start))
	}

	f.Commands.Flush()
}

// Run executes frames at the given interval until ctx is cancelled, feeding
// each frame the measured wall-clock delta.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			s.Once(dt)
		}
	}
}

// Stats returns a copy of the current timings.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systems)),
	}
	for i, r := range s.systems {
		stats.Systems[i] = r.timing
	}
	return stats
}
