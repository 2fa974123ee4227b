package wander

import (
	"context"
	"sync"
	"time"
)

// scriptedRandom replays fixed answers. Unscripted calls fall back to lo and true.
type scriptedRandom struct {
	ints  []int
	bools []bool
	calls int
}

func (r *scriptedRandom) IntRange(lo, hi int) int {
	r.calls++
	if len(r.ints) == 0 {
		return lo
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (r *scriptedRandom) Bool() bool {
	r.calls++
	if len(r.bools) == 0 {
		return true
	}
	v := r.bools[0]
	r.bools = r.bools[1:]
	return v
}

// extremeRandom always answers with one end of the range.
type extremeRandom struct {
	high bool
}

func (r extremeRandom) IntRange(lo, hi int) int {
	if r.high {
		return hi
	}
	return lo
}

func (r extremeRandom) Bool() bool { return r.high }

type move struct {
	DX, DY int
}

type recordingMover struct {
	mu    sync.Mutex
	moves []move
	err   error
}

func (m *recordingMover) Move(dx, dy int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.moves = append(m.moves, move{DX: dx, DY: dy})
	return nil
}

func (m *recordingMover) snapshot() []move {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]move(nil), m.moves...)
}

type recordingReporter struct {
	moved   []Displacement
	waiting []time.Duration
	resumed int
}

func (r *recordingReporter) Moved(d Displacement, _ int) {
	r.moved = append(r.moved, d)
}

func (r *recordingReporter) Waiting(d time.Duration, _ int) {
	r.waiting = append(r.waiting, d)
}

func (r *recordingReporter) Resumed(int) {
	r.resumed++
}

type recordingSleeper struct {
	slept []time.Duration
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.slept = append(s.slept, d)
	return ctx.Err()
}
