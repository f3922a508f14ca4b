package engine

import (
	"sort"
	"time"
)

// FrameFunc receives the frame timestamp
type FrameFunc func(now time.Time)

// FrameID identifies a pending frame callback, zero is never issued
type FrameID uint64

// TimerID identifies an interval timer, zero is never issued
type TimerID uint64

// PointerEvent is a pointer move in screen cell coordinates
type PointerEvent struct {
	X, Y float64
}

// FrameScheduler runs a callback on the next display frame
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

// IntervalScheduler fires a callback at a fixed period
type IntervalScheduler interface {
	SetInterval(every time.Duration, fn func()) TimerID
	ClearInterval(id TimerID)
}

// PointerSource delivers pointer-move events to subscribers
type PointerSource interface {
	SubscribePointer(fn func(PointerEvent)) (unsubscribe func())
}

// MinInterval is the shortest accepted timer period
const MinInterval = time.Millisecond

type interval struct {
	every time.Duration
	next  time.Time
	fn    func()
}

// Loop is the single-threaded host for frame callbacks, interval timers and pointer subscriptions
// Not safe for concurrent use: all methods must be called from the goroutine that drives the loop
type Loop struct {
	clock TimeProvider

	frameSeq   FrameID
	frames     map[FrameID]FrameFunc
	frameOrder []FrameID

	timerSeq TimerID
	timers   map[TimerID]*interval

	pointerSeq uint64
	pointers   map[uint64]func(PointerEvent)

	frameCount uint64
}

// NewLoop creates a loop reading time from clock
func NewLoop(clock TimeProvider) *Loop {
	return &Loop{
		clock:    clock,
		frames:   make(map[FrameID]FrameFunc),
		timers:   make(map[TimerID]*interval),
		pointers: make(map[uint64]func(PointerEvent)),
	}
}

// Now returns the loop clock time
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// --- Frame callbacks ---

// RequestFrame queues fn for the next RunFrame
// Requests made while a frame is running are deferred to the following frame
func (l *Loop) RequestFrame(fn FrameFunc) FrameID {
	l.frameSeq++
	id := l.frameSeq
	l.frames[id] = fn
	l.frameOrder = append(l.frameOrder, id)
	return id
}

// CancelFrame drops a pending callback, unknown or already-run ids are ignored
// The id leaves frameOrder too, so repeated request/cancel between frames does not grow it
func (l *Loop) CancelFrame(id FrameID) {
	if _, ok := l.frames[id]; !ok {
		return
	}
	delete(l.frames, id)
	for i, queued := range l.frameOrder {
		if queued == id {
			l.frameOrder = append(l.frameOrder[:i], l.frameOrder[i+1:]...)
			break
		}
	}
}

// queuedFrames returns the length of the request order list
func (l *Loop) queuedFrames() int {
	return len(l.frameOrder)
}

// RunFrame invokes every callback pending at entry, in request order
func (l *Loop) RunFrame() {
	l.frameCount++
	now := l.clock.Now()

	batch := l.frameOrder
	l.frameOrder = nil

	for _, id := range batch {
		fn, ok := l.frames[id]
		if !ok {
			// Cancelled, possibly by an earlier callback in this batch
			continue
		}
		delete(l.frames, id)
		fn(now)
	}
}

// FrameCount returns the number of frames run so far
func (l *Loop) FrameCount() uint64 {
	return l.frameCount
}

// --- Interval timers ---

// SetInterval fires fn every period starting one period from now
// Periods below MinInterval are raised to MinInterval
func (l *Loop) SetInterval(every time.Duration, fn func()) TimerID {
	if every < MinInterval {
		every = MinInterval
	}
	l.timerSeq++
	id := l.timerSeq
	l.timers[id] = &interval{
		every: every,
		next:  l.clock.Now().Add(every),
		fn:    fn,
	}
	return id
}

// ClearInterval stops a timer, unknown ids are ignored
func (l *Loop) ClearInterval(id TimerID) {
	delete(l.timers, id)
}

// AdvanceTimers fires every timer deadline reached by the current clock time
// Deadlines fire in time order, ties by creation order; a timer that fell behind fires once per missed period
func (l *Loop) AdvanceTimers() int {
	now := l.clock.Now()
	fired := 0

	for {
		t := l.nextDue(now)
		if t == nil {
			return fired
		}
		t.next = t.next.Add(t.every)
		fired++
		t.fn()
	}
}

func (l *Loop) nextDue(now time.Time) *interval {
	var (
		bestID TimerID
		best   *interval
	)
	for id, t := range l.timers {
		if t.next.After(now) {
			continue
		}
		if best == nil || t.next.Before(best.next) || (t.next.Equal(best.next) && id < bestID) {
			bestID, best = id, t
		}
	}
	return best
}

// --- Pointer subscriptions ---

// SubscribePointer registers fn for pointer moves, the returned func removes it and is idempotent
func (l *Loop) SubscribePointer(fn func(PointerEvent)) func() {
	l.pointerSeq++
	id := l.pointerSeq
	l.pointers[id] = fn
	return func() {
		delete(l.pointers, id)
	}
}

// DispatchPointer delivers ev to subscribers in subscription order
func (l *Loop) DispatchPointer(ev PointerEvent) {
	if len(l.pointers) == 0 {
		return
	}
	ids := make([]uint64, 0, len(l.pointers))
	for id := range l.pointers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if fn, ok := l.pointers[id]; ok {
			fn(ev)
		}
	}
}

// --- Introspection ---

// Pending reports outstanding frame callbacks, timers and pointer subscriptions
func (l *Loop) Pending() (frames, timers, pointers int) {
	return len(l.frames), len(l.timers), len(l.pointers)
}

// Step advances timers then runs one frame, the order used by the main loop each display tick
func (l *Loop) Step() {
	l.AdvanceTimers()
	l.RunFrame()
}
