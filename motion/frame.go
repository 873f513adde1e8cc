package motion

import (
	"math"
	"sync"
	"time"

	"github.com/automoto/mascot/config"
)

// FrameHandle identifies a requested frame callback.
type FrameHandle uint64

// FrameCallback receives the timestamp of the frame it runs in.
type FrameCallback func(now time.Time)

// Scheduler runs a callback once, before the next redraw.
type Scheduler interface {
	RequestFrame(cb FrameCallback) FrameHandle
	CancelFrame(h FrameHandle)
}

type queuedFrame struct {
	handle FrameHandle
	cb     FrameCallback
}

// FrameQueue is a Scheduler pumped by whatever owns the display loop.
// Callbacks requested while a pump is running wait for the next pump.
type FrameQueue struct {
	mu      sync.Mutex
	next    FrameHandle
	pending []queuedFrame
	live    map[FrameHandle]struct{}
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{live: make(map[FrameHandle]struct{})}
}

func (q *FrameQueue) RequestFrame(cb FrameCallback) FrameHandle {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.next++
	h := q.next
	q.pending = append(q.pending, queuedFrame{handle: h, cb: cb})
	q.live[h] = struct{}{}
	return h
}

func (q *FrameQueue) CancelFrame(h FrameHandle) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.live, h)
	for i, f := range q.pending {
		if f.handle == h {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			break
		}
	}
}

// Pump runs every callback queued before the call and returns how many ran.
func (q *FrameQueue) Pump(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	ran := 0
	for _, f := range batch {
		q.mu.Lock()
		_, ok := q.live[f.handle]
		delete(q.live, f.handle)
		q.mu.Unlock()
		if !ok {
			continue
		}
		f.cb(now)
		ran++
	}
	return ran
}

// Pending reports how many callbacks wait for the next pump.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// ClampDelta sanitizes a raw delta and caps it at max seconds.
func ClampDelta(raw, max float64) float64 {
	return math.Min(SanitizeDelta(raw), max)
}

// FrameDriver steps a Simulation once per frame.
type FrameDriver struct {
	mu       sync.Mutex
	sim      *Simulation
	sched    Scheduler
	reduced  func() bool
	onStep   func(State)
	maxDelta float64

	running bool
	handle  FrameHandle
	hasPrev bool
	prev    time.Time

	lastDelta float64
	frames    uint64
}

// NewFrameDriver creates a stopped driver. reducedMotion may be nil.
func NewFrameDriver(sim *Simulation, sched Scheduler, reducedMotion func() bool) *FrameDriver {
	if reducedMotion == nil {
		reducedMotion = func() bool { return false }
	}
	return &FrameDriver{
		sim:      sim,
		sched:    sched,
		reduced:  reducedMotion,
		maxDelta: config.Frame.MaxDeltaTime,
	}
}

// SetMaxDelta overrides the per-frame delta cap in seconds.
func (d *FrameDriver) SetMaxDelta(max float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.maxDelta = max
}

// OnStep registers a hook called with the new state after every step.
func (d *FrameDriver) OnStep(fn func(State)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onStep = fn
}

// Start begins requesting frames. Starting a running driver does nothing.
func (d *FrameDriver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return
	}
	d.running = true
	d.hasPrev = false
	d.handle = d.sched.RequestFrame(d.frame)
}

// Stop cancels the pending frame; no callback runs after Stop returns.
func (d *FrameDriver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return
	}
	d.running = false
	d.sched.CancelFrame(d.handle)
	d.handle = 0
}

func (d *FrameDriver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.running
}

// LastDelta is the clamped delta of the most recent frame, in seconds.
func (d *FrameDriver) LastDelta() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastDelta
}

// Frames counts frame callbacks since construction, stepped or not.
func (d *FrameDriver) Frames() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

func (d *FrameDriver) frame(now time.Time) {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	// keep the loop alive regardless of what happens below
	d.handle = d.sched.RequestFrame(d.frame)
	d.frames++

	if !d.hasPrev {
		d.hasPrev = true
		d.prev = now
		d.mu.Unlock()
		return
	}
	dt := ClampDelta(now.Sub(d.prev).Seconds(), d.maxDelta)
	d.prev = now
	d.lastDelta = dt
	onStep := d.onStep
	d.mu.Unlock()

	if d.reduced() {
		return
	}
	st := d.sim.Step(dt)
	if onStep != nil {
		onStep(st)
	}
}
