package rendering

// InputSnapshot is the input state a backend read after one poll of its
// window system
type InputSnapshot struct {
	Resized       bool
	Width, Height int

	PointerX, PointerY float64
	Wheel              float64 // pixel delta, see WheelNotch
	Click              bool
	Pause              bool
}

// InputLatch delivers each polled snapshot to a handler exactly once.
// Backends whose key and button state stays latched until the next poll
// (raylib) would otherwise replay a press when dispatching twice per poll.
type InputLatch struct {
	snap    InputSnapshot
	pending bool

	pointerX, pointerY float64
	hasPointer         bool
}

// Latch records the snapshot of a fresh poll, replacing any that was not
// dispatched yet
func (l *InputLatch) Latch(s InputSnapshot) {
	l.snap = s
	l.pending = true
}

// Pending reports whether a latched snapshot awaits dispatch
func (l *InputLatch) Pending() bool {
	return l.pending
}

// Dispatch sends the latched snapshot to h and clears it. Pointer moves are
// only reported when the pointer changed since the last dispatch.
func (l *InputLatch) Dispatch(h InputHandler) {
	if !l.pending || h == nil {
		return
	}
	l.pending = false
	s := l.snap

	if s.Resized {
		h.Resize(s.Width, s.Height)
	}
	if !l.hasPointer || s.PointerX != l.pointerX || s.PointerY != l.pointerY {
		l.pointerX, l.pointerY, l.hasPointer = s.PointerX, s.PointerY, true
		h.PointerMove(s.PointerX, s.PointerY)
	}
	if s.Wheel != 0 {
		h.Wheel(s.Wheel)
	}
	if s.Click {
		h.Click()
	}
	if s.Pause {
		h.Key(KeyPause)
	}
}
