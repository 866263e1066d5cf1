package simulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cubescene/core"
	"cubescene/rendering"
)

// pausedWait bounds how long a paused loop blocks on input before it checks
// for settings updates and cancellation again
const pausedWait = 100 * time.Millisecond

// Loop drives the scene: poll input, advance one tick, draw, repeat.
// Everything it touches runs on the goroutine that calls Run.
type Loop struct {
	scene    *core.Scene
	renderer rendering.Renderer
	animator Animator
	clock    *Clock
	log      *slog.Logger

	updates <-chan func(*core.Scene)

	frames    int
	lastStats time.Time
	FPS       float64
}

// NewLoop wires a scene to a renderer. clock may be nil.
func NewLoop(scene *core.Scene, r rendering.Renderer, clock *Clock, log *slog.Logger) *Loop {
	if clock == nil {
		clock = NewClock(nil)
	}
	return &Loop{
		scene:     scene,
		renderer:  r,
		clock:     clock,
		log:       log,
		lastStats: clock.Now(),
	}
}

// WithUpdates makes the loop apply functions received on ch between ticks
func (l *Loop) WithUpdates(ch <-chan func(*core.Scene)) *Loop {
	l.updates = ch
	return l
}

// Run blocks until the window closes or ctx is done
func (l *Loop) Run(ctx context.Context) error {
	l.log.Info("render loop started")
	defer l.log.Info("render loop stopped")

	for !l.renderer.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.applyUpdates()

		if l.scene.State.Paused {
			l.clock.Pause()
			l.renderer.WaitEvents(pausedWait)
			continue
		}

		l.renderer.PollEvents()
		if l.scene.State.Paused {
			// The frame on screen stays until the loop resumes
			continue
		}
		l.clock.Resume()
		l.Tick()
	}
	return nil
}

// Tick advances the scene once and draws it
func (l *Loop) Tick() {
	l.animator.Update(l.scene, l.clock.Seconds())
	l.renderer.Draw(l.scene)
	l.countFrame()
}

func (l *Loop) applyUpdates() {
	if l.updates == nil {
		return
	}
	for {
		select {
		case apply := <-l.updates:
			apply(l.scene)
		default:
			return
		}
	}
}

func (l *Loop) countFrame() {
	l.frames++
	now := l.clock.Now()
	elapsed := now.Sub(l.lastStats)
	if elapsed < time.Second {
		return
	}

	l.FPS = float64(l.frames) / elapsed.Seconds()
	l.frames = 0
	l.lastStats = now

	selected := l.scene.SelectedCount()
	l.log.Debug("frame stats", "fps", l.FPS, "selected", selected, "camera_z", l.scene.State.Camera.Position.Z())
	if s, ok := l.renderer.(rendering.StatusSetter); ok {
		s.SetStatus(fmt.Sprintf("%.0f fps | %d selected", l.FPS, selected))
	}
	if s, ok := l.renderer.(rendering.StatsReporter); ok {
		s.ReportStats(rendering.FrameStats{FPS: l.FPS, Selected: selected, Total: len(l.scene.Cubes)})
	}
}
