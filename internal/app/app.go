// Package app wires the gesture pipeline to a terminal: a tcell screen
// feeds mouse and key events through a dragTracker into the dispatcher,
// which drives a scrollable text pane with flings, pinch zoom and frame
// pacing.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gesturekit/internal/dispatch"
	"github.com/dshills/gesturekit/internal/gesture"
	"github.com/dshills/gesturekit/internal/log"
	"github.com/dshills/gesturekit/internal/pacing"
	"github.com/dshills/gesturekit/internal/sched"
)

// Options configures the application.
type Options struct {
	// Speed is the pacing speed scalar fed to the frame predictor.
	Speed int

	// ModelPath is an optional pacing model file (libsvm text or Lua).
	ModelPath string

	// SmoothScroll animates coarse-unit scroll deltas.
	SmoothScroll bool

	// Lines is the number of content lines to generate.
	Lines int

	// LogFile receives structured logs; empty disables logging, since
	// stderr would corrupt the terminal UI.
	LogFile string

	// LogLevel sets the logging verbosity.
	LogLevel string
}

// App owns the terminal session: the tcell screen, the scheduler loop,
// the dispatcher and its pane.
type App struct {
	opts   Options
	logger *log.Logger

	screen  tcell.Screen
	loop    *sched.Loop
	disp    *dispatch.Dispatcher
	pane    *Pane
	client  *client
	cfg     *pacing.Config
	tracker dragTracker

	logFile *os.File
	running atomic.Bool
}

// New creates the application and wires its components.
func New(opts Options) (*App, error) {
	if opts.Lines <= 0 {
		opts.Lines = 500
	}

	a := &App{opts: opts, logger: log.Null}

	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, &InitError{Component: "log file", Err: err}
		}
		a.logFile = f
		a.logger = log.New(log.Config{
			Level:  log.ParseLevel(opts.LogLevel),
			Output: f,
			Prefix: "gesturekit",
		})
	}

	a.cfg = pacing.NewConfig()
	model := ""
	if opts.ModelPath != "" {
		b, err := os.ReadFile(opts.ModelPath)
		if err != nil {
			return nil, &InitError{Component: "pacing model", Err: err}
		}
		model = string(b)
	}
	a.cfg.Update(model, 0, opts.Speed)
	predictor := pacing.NewPredictor(a.cfg, a.logger)

	a.pane = NewPane(generateLines(opts.Lines))
	a.client = newClient(a.logger)
	a.loop = sched.NewLoop(a.animate, sched.WithLogger(a.logger))
	a.pane.requestAnimate = a.loop.RequestAnimate

	a.disp = dispatch.New(a.pane, a.client,
		dispatch.WithPredictor(predictor),
		dispatch.WithLogger(a.logger),
		dispatch.WithSmoothScroll(opts.SmoothScroll),
		dispatch.WithClock(a.loop.Now),
	)

	return a, nil
}

// Run initializes the terminal and processes events until quit.
// Returns ErrQuit on a normal user exit.
func (a *App) Run() error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	if err := screen.Init(); err != nil {
		return &InitError{Component: "terminal", Err: err}
	}
	a.screen = screen
	screen.EnableMouse()

	if err := a.loop.Start(); err != nil {
		screen.Fini()
		return &InitError{Component: "scheduler", Err: err}
	}

	a.post(a.draw)

	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized by Shutdown.
			return nil
		}
		switch tev := ev.(type) {
		case *tcell.EventKey:
			if quit := a.handleKey(tev); quit {
				return ErrQuit
			}
		case *tcell.EventMouse:
			for _, gev := range a.tracker.Translate(tev, a.loop.Now()) {
				a.dispatch(gev)
			}
		case *tcell.EventResize:
			a.post(a.draw)
		}
	}
}

// Shutdown stops the loop and restores the terminal. Safe to call more
// than once and from any goroutine.
func (a *App) Shutdown() {
	if !a.running.CompareAndSwap(true, false) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := a.loop.Stop(ctx); err != nil {
		a.logger.Warn("loop stop: %v", err)
	}

	if a.screen != nil {
		a.screen.Fini()
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
		return true
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return true
	case ev.Key() == tcell.KeyRune && (ev.Rune() == '+' || ev.Rune() == '='):
		a.postPinch(1.1)
	case ev.Key() == tcell.KeyRune && ev.Rune() == '-':
		a.postPinch(0.9)
	default:
		a.dispatch(gesture.Key{Time: a.loop.Now(), Modifiers: modifiersFor(ev.Modifiers())})
	}
	return false
}

// dispatch marshals one gesture event onto the loop goroutine.
func (a *App) dispatch(ev gesture.Event) {
	a.post(func() {
		a.disp.HandleEvent(ev)
		a.draw()
	})
}

// postPinch runs a whole pinch sequence at the viewport center.
func (a *App) postPinch(scale float64) {
	now := a.loop.Now()
	w, h := 80, 24
	if a.screen != nil {
		w, h = a.screen.Size()
	}
	center := gesture.Vec{
		X: float64(w) / 2 * unitsPerCell,
		Y: float64(h) / 2 * unitsPerCell,
	}
	base := gesture.Base{Pos: center, GlobalPos: center, Time: now, Device: gesture.DeviceTouchscreen}

	a.post(func() {
		a.disp.HandleEvent(gesture.PinchBegin{Base: base})
		a.disp.HandleEvent(gesture.PinchUpdate{Base: base, Scale: scale})
		a.disp.HandleEvent(gesture.PinchEnd{Base: base})
		a.draw()
	})
}

func (a *App) post(fn func()) {
	if err := a.loop.Post(fn); err != nil {
		a.logger.Warn("post: %v", err)
	}
}

// animate is the loop's per-frame tick: the fling first, then any
// smooth-scroll animation, then a redraw.
func (a *App) animate(now float64) {
	a.disp.Animate(now)
	a.pane.Animate(now)
	a.draw()
}

// draw renders the pane and the status line. Runs only on the loop
// goroutine.
func (a *App) draw() {
	if a.screen == nil {
		return
	}
	a.screen.Clear()

	w, h := a.screen.Size()
	if h < 2 {
		a.screen.Show()
		return
	}
	a.pane.SetSize(w, h-1)

	style := tcell.StyleDefault
	top := a.pane.TopRow()
	left := a.pane.LeftCol()
	for row := 0; row < h-1; row++ {
		idx := top + row
		if idx < 0 || idx >= len(a.pane.lines) {
			continue
		}
		line := a.pane.lines[idx]
		if left < len(line) {
			line = line[left:]
		} else {
			line = ""
		}
		col := 0
		for _, r := range line {
			if col >= w {
				break
			}
			a.screen.SetContent(col, row, r, nil, style)
			col++
		}
	}

	a.drawStatus(w, h-1)
	a.screen.Show()
}

func (a *App) drawStatus(width, row int) {
	stats := a.disp.Stats()
	fling := " "
	if a.disp.FlingActive() {
		fling = "~"
	}
	status := fmt.Sprintf(" %s line %d/%d  zoom %.2f  scrolls %d  frames %d  drag or wheel to scroll, +/- zoom, q quits",
		fling, a.pane.TopRow()+1, len(a.pane.lines), a.pane.Zoom(), stats.ScrollUpdates, a.client.inputFrames)

	style := tcell.StyleDefault.Reverse(true)
	runes := []rune(status)
	for col := 0; col < width; col++ {
		r := ' '
		if col < len(runes) {
			r = runes[col]
		}
		a.screen.SetContent(col, row, r, nil, style)
	}
}

// generateLines builds numbered filler content with varying widths so
// both axes have something to scroll.
func generateLines(n int) []string {
	words := []string{
		"drift", "glide", "momentum", "decay", "anchor", "notch",
		"viewport", "inertia", "flick", "settle",
	}
	lines := make([]string, n)
	for i := range lines {
		var b strings.Builder
		fmt.Fprintf(&b, "%4d  ", i+1)
		for j := 0; j <= i%7; j++ {
			b.WriteString(words[(i+j*3)%len(words)])
			b.WriteByte(' ')
		}
		lines[i] = strings.TrimRight(b.String(), " ")
	}
	return lines
}
