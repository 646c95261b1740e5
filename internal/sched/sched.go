// Package sched runs four concurrent producers — input, scanner, ticker,
// effects — each turning its own events into app.Instruction values and
// funneling them through a single ordered channel that only the main
// goroutine ever drains.
package sched

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/r3ap3r2004/dutree/internal/app"
	"github.com/r3ap3r2004/dutree/internal/scan"
	"github.com/r3ap3r2004/dutree/internal/term"
)

// queueCapacity bounds the instruction channel so a burst of scan
// entries cannot grow unbounded; the scanner goroutine blocks on send
// instead, naturally pacing itself to the main goroutine's drain rate.
const queueCapacity = 256

// Scheduler owns the instruction queue and the goroutines publishing to
// it.
type Scheduler struct {
	instructions chan app.Instruction
	screen       tcell.Screen
	basePath     string

	pathFlashScheduled  bool
	spaceFlashScheduled bool

	cancel context.CancelFunc
}

// New builds a Scheduler over screen, ready to scan basePath once Run is
// called.
func New(screen tcell.Screen, basePath string) *Scheduler {
	return &Scheduler{
		instructions: make(chan app.Instruction, queueCapacity),
		screen:       screen,
		basePath:     basePath,
	}
}

// Run starts the four producer goroutines and blocks, draining the
// instruction queue and applying each one to a until a.Running goes
// false or ctx is canceled. The caller supplies render; Run calls it
// once before draining and again after every applied instruction so the
// screen never lags behind state.
func (s *Scheduler) Run(ctx context.Context, a *app.App, render func()) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	defer cancel()

	go s.runInput(ctx)
	go s.runScanner(ctx)
	go s.runTicker(ctx)

	render()
	for a.Running {
		select {
		case <-ctx.Done():
			return
		case instr := <-s.instructions:
			instr.Apply(a)
			s.maybeScheduleEffectExpiry(a)
			render()
		}
	}
}

// Stop cancels every producer goroutine. Safe to call after Run has
// already returned.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}

func (s *Scheduler) publish(ctx context.Context, instr app.Instruction) {
	select {
	case s.instructions <- instr:
	case <-ctx.Done():
	}
}

// runInput polls tcell for key and resize events and republishes them as
// Instructions.
func (s *Scheduler) runInput(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			if key, ok := term.DecodeKey(e); ok {
				s.publish(ctx, app.KeypressInstruction{Key: key})
			}
		case *tcell.EventResize:
			width, height := e.Size()
			s.publish(ctx, app.ResizeInstruction{Width: width, Height: height})
		}
	}
}

// runScanner walks basePath once, publishing a ScanEntryInstruction per
// discovered entry and a ScanCompleteInstruction when the walk finishes.
// Unreadable entries are silently skipped and counted rather than
// aborting the walk.
func (s *Scheduler) runScanner(ctx context.Context) {
	scan.Walk(s.basePath,
		func(e scan.Entry) {
			s.publish(ctx, app.ScanEntryInstruction{AbsPath: e.AbsPath, IsDir: e.IsDir, Size: e.Size})
		},
		func(path string, err error) {
			s.publish(ctx, app.ScanErrorInstruction{Path: path, Cause: app.NewScanEntryError(path, err)})
		},
	)
	s.publish(ctx, app.ScanCompleteInstruction{})
}

// runTicker fires a TickInstruction every 100ms, driving the loading
// comet and the transient-effect expiry checks.
func (s *Scheduler) runTicker(ctx context.Context) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.publish(ctx, app.TickInstruction{})
		}
	}
}

// effectFlashDuration is how long the red-path and space-freed title
// flashes stay lit before the effects goroutine clears them.
const effectFlashDuration = 250 * time.Millisecond

// maybeScheduleEffectExpiry looks for a freshly-set transient effect and
// schedules its clearing instruction after effectFlashDuration, run on
// its own short-lived goroutine so the main loop never blocks on a
// timer. A bool per effect stops a long-running flash from queuing a
// clear on every single instruction that passes through while it's lit.
func (s *Scheduler) maybeScheduleEffectExpiry(a *app.App) {
	if a.Effects.CurrentPathIsRed && !s.pathFlashScheduled {
		s.pathFlashScheduled = true
		go s.delayedPublish(effectFlashDuration, app.ClearPathErrorFlashInstruction{})
	} else if !a.Effects.CurrentPathIsRed {
		s.pathFlashScheduled = false
	}
	if a.Effects.FlashSpaceFreed && !s.spaceFlashScheduled {
		s.spaceFlashScheduled = true
		go s.delayedPublish(effectFlashDuration, app.ClearSpaceFreedFlashInstruction{})
	} else if !a.Effects.FlashSpaceFreed {
		s.spaceFlashScheduled = false
	}
}

func (s *Scheduler) delayedPublish(d time.Duration, instr app.Instruction) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	<-timer.C
	select {
	case s.instructions <- instr:
	default:
	}
}
