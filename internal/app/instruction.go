package app

// Instruction is one message on the scheduler's ordered queue: every
// producer goroutine (input, scanner, ticker, effects) turns its own
// event into an Instruction and enqueues it; only the main goroutine
// ever calls Apply, so App itself never needs locking.
type Instruction interface {
	Apply(a *App)
}

// KeypressInstruction carries one decoded key event from the input
// goroutine.
type KeypressInstruction struct {
	Key Key
}

func (i KeypressInstruction) Apply(a *App) { a.HandleKey(i.Key) }

// ScanEntryInstruction carries one filesystem entry discovered by the
// scanner goroutine.
type ScanEntryInstruction struct {
	AbsPath string
	IsDir   bool
	Size    uint64
}

func (i ScanEntryInstruction) Apply(a *App) {
	a.AddEntryToBaseFolder(i.AbsPath, i.IsDir, i.Size)
}

// ScanCompleteInstruction signals the scanner goroutine has finished
// walking the base path.
type ScanCompleteInstruction struct{}

func (ScanCompleteInstruction) Apply(a *App) { a.FinishLoading() }

// ScanErrorInstruction carries one unreadable scan entry; it is never
// fatal, only counted.
type ScanErrorInstruction struct {
	Path  string
	Cause error
}

func (i ScanErrorInstruction) Apply(a *App) { a.IncrementFailedReads() }

// TickInstruction is sent by the 100ms ticker goroutine; while still
// loading it advances the title bar's comet. The flash-clearing
// instructions below are sent by their own timers, not by ticks.
type TickInstruction struct{}

func (TickInstruction) Apply(a *App) {
	if !a.Loaded {
		a.Effects.IncrementLoadingProgressIndicator()
	}
}

// ResizeInstruction carries a terminal resize event.
type ResizeInstruction struct {
	Width, Height int
}

func (i ResizeInstruction) Apply(a *App) { a.HandleResize(i.Width, i.Height) }

// ClearPathErrorFlashInstruction is enqueued a short delay after a
// PathError, by the effects goroutine, to end the red title flash.
type ClearPathErrorFlashInstruction struct{}

func (ClearPathErrorFlashInstruction) Apply(a *App) { a.ResetPathColor() }

// ClearSpaceFreedFlashInstruction is enqueued a short delay after a
// successful delete, by the effects goroutine, to end the title's
// space-freed highlight.
type ClearSpaceFreedFlashInstruction struct{}

func (ClearSpaceFreedFlashInstruction) Apply(a *App) { a.ResetSpaceFreedFlash() }
