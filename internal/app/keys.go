package app

// Key names the logical key presses the EventRouter understands,
// decoupled from any particular terminal library's event type so
// internal/term is the only package that needs to know about tcell's
// key codes.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyRuneH
	KeyRuneJ
	KeyRuneK
	KeyRuneL
	KeyRuneY
	KeyRuneN
	KeyRuneQ
	KeyCtrlC
)

// HandleKey routes a key press through the per-mode dispatch table,
// dispatching on the active UiMode. There is no zoom feature (no +/-/0
// keys); deletion is bound to Backspace rather than Ctrl-D.
func (a *App) HandleKey(k Key) {
	switch a.Mode.Kind {
	case ModeLoading:
		a.handleKeyLoading(k)
	case ModeNormal:
		a.handleKeyNormal(k)
	case ModeDeleteFile:
		a.handleKeyDeleteFile(k)
	case ModeErrorMessage, ModeWarningMessage:
		a.handleKeyDismissible(k)
	case ModeConfirming:
		a.handleKeyConfirming(k)
	case ModeScreenTooSmall:
		a.handleKeyScreenTooSmall(k)
	}
}

func isMoveRight(k Key) bool    { return k == KeyRight || k == KeyRuneL }
func isMoveLeft(k Key) bool     { return k == KeyLeft || k == KeyRuneH }
func isMoveDown(k Key) bool     { return k == KeyDown || k == KeyRuneJ }
func isMoveUp(k Key) bool       { return k == KeyUp || k == KeyRuneK }
func isExitRequest(k Key) bool  { return k == KeyRuneQ || k == KeyCtrlC }

func (a *App) handleMovement(k Key) bool {
	switch {
	case isMoveRight(k):
		a.MoveSelectedRight()
	case isMoveLeft(k):
		a.MoveSelectedLeft()
	case isMoveDown(k):
		a.MoveSelectedDown()
	case isMoveUp(k):
		a.MoveSelectedUp()
	default:
		return false
	}
	return true
}

func (a *App) handleKeyLoading(k Key) {
	if a.handleMovement(k) {
		return
	}
	switch {
	case k == KeyEnter:
		_ = a.EnterSelected()
	case k == KeyEsc:
		_ = a.GoUp()
	case k == KeyBackspace:
		a.WarnCannotDeleteWhileLoading()
	case isExitRequest(k):
		a.PromptExit()
	}
}

func (a *App) handleKeyNormal(k Key) {
	if a.handleMovement(k) {
		return
	}
	switch {
	case k == KeyEnter:
		_ = a.EnterSelected()
	case k == KeyEsc:
		_ = a.GoUp()
	case k == KeyBackspace:
		a.PromptFileDeletion()
	case isExitRequest(k):
		a.PromptExit()
	}
}

func (a *App) handleKeyDeleteFile(k Key) {
	switch {
	case k == KeyRuneY:
		a.PerformDelete()
	case k == KeyRuneN, k == KeyEsc, isExitRequest(k):
		a.CancelDelete()
	}
}

func (a *App) handleKeyDismissible(Key) {
	a.DismissMessage()
}

// handleKeyConfirming honors only y (confirm) and n/Esc (return to the
// previous mode) — unlike DeleteFile mode, q/Ctrl-C do not also cancel
// here.
func (a *App) handleKeyConfirming(k Key) {
	switch {
	case k == KeyRuneY:
		a.ConfirmYes()
	case k == KeyRuneN, k == KeyEsc:
		a.CancelConfirm()
	}
}

func (a *App) handleKeyScreenTooSmall(k Key) {
	if isExitRequest(k) {
		a.Exit()
	}
}
