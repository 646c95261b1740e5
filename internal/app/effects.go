package app

// UiEffects tracks transient visual flourishes that are not themselves
// state but decay or toggle over time: the title bar's space-freed
// flash, the blinking red current-path indicator, and the scan-progress
// comet.
type UiEffects struct {
	FlashSpaceFreed    bool
	CurrentPathIsRed   bool
	DeletionInProgress bool

	LoadingProgressIndicator uint64
}

// IncrementLoadingProgressIndicator advances the title bar's "comet"
// animation. The original's ticker advances it by 3 per tick.
func (e *UiEffects) IncrementLoadingProgressIndicator() {
	e.LoadingProgressIndicator += 3
}
