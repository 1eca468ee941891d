package ui

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops
	// secondary labels.
	LayoutCompactWidth = 100

	// LayoutMinCardWidth is the narrowest card the list renders.
	LayoutMinCardWidth = 40

	// LayoutModalWidth is the width of the add/edit and delete modals.
	LayoutModalWidth = 64
)

// Card geometry, in terminal lines.
const (
	cardLinesFull    = 3
	cardLinesCompact = 1
	cardGap          = 1
)

// Chrome lines outside the card viewport: header, command bar, search
// line, and footer.
const chromeLines = 4
