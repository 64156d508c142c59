package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func barCells(pct float64, width int) (float64, int, int) {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return pct, filled, width - filled
}

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored by ProgressStyle.
func RenderProgress(pct float64, width int) string {
	pct, filled, empty := barCells(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)
	return fmt.Sprintf("[%s] %3.0f%%", ProgressStyle(pct).Render(bar), pct*100)
}

// RenderCompactBar renders the bar without brackets or percentage, for the
// dashboard header. dim renders it in the muted color.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct, filled, empty := barCells(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)
	if dim {
		return StyleDim.Render(bar)
	}
	return ProgressStyle(pct).Render(bar)
}
