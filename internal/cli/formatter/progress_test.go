package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	tests := []struct {
		name       string
		pct        float64
		width      int
		wantFilled int
		wantPct    string
	}{
		{"empty", 0, 10, 0, "  0%"},
		{"half", 0.5, 10, 5, " 50%"},
		{"full", 1, 10, 10, "100%"},
		{"over clamps", 1.5, 10, 10, "100%"},
		{"negative clamps", -0.5, 10, 0, "  0%"},
		{"tiny width clamps to 2", 0.5, 1, 1, " 50%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripANSI(RenderProgress(tt.pct, tt.width))
			assert.Equal(t, tt.wantFilled, strings.Count(got, filledBlock))
			assert.True(t, strings.HasSuffix(got, tt.wantPct), got)
			assert.True(t, strings.HasPrefix(got, "["))
		})
	}
}

func TestRenderCompactBar(t *testing.T) {
	tests := []struct {
		name  string
		pct   float64
		width int
		dim   bool
	}{
		{"0% normal", 0.0, 10, false},
		{"50% normal", 0.5, 10, false},
		{"100% normal", 1.0, 10, false},
		{"50% dimmed", 0.5, 10, true},
		{"over 100% clamps", 1.5, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderCompactBar(tt.pct, tt.width, tt.dim)
			assert.NotContains(t, got, "[")
			assert.NotContains(t, got, "%")
			assert.Equal(t, tt.width, strings.Count(stripANSI(got), filledBlock)+strings.Count(stripANSI(got), emptyBlock))
		})
	}
}

func TestProgressStyle(t *testing.T) {
	assert.Equal(t, StyleRed, ProgressStyle(0.1))
	assert.Equal(t, StyleYellow, ProgressStyle(0.5))
	assert.Equal(t, StyleGreen, ProgressStyle(0.9))
}
