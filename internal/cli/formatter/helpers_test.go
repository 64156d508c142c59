package formatter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences so assertions are terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 unit", Plural(1, "unit"))
	assert.Equal(t, "0 units", Plural(0, "unit"))
	assert.Equal(t, "7 units", Plural(7, "unit"))
}

func TestRenderBox_Title(t *testing.T) {
	out := stripANSI(RenderBox("2024-06-10", "body"))
	assert.Contains(t, out, "2024-06-10")
	assert.Contains(t, out, "body")
	assert.Contains(t, out, "╭")
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "TODAY\n─────", stripANSI(Header("today")))
}
