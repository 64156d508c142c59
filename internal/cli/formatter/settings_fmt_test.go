package formatter

import (
	"testing"

	"github.com/alexanderramin/quotabank/internal/settings"
	"github.com/stretchr/testify/assert"
)

func TestFormatSettings(t *testing.T) {
	s := settings.Settings{DBPath: "/data/q.db", TickIntervalMs: 500, LogUseCases: true}

	out := stripANSI(FormatSettings("/cfg/settings.toml", true, s))
	assert.Contains(t, out, "settings file /cfg/settings.toml")
	assert.Contains(t, out, "status loaded")
	assert.Contains(t, out, "/data/q.db")
	assert.Contains(t, out, "500")
	assert.Contains(t, out, "true")

	out = stripANSI(FormatSettings("/cfg/settings.toml", false, s))
	assert.Contains(t, out, "using defaults")
}
