package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/quotabank/internal/cli/formatter"
	"github.com/alexanderramin/quotabank/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// quotabankHuhTheme returns a huh theme using the Gruvbox palette.
func quotabankHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// newQuotaForm builds the single-field quota editor. value holds the
// current quota on entry and the typed text on completion.
func newQuotaForm(value *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Daily quota").
				Description(fmt.Sprintf("Whole number, clamped to %d-%d", domain.MinDailyQuota, domain.MaxDailyQuota)).
				Placeholder(strconv.Itoa(domain.DefaultDailyQuota)).
				CharLimit(4).
				Value(value).
				Validate(validateQuota),
		),
	).WithTheme(quotabankHuhTheme()).WithShowHelp(false)
}

// parseQuota converts user input into a quota. Out-of-range numbers are
// accepted here and clamped by the service; numbers too large for an int
// saturate at the nearest bound.
func parseQuota(s string) (int, error) {
	text := strings.TrimSpace(s)
	v, err := strconv.Atoi(text)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(text, "-") {
			return domain.MinDailyQuota, nil
		}
		return domain.MaxDailyQuota, nil
	}
	if err != nil {
		return 0, fmt.Errorf("quota must be a whole number, got %q", s)
	}
	return v, nil
}

func validateQuota(s string) error {
	if _, err := parseQuota(s); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}
