package notify

import (
	"fmt"
	"io"

	"github.com/avelle/storefront-cli/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

// Console prints one-shot notifications: successes to out, failures to
// errOut.
type Console struct {
	out     io.Writer
	errOut  io.Writer
	success lipgloss.Style
	failure lipgloss.Style
}

var _ ports.Notifier = (*Console)(nil)

func NewConsole(out, errOut io.Writer) *Console {
	return &Console{
		out:     out,
		errOut:  errOut,
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}

func (c *Console) Success(message string) {
	_, _ = fmt.Fprintln(c.out, c.success.Render("✓ "+message))
}

func (c *Console) Error(message string) {
	_, _ = fmt.Fprintln(c.errOut, c.failure.Render("✗ "+message))
}
