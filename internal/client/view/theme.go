// Package view renders clinic records as terminal text. Renderers are pure:
// they take records and a Theme and return a string.
package view

import (
	"strings"

	"github.com/labstack/gommon/color"
)

// Theme applies terminal styles. A disabled theme returns text unchanged.
type Theme struct {
	c *color.Color
}

func NewTheme(colored bool) *Theme {
	c := color.New()
	if colored {
		c.Enable()
	} else {
		c.Disable()
	}
	return &Theme{c: c}
}

// Plain is a theme without styles.
func Plain() *Theme {
	return NewTheme(false)
}

func (t *Theme) Title(s string) string  { return t.c.Bold(s) }
func (t *Theme) Label(s string) string  { return t.c.Grey(s) }
func (t *Theme) Action(s string) string { return t.c.Cyan("[" + s + "]") }
func (t *Theme) Error(s string) string  { return t.c.Red(s) }
func (t *Theme) Active(s string) string { return t.c.Green(s, color.U) }

// StatusClass is the style class of an appointment status.
func StatusClass(status string) string {
	return strings.ToLower(status)
}

// Status colours an appointment status by its class.
func (t *Theme) Status(status string) string {
	switch StatusClass(status) {
	case "scheduled":
		return t.c.Blue(status)
	case "completed":
		return t.c.Green(status)
	case "cancelled":
		return t.c.Red(status)
	}
	return t.c.Yellow(status)
}
