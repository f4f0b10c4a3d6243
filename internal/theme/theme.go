// Package theme holds the persisted colour theme.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Key is the storage key of the theme.
const Key = "@app_theme_v1"

// Mode selects the base palette.
type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	Custom Mode = "custom"
)

// Modes lists the modes in cycling order.
var Modes = []Mode{Dark, Light, Custom}

// DefaultAccent is the accent of a fresh install.
const DefaultAccent = "#1ED760"

var (
	ErrInvalidMode   = errors.New("invalid theme mode")
	ErrInvalidAccent = errors.New("invalid accent colour")
)

// Theme is the user's colour choice.
type Theme struct {
	Mode   Mode   `json:"mode"`
	Accent string `json:"accent"`
}

// Default returns the theme used until a stored one is loaded.
func Default() Theme {
	return Theme{Mode: Dark, Accent: DefaultAccent}
}

// Validate checks the mode and that the accent is a hex colour.
func Validate(t Theme) error {
	switch t.Mode {
	case Light, Dark, Custom:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, t.Mode)
	}
	if _, err := colorful.Hex(t.Accent); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAccent, t.Accent)
	}
	return nil
}

// SetMode returns t with mode m.
func (t Theme) SetMode(m Mode) Theme {
	t.Mode = m
	return t
}

// SetAccent returns t with the given accent, normalized to "#rrggbb".
func (t Theme) SetAccent(accent string) (Theme, error) {
	accent = strings.TrimSpace(accent)
	if !strings.HasPrefix(accent, "#") {
		accent = "#" + accent
	}
	c, err := colorful.Hex(accent)
	if err != nil {
		return t, fmt.Errorf("%w: %q", ErrInvalidAccent, accent)
	}
	t.Accent = c.Hex()
	return t, nil
}

// CycleMode returns t with the next mode of Modes.
func (t Theme) CycleMode() Theme {
	for i, m := range Modes {
		if m == t.Mode {
			return t.SetMode(Modes[(i+1)%len(Modes)])
		}
	}
	return t.SetMode(Modes[0])
}
