package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphs maps each clock character to its 5-row block rendering. Digits are
// 5 cells wide, the colon 3. Anything else renders as a blank glyph.
var glyphs = map[rune][5]string{
	'0': {
		" ███ ",
		"█   █",
		"█   █",
		"█   █",
		" ███ ",
	},
	'1': {
		"  █  ",
		" ██  ",
		"  █  ",
		"  █  ",
		"█████",
	},
	'2': {
		" ███ ",
		"█   █",
		"  ██ ",
		"██   ",
		"█████",
	},
	'3': {
		" ███ ",
		"█   █",
		"  ██ ",
		"█   █",
		" ███ ",
	},
	'4': {
		"█   █",
		"█   █",
		"█████",
		"    █",
		"    █",
	},
	'5': {
		"█████",
		"█    ",
		"████ ",
		"    █",
		"████ ",
	},
	'6': {
		" ███ ",
		"█    ",
		"████ ",
		"█   █",
		" ███ ",
	},
	'7': {
		"█████",
		"    █",
		"   █ ",
		"  █  ",
		"  █  ",
	},
	'8': {
		" ███ ",
		"█   █",
		" ███ ",
		"█   █",
		" ███ ",
	},
	'9': {
		" ███ ",
		"█   █",
		" ████",
		"    █",
		" ███ ",
	},
	':': {
		"   ",
		" █ ",
		"   ",
		" █ ",
		"   ",
	},
}

var blankGlyph = [5]string{"     ", "     ", "     ", "     ", "     "}

// bigTimeLines renders a clock string into its 5 glyph rows, unstyled.
func bigTimeLines(clock string) [5]string {
	var lines [5]string
	for _, ch := range clock {
		glyph, ok := glyphs[ch]
		if !ok {
			glyph = blankGlyph
		}
		for i := 0; i < 5; i++ {
			if lines[i] != "" {
				lines[i] += " "
			}
			lines[i] += glyph[i]
		}
	}
	return lines
}

// renderBigTime renders a clock string as styled 5-row block digits.
func renderBigTime(clock string, color lipgloss.Color) string {
	lines := bigTimeLines(clock)
	style := lipgloss.NewStyle().Bold(true).Foreground(color)

	styled := make([]string, 5)
	for i, line := range lines {
		styled[i] = style.Render(line)
	}
	return strings.Join(styled, "\n")
}
