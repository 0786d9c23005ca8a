package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cellStyle indexes canvasStyles.
type cellStyle uint8

const (
	cellBlank cellStyle = iota
	cellBorder
	cellFocused
	cellDim
	cellTitle
	cellText
	cellControl
	cellGuide
	cellDrop
)

var canvasStyles = [...]lipgloss.Style{
	cellBlank:   lipgloss.NewStyle(),
	cellBorder:  lipgloss.NewStyle().Foreground(colorGray),
	cellFocused: lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
	cellDim:     lipgloss.NewStyle().Foreground(colorDim),
	cellTitle:   lipgloss.NewStyle().Foreground(colorWhite).Bold(true),
	cellText:    lipgloss.NewStyle().Foreground(colorGray),
	cellControl: lipgloss.NewStyle().Foreground(colorYellow),
	cellGuide:   lipgloss.NewStyle().Foreground(colorRed),
	cellDrop:    lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
}

// box is an inclusive rectangle of terminal cells.
type box struct {
	c0, r0, c1, r1 int
}

func (b box) contains(col, row int) bool {
	return col >= b.c0 && col <= b.c1 && row >= b.r0 && row <= b.r1
}

func (b box) width() int  { return b.c1 - b.c0 + 1 }
func (b box) height() int { return b.r1 - b.r0 + 1 }

// canvas is a grid of styled runes that later draws overwrite.
type canvas struct {
	w, h   int
	runes  [][]rune
	styles [][]cellStyle
}

func newCanvas(w, h int) *canvas {
	w, h = max(w, 0), max(h, 0)
	c := &canvas{w: w, h: h, runes: make([][]rune, h), styles: make([][]cellStyle, h)}
	for y := range h {
		c.runes[y] = []rune(strings.Repeat(" ", w))
		c.styles[y] = make([]cellStyle, w)
	}
	return c
}

// set writes one cell. Out-of-range writes are dropped.
func (c *canvas) set(x, y int, r rune, s cellStyle) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.runes[y][x] = r
	c.styles[y][x] = s
}

// text writes s from x, stopping before limit.
func (c *canvas) text(x, y int, s string, st cellStyle, limit int) {
	for _, r := range s {
		if x >= limit {
			return
		}
		c.set(x, y, r, st)
		x++
	}
}

// fill blanks the interior of b.
func (c *canvas) fill(b box) {
	for y := b.r0; y <= b.r1; y++ {
		for x := b.c0; x <= b.c1; x++ {
			c.set(x, y, ' ', cellBlank)
		}
	}
}

// frame draws a rounded border around b.
func (c *canvas) frame(b box, s cellStyle) {
	border := lipgloss.RoundedBorder()
	top, bottom := []rune(border.Top)[0], []rune(border.Bottom)[0]
	left, right := []rune(border.Left)[0], []rune(border.Right)[0]
	for x := b.c0 + 1; x < b.c1; x++ {
		c.set(x, b.r0, top, s)
		c.set(x, b.r1, bottom, s)
	}
	for y := b.r0 + 1; y < b.r1; y++ {
		c.set(b.c0, y, left, s)
		c.set(b.c1, y, right, s)
	}
	c.set(b.c0, b.r0, []rune(border.TopLeft)[0], s)
	c.set(b.c1, b.r0, []rune(border.TopRight)[0], s)
	c.set(b.c0, b.r1, []rune(border.BottomLeft)[0], s)
	c.set(b.c1, b.r1, []rune(border.BottomRight)[0], s)
}

// render joins rows, styling each run of equal style once.
func (c *canvas) render() string {
	var b strings.Builder
	for y := range c.h {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= c.w; x++ {
			if x < c.w && c.styles[y][x] == c.styles[y][start] {
				continue
			}
			run := string(c.runes[y][start:x])
			if s := c.styles[y][start]; s == cellBlank {
				b.WriteString(run)
			} else {
				b.WriteString(canvasStyles[s].Render(run))
			}
			start = x
		}
	}
	return b.String()
}
