// Package asciicanvas is a fixed size grid of character cells.
package asciicanvas

import (
	"strings"

	"oss.terrastruct.com/util-go/go2"
)

type Canvas struct {
	width int
	grid  [][]string
}

// New returns a canvas of blank cells. Negative sizes yield an empty axis.
func New(width, height int) *Canvas {
	width = go2.Max(width, 0)
	height = go2.Max(height, 0)
	grid := make([][]string, height)
	for i := range grid {
		grid[i] = make([]string, width)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}
	return &Canvas{width: width, grid: grid}
}

func (c *Canvas) Set(x, y int, char string) {
	if c.IsInBounds(x, y) {
		c.grid[y][x] = char
	}
}

func (c *Canvas) Get(x, y int) string {
	if c.IsInBounds(x, y) {
		return c.grid[y][x]
	}
	return ""
}

func (c *Canvas) Fill(char string) {
	for y := range c.grid {
		for x := range c.grid[y] {
			c.grid[y][x] = char
		}
	}
}

func (c *Canvas) IsInBounds(x, y int) bool {
	return y >= 0 && y < len(c.grid) && x >= 0 && x < len(c.grid[y])
}

func (c *Canvas) Width() int {
	return c.width
}

func (c *Canvas) Height() int {
	return len(c.grid)
}

// String joins every row, each terminated by a newline. Blank rows and columns are kept.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.grid {
		b.WriteString(strings.Join(row, ""))
		b.WriteByte('\n')
	}
	return b.String()
}
