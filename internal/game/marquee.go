package game

import "strings"

// marquee is a bar that bounces a block from side to side, one cell per
// Step. It only animates; nothing in the simulation depends on it.
type marquee struct {
	width int
	pos   int
	dir   int
}

func newMarquee(width int) *marquee {
	return &marquee{width: width, dir: 1}
}

// Step moves the block and returns the new frame.
func (m *marquee) Step() string {
	m.pos += m.dir
	if m.pos <= 0 || m.pos >= m.width-1 {
		m.dir = -m.dir
	}
	return m.String()
}

func (m *marquee) String() string {
	return "[" + strings.Repeat(" ", m.pos) + "=" + strings.Repeat(" ", m.width-1-m.pos) + "]"
}
