package loop

import (
	"fmt"

	"github.com/tomz197/horde/internal/draw"
)

const controlsHelp = "A/D rotate  W thrust  S brake  SPACE drill  F flight mode  R reset  Q quit"

// centered writes lines centred on the canvas area, starting at row.
func (s *Session) centered(row int, lines ...string) {
	width := s.canvas.TerminalWidth()
	for i, line := range lines {
		col := (width-len([]rune(line)))/2 + 1
		if col < 1 {
			col = 1
		}
		s.cw.WriteAt(col, row+i, line)
	}
}

func (s *Session) drawStartScreen() {
	mid := hudRows + s.canvas.TerminalHeight()/2
	s.cw.WriteString(draw.AttrBold)
	s.centered(mid-2, "H O R D E")
	s.cw.WriteString(draw.AttrReset)
	s.centered(mid+1, "Press ENTER to launch")
	s.centered(mid+4, controlsHelp)
}

func (s *Session) drawFinishedScreen() {
	mid := hudRows + s.canvas.TerminalHeight()/2
	title := "CRAFT LOST"
	if s.success {
		title = "LEVEL COMPLETE"
	}
	s.cw.WriteString(draw.AttrBold)
	s.centered(mid-2, title)
	s.cw.WriteString(draw.AttrReset)
	s.centered(mid, fmt.Sprintf("Asteroids destroyed: %d", s.kills))
	s.centered(mid+2, "Press ENTER to launch again")
}

func (s *Session) drawPauseBanner() {
	s.centered(hudRows+2, "- PAUSED -")
}
