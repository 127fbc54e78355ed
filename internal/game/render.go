package game

import (
	"fmt"
	"strconv"

	"github.com/fusegrid/fusegrid/internal/core"
	"github.com/fusegrid/fusegrid/internal/engine"
)

const (
	cellWidth  = 7 // width of each cell including left border
	cellHeight = 2 // height of each cell including top border
	hudHeight  = 3
)

// MinScreenSize returns the smallest terminal that fits the board plus
// HUD and power-up bar.
func (s *Session) MinScreenSize() (w, h int) {
	size := s.board.Size
	return size*cellWidth + 3, size*cellHeight + hudHeight + 5
}

// RenderOptions carries transient UI state owned by the platform layer:
// the power-up targeting cursor and a one-line status message.
type RenderOptions struct {
	Cursor  *engine.Position // targeting cursor, nil when not targeting
	Armed   engine.PowerUp   // power-up being aimed while Cursor is set
	Message string           // transient status line, may be empty
}

// Render draws the session into the screen buffer.
func (s *Session) Render(dst *core.Screen, opts RenderOptions) {
	dst.Clear()

	size := s.board.Size
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1

	minW, minH := s.MinScreenSize()
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst)
		return
	}

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	s.renderHUD(dst, boardX, boardW)
	s.renderBoard(dst, boardX, boardY, opts)
	s.renderPowerUpBar(dst, boardX, boardY+boardH+1, opts)

	if opts.Message != "" {
		dst.DrawTextCentered(boardY+boardH+2, opts.Message)
	}

	s.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and mode info above the board.
func (s *Session) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "FUSEGRID"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", s.board.Score))

	var goal string
	if s.opts.Endless {
		goal = fmt.Sprintf("Max: %d", s.board.MaxTile)
	} else {
		goal = fmt.Sprintf("Target: %d", s.winTarget())
	}
	goalX := boardX + boardW - len(goal)
	if goalX < boardX {
		goalX = boardX
	}
	dst.DrawText(goalX, 1, goal)

	mode := fmt.Sprintf("%s / %s", ModeTitle(s.modeID()), s.opts.Difficulty)
	dst.DrawText(boardX+(boardW-len(mode))/2, 2, mode)
}

func (s *Session) modeID() string {
	if s.opts.Endless {
		return ModeEndless
	}
	return ModeClassic
}

// renderBoard draws the grid, tiles, swap selection and targeting cursor.
func (s *Session) renderBoard(dst *core.Screen, boardX, boardY int, opts RenderOptions) {
	size := s.board.Size

	// Grid borders.
	for y := 0; y <= size; y++ {
		for x := 0; x <= size; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tiles.
	for _, t := range s.board.Tiles {
		cx := boardX + t.Pos.Col*cellWidth
		cy := boardY + t.Pos.Row*cellHeight + 1

		label := strconv.Itoa(t.Value)
		if len(label) > cellWidth-2 {
			label = label[:cellWidth-2]
		}
		lx := cx + 1 + (cellWidth-1-len(label))/2

		color := tileColor(t.Value)
		if t.ID == s.powerups.SelectedTileID {
			color = core.ColorBrightMagenta
		}
		dst.DrawTextColored(lx, cy, label, color)
	}

	// Targeting cursor sits on top of everything.
	if opts.Cursor != nil {
		cx := boardX + opts.Cursor.Col*cellWidth
		cy := boardY + opts.Cursor.Row*cellHeight + 1
		dst.SetColored(cx+1, cy, '[', core.ColorBrightCyan)
		dst.SetColored(cx+cellWidth-1, cy, ']', core.ColorBrightCyan)
	}
}

// renderPowerUpBar draws the remaining uses for each power-up. The armed
// power-up is highlighted while targeting.
func (s *Session) renderPowerUpBar(dst *core.Screen, x, y int, opts RenderOptions) {
	entries := []struct {
		key   string
		kind  engine.PowerUp
		count int
	}{
		{"1", engine.PowerUpDivider, s.powerups.Divider},
		{"2", engine.PowerUpDoubler, s.powerups.Doubler},
		{"3", engine.PowerUpSwapper, s.powerups.Swapper},
		{"u", engine.PowerUpUndo, s.powerups.Undo},
	}

	for _, e := range entries {
		label := fmt.Sprintf("[%s] %s x%d", e.key, e.kind, e.count)

		color := core.ColorGray
		switch {
		case opts.Cursor != nil && opts.Armed == e.kind:
			color = core.ColorBrightCyan
		case e.count > 0:
			color = core.ColorDefault
		}
		dst.DrawTextColored(x, y, label, color)
		x += len(label) + 2
	}
}

// renderOverlays draws win and game-over banners across the board.
func (s *Session) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerY := boardY + boardH/2

	switch {
	case s.gameOver:
		drawBanner(dst, boardX, centerY, boardW, "GAME OVER", core.ColorBrightRed)
		dst.DrawTextCentered(centerY+1, "Press R to restart, Q to quit")
	case s.won && !s.opts.Endless:
		drawBanner(dst, boardX, centerY, boardW, "YOU WIN!", core.ColorBrightGreen)
		dst.DrawTextCentered(centerY+1, "Keep playing or press R to restart")
	}
}

func drawBanner(dst *core.Screen, boardX, y, boardW int, text string, color core.Color) {
	dst.DrawHLine(boardX, y, boardW, ' ')
	dst.DrawTextColored(boardX+(boardW-len(text))/2, y, text, color)
}

// tileColor maps a tile value to a display color, cycling through warm
// shades as values climb.
func tileColor(value int) core.Color {
	switch {
	case value <= 4:
		return core.ColorWhite
	case value <= 16:
		return core.ColorBrightYellow
	case value <= 64:
		return core.ColorOrange
	case value <= 256:
		return core.ColorBrightRed
	case value <= 1024:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightCyan
	}
}
