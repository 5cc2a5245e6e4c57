package sokoban

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/engine"
)

const (
	hudHeight    = 2 // title + blank line
	footerHeight = 2 // blank line + key hints
)

// Element colours.
const (
	colorWall          = core.ColorGray
	colorFloor         = core.ColorDefault
	colorTarget        = core.ColorYellow
	colorCrate         = core.ColorOrange
	colorCrateOnTarget = core.ColorBrightGreen
	colorPlayer        = core.ColorBrightCyan
	colorTitle         = core.ColorCyan
	colorHint          = core.ColorGray
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	g.ensureStarted()
	dst.Clear()

	v := g.ctrl.View()
	cw := g.display.CellWidth
	boardW := v.Map.Width() * cw
	boardH := v.Map.Height()

	area := dst.Bounds()
	area.Y = hudHeight
	area.H -= hudHeight + footerHeight
	board := core.CenteredRect(boardW, boardH, area.W, area.H)
	board.Y += area.Y
	if area.H <= 0 || !board.Within(area) {
		renderTooSmall(dst, boardW, boardH+hudHeight+footerHeight)
		return
	}

	g.renderHUD(dst, v)
	g.renderBoard(dst, v, board.X, board.Y)
	if v.Victory {
		renderVictory(dst, board, v.SelectedLevel == v.LevelCount)
	}
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen, needW, needH int) {
	y := dst.Height() / 2
	dst.DrawTextCenteredWithColor(y-1, "Window too small", core.ColorRed)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()))
	dst.DrawTextCenteredWithColor(y+1, "Please resize terminal", colorHint)
}

// renderHUD draws the title line and the key hints.
func (g *Game) renderHUD(dst *core.Screen, v engine.View) {
	title := fmt.Sprintf("Sokoban | Level %d/%d: %s", v.SelectedLevel, v.LevelCount, v.LevelName)
	dst.DrawTextCenteredWithColor(0, title, colorTitle)

	hint := "arrows/wasd move  r reset  b levels  q quit"
	if v.Victory {
		hint = "enter next level  b levels  q quit"
	}
	dst.DrawTextCenteredWithColor(dst.Height()-1, hint, colorHint)
}

// renderBoard draws the map, crates and player with its top-left at (ox, oy).
func (g *Game) renderBoard(dst *core.Screen, v engine.View, ox, oy int) {
	cw := g.display.CellWidth
	for y, row := range v.Map {
		for x := range row {
			r, c := cellGlyph(v, engine.C(x, y), g.display.Glyphs)
			px := ox + x*cw
			dst.SetWithColor(px, oy+y, r, c)
			pad := ' '
			if row[x] == engine.CellWall {
				pad = r
			}
			for i := 1; i < cw; i++ {
				dst.SetWithColor(px+i, oy+y, pad, c)
			}
		}
	}
}

// renderVictory draws the level complete box over the middle of the board.
func renderVictory(dst *core.Screen, board core.Rect, last bool) {
	lines := []string{"Level complete!", "Press Enter to continue"}
	if last {
		lines[1] = "All levels solved! Enter replays"
	}

	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	box := core.CenteredRect(w+4, len(lines)+2, dst.Width(), 0)
	box.Y = board.Y + board.H/2 - box.H/2

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, colorCrateOnTarget)
	title, hint := lines[0], lines[1]
	dst.DrawTextWithColor(box.X+(box.W-utf8.RuneCountInString(title))/2, box.Y+1, title, colorCrateOnTarget)
	dst.DrawText(box.X+(box.W-utf8.RuneCountInString(hint))/2, box.Y+2, hint)
}

// cellGlyph resolves the rune and colour for one board position.
func cellGlyph(v engine.View, c engine.Coord, glyphs config.Glyphs) (rune, core.Color) {
	cell := v.Map.At(c)
	switch {
	case c == v.Player:
		return firstRune(playerGlyph(v.Facing, glyphs)), colorPlayer
	case v.HasCrate(c) && cell == engine.CellTarget:
		return firstRune(glyphs.CrateOnTarget), colorCrateOnTarget
	case v.HasCrate(c):
		return firstRune(glyphs.Crate), colorCrate
	}

	switch cell {
	case engine.CellWall:
		return firstRune(glyphs.Wall), colorWall
	case engine.CellTarget:
		return firstRune(glyphs.Target), colorTarget
	default:
		return firstRune(glyphs.Floor), colorFloor
	}
}

// playerGlyph returns the player glyph for the facing direction.
func playerGlyph(d engine.Dir, glyphs config.Glyphs) string {
	switch d {
	case engine.DirUp:
		return glyphs.PlayerUp
	case engine.DirLeft:
		return glyphs.PlayerLeft
	case engine.DirRight:
		return glyphs.PlayerRight
	default:
		return glyphs.PlayerDown
	}
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ' '
	}
	return r
}

// BoardLines renders the view as plain text, one rune per cell, using glyphs.
// Positions past the end of a short row are left out.
func BoardLines(v engine.View, glyphs config.Glyphs) []string {
	lines := make([]string, len(v.Map))
	for y, row := range v.Map {
		buf := make([]rune, len(row))
		for x := range row {
			buf[x], _ = cellGlyph(v, engine.C(x, y), glyphs)
		}
		lines[y] = string(buf)
	}
	return lines
}
