package snake

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Glyphs used on the board.
const (
	GlyphHead   = '@'
	GlyphBody   = 'o'
	GlyphFood   = '*'
	GlyphBonus  = '$'
	GlyphBorder = '#'
)

// Frame chrome around the board: a title row and a controls row, each
// boxed, plus the '#' border and one column of padding on either side.
const (
	chromeW = 6
	chromeH = 8
)

// RequiredSize returns the screen size needed to draw a board.
func RequiredSize(board core.Board) (w, h int) {
	return board.Width + chromeW, board.Height + chromeH
}

// Fits reports whether a screen of the given size can hold the board.
func Fits(screenW, screenH int, board core.Board) bool {
	w, h := RequiredSize(board)
	return screenW >= w && screenH >= h
}

// frameRect returns the outer frame centered on the screen.
func frameRect(dst *core.Screen, board core.Board) core.Rect {
	w, h := RequiredSize(board)
	return core.NewRect(max(0, (dst.Width()-w)/2), max(0, (dst.Height()-h)/2), w, h)
}

// Render draws the full game frame for a snapshot.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	if !Fits(dst.Width(), dst.Height(), snap.Board) {
		w, h := RequiredSize(snap.Board)
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorCyan)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d, resize to continue", w, h), core.ColorGray)
		return
	}

	frame := frameRect(dst, snap.Board)
	renderChrome(dst, frame, snap)

	// Board origin inside the '#' border
	bx := frame.X + 3
	by := frame.Y + 4

	for _, c := range snap.Bonus.Cells {
		dst.SetColored(bx+c.X, by+c.Y, GlyphBonus, core.ColorBrightYellow)
	}
	if snap.HasFood {
		dst.SetColored(bx+snap.Food.X, by+snap.Food.Y, GlyphFood, core.ColorRed)
	}
	// Body drawn tail first so the head wins any overlap
	for i := len(snap.Body) - 1; i >= 0; i-- {
		seg := snap.Body[i]
		if i == 0 {
			dst.SetColored(bx+seg.X, by+seg.Y, GlyphHead, core.ColorBrightGreen)
		} else {
			dst.SetColored(bx+seg.X, by+seg.Y, GlyphBody, core.ColorGreen)
		}
	}
}

// renderChrome draws the boxed title row, the board border and the controls row.
func renderChrome(dst *core.Screen, frame core.Rect, snap Snapshot) {
	dst.DrawBox(frame, core.ColorCyan)
	drawSeparator(dst, frame, frame.Y+2)
	drawSeparator(dst, frame, frame.Bottom()-3)

	// Title row
	inner := frame.W - 2
	left := "  SNAKE"
	right := fmt.Sprintf("Score: %d ", snap.Score)
	dst.DrawText(frame.X+1, frame.Y+1, left, core.ColorCyan)
	dst.DrawText(frame.Right()-1-len(right), frame.Y+1, right, core.ColorCyan)
	if snap.Bonus.Active {
		bonus := fmt.Sprintf("$ %d  %.1fs", snap.Bonus.Value, snap.Bonus.Remaining.Seconds())
		if len(left)+len(bonus)+len(right)+2 <= inner {
			dst.DrawText(frame.X+1+(inner-len(bonus))/2, frame.Y+1, bonus, core.ColorBrightYellow)
		}
	}

	// Board border
	border := core.NewRect(frame.X+2, frame.Y+3, snap.Board.Width+2, snap.Board.Height+2)
	for x := border.X; x < border.Right(); x++ {
		dst.SetColored(x, border.Y, GlyphBorder, core.ColorYellow)
		dst.SetColored(x, border.Bottom()-1, GlyphBorder, core.ColorYellow)
	}
	for y := border.Y; y < border.Bottom(); y++ {
		dst.SetColored(border.X, y, GlyphBorder, core.ColorYellow)
		dst.SetColored(border.Right()-1, y, GlyphBorder, core.ColorYellow)
	}

	// Controls row
	controls := "  ← → ↑ ↓ to move   Q to quit"
	if utf8.RuneCountInString(controls) > inner {
		controls = " arrows move  q quit"
	}
	dst.DrawText(frame.X+1, frame.Bottom()-2, controls, core.ColorCyan)
}

// drawSeparator draws a ├───┤ line across the frame at row y.
func drawSeparator(dst *core.Screen, frame core.Rect, y int) {
	dst.SetColored(frame.X, y, '├', core.ColorCyan)
	for x := frame.X + 1; x < frame.Right()-1; x++ {
		dst.SetColored(x, y, '─', core.ColorCyan)
	}
	dst.SetColored(frame.Right()-1, y, '┤', core.ColorCyan)
}

// RenderGameOver draws the final-score box over whatever is on the screen.
func RenderGameOver(dst *core.Screen, score int, won bool) {
	title := "GAME OVER!"
	if won {
		title = "YOU WIN!"
	}
	lines := []string{
		title,
		fmt.Sprintf("Score: %5d", score),
		"",
		"Press ENTER to",
		"continue...",
	}
	renderOverlay(dst, lines)
}

// renderOverlay draws a double-lined box with centered lines.
func renderOverlay(dst *core.Screen, lines []string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}
	boxW := maxLen + 6
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawText(boxX, boxY, "╔"+strings.Repeat("═", boxW-2)+"╗", core.ColorCyan)
	for i := range lines {
		dst.SetColored(boxX, boxY+1+i, '║', core.ColorCyan)
		dst.SetColored(boxX+boxW-1, boxY+1+i, '║', core.ColorCyan)
	}
	dst.DrawText(boxX, boxY+boxH-1, "╚"+strings.Repeat("═", boxW-2)+"╝", core.ColorCyan)

	for i, l := range lines {
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawText(x, boxY+1+i, l, core.ColorCyan)
	}
}
