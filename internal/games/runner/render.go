package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	ActorBody    = '█'
	ActorHead    = '◆'
	ActorLeg1    = '╱'
	ActorLeg2    = '╲'
	GroundChar   = '═'
	GroundMark   = '╪'
	SidewalkChar = '─'
)

// groundPeriod is the spacing of ground marks in world units. It divides the
// default world width, so wrapping the scroll offset leaves no seam.
const groundPeriod = 64

// viewport maps world units to screen cells. Row 0 is the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(s Snapshot, dst *core.Screen) viewport {
	return viewport{
		sx:  float64(dst.Width()) / s.WorldW,
		sy:  float64(dst.Height()-1) / s.WorldH,
		top: 1,
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// rect converts a world box to cells, never smaller than one cell.
func (v viewport) rect(b core.Box) core.Rect {
	x0, y0 := v.col(b.X), v.row(b.Y)
	x1 := int(math.Ceil(b.Right()*v.sx)) - 1
	y1 := v.top + int(math.Ceil(b.Bottom()*v.sy)) - 1
	return core.NewRect(x0, y0, max(1, x1-x0+1), max(1, y1-y0+1))
}

// Render draws the current snapshot to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.Snapshot()
	v := newViewport(s, dst)

	g.drawGround(dst, v, s)
	for _, o := range s.Obstacles {
		dst.DrawRectColored(v.rect(o.Bounds()), o.Glyph, o.Color)
	}
	g.drawActor(dst, v, s)
	g.drawHUD(dst, s)

	switch {
	case s.Phase == core.PhaseIdle:
		drawCenteredMessage(dst, g.Title(), "Press Space to start")
	case s.Phase == core.PhaseOver:
		title := "GAME OVER"
		if s.NewHigh {
			title = "NEW HIGH SCORE!"
		}
		drawCenteredMessage(dst, title,
			fmt.Sprintf("Score: %d  Best: %d  |  Space/R restart, B menu", s.Score, s.HighScore))
	case s.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawGround renders the ground line with marks anchored in world space,
// so the texture scrolls with ScrollX.
func (g *Game) drawGround(dst *core.Screen, v viewport, s Snapshot) {
	groundRow := v.row(s.GroundY)
	for x := 0; x < dst.Width(); x++ {
		wx := float64(x)/v.sx - s.ScrollX
		ch := GroundChar
		if int(math.Floor(wx/groundPeriod)) != int(math.Floor((wx-1/v.sx)/groundPeriod)) {
			ch = GroundMark
		}
		dst.SetColored(x, groundRow, ch, core.ColorGray)
	}
	for y := groundRow + 1; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if (x+y+v.col(-s.ScrollX))%7 == 0 {
				dst.SetColored(x, y, '·', core.ColorGray)
			}
		}
	}

	if s.Sidewalk > 0 {
		dst.DrawHLine(0, v.row(s.GroundY-s.Sidewalk), dst.Width(), SidewalkChar)
	}
}

// drawActor renders the runner. Larger viewports get a body fill, the head
// and animated legs.
func (g *Game) drawActor(dst *core.Screen, v viewport, s Snapshot) {
	r := v.rect(s.Actor)
	color := core.ColorBrightCyan
	switch s.Pose {
	case PoseHit:
		color = core.ColorBrightRed
	case PoseDoubleJump:
		color = core.ColorBrightMagenta
	}

	dst.DrawRectColored(r, ActorBody, color)
	dst.SetColored(r.Right()-1, r.Y, ActorHead, color)

	if r.H < 2 {
		return
	}
	legs := r.Bottom() - 1
	for x := r.X; x < r.Right(); x++ {
		dst.Set(x, legs, ' ')
	}
	switch {
	case s.Pose != PoseRunning:
		dst.SetColored(r.X, legs, ActorLeg1, color)
		dst.SetColored(r.Right()-1, legs, ActorLeg2, color)
	case (s.Tick/5)%2 == 0:
		dst.SetColored(r.X, legs, ActorLeg1, color)
		dst.SetColored(r.Right()-1, legs, ActorLeg2, color)
	default:
		mid := r.X + r.W/2
		dst.SetColored(mid, legs, ActorLeg1, color)
		dst.SetColored(min(mid+1, r.Right()-1), legs, ActorLeg2, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen, s Snapshot) {
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorBrightWhite)
	hi := fmt.Sprintf(" HI: %d ", s.HighScore)
	dst.DrawTextColored(14+len(fmt.Sprint(s.Score)), 0, hi, core.ColorYellow)

	speed := fmt.Sprintf(" Spd: %.2f ", s.Speed)
	dst.DrawText(dst.Width()-len(speed)-2, 0, speed)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	tw, sw := len([]rune(title)), len([]rune(subtitle))
	boxW := min(max(tw, sw)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-tw)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-sw)/2, boxY+3, subtitle)
}
