package artillery

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-artillery/internal/core"
	"github.com/vovakirdan/tui-artillery/internal/games/artillery/sim"
)

// quadrants maps a 2x2 coverage bitmask to a block glyph.
// Bit 0 = upper-left, 1 = upper-right, 2 = lower-left, 3 = lower-right.
var quadrants = [16]rune{
	' ', '▘', '▝', '▀', '▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜', '▄', '▙', '▟', '█',
}

const (
	hudRows    = 1
	grassDepth = 6 // Field pixels below the contour drawn as grass
	smokeChar  = '·'
	sparkChar  = '*'
	emberChar  = '+'
)

// Paint priorities: a higher layer replaces a lower one within a cell.
const (
	layerNone uint8 = iota
	layerEarth
	layerGrass
	layerSmoke
	layerCannon
	layerRocket
	layerParticle
)

// canvas downsamples the field onto terminal cells, two sub-pixels per cell
// in each direction.
type canvas struct {
	cols, rows int
	subW, subH int
	fieldW     int
	fieldH     int
	bits       []uint8
	layer      []uint8
	color      []core.Color
	glyph      []rune
}

func newCanvas(cols, rows, fieldW, fieldH int) *canvas {
	n := cols * rows
	return &canvas{
		cols: cols, rows: rows,
		subW: cols * 2, subH: rows * 2,
		fieldW: fieldW, fieldH: fieldH,
		bits:  make([]uint8, n),
		layer: make([]uint8, n),
		color: make([]core.Color, n),
		glyph: make([]rune, n),
	}
}

// plot sets one sub-pixel.
func (c *canvas) plot(sx, sy int, layer uint8, col core.Color) {
	if sx < 0 || sy < 0 || sx >= c.subW || sy >= c.subH {
		return
	}
	i := (sy/2)*c.cols + sx/2
	bit := uint8(1) << ((sy%2)*2 + sx%2)
	switch {
	case layer > c.layer[i]:
		c.layer[i], c.color[i], c.glyph[i] = layer, col, 0
		c.bits[i] = bit
	case layer == c.layer[i]:
		c.bits[i] |= bit
	}
}

// plotField sets the sub-pixel covering a field point.
func (c *canvas) plotField(p sim.Vec2, layer uint8, col core.Color) {
	c.plot(int(p.X*float64(c.subW)/float64(c.fieldW)), int(p.Y*float64(c.subH)/float64(c.fieldH)), layer, col)
}

// mark puts a whole-cell glyph at a field point.
func (c *canvas) mark(p sim.Vec2, layer uint8, r rune, col core.Color) {
	x := int(p.X * float64(c.cols) / float64(c.fieldW))
	y := int(p.Y * float64(c.rows) / float64(c.fieldH))
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows {
		return
	}
	i := y*c.cols + x
	if layer >= c.layer[i] {
		c.layer[i], c.color[i], c.glyph[i] = layer, col, r
	}
}

// terrain samples the snapshot at the centre of every sub-pixel.
func (c *canvas) terrain(s *sim.TerrainSnapshot) {
	if s == nil {
		return
	}
	for sy := range c.subH {
		fy := (sy*s.H + s.H/2) / c.subH
		for sx := range c.subW {
			fx := (sx*s.W + s.W/2) / c.subW
			if !s.Solid(fx, fy) {
				continue
			}
			if fx < len(s.Contour) && fy < s.Contour[fx]+grassDepth {
				c.plot(sx, sy, layerGrass, core.ColorGrass)
			} else {
				c.plot(sx, sy, layerEarth, core.ColorEarth)
			}
		}
	}
}

// sprite paints every opaque mask pixel through its transform.
func (c *canvas) sprite(m *sim.Mask, t sim.Transform, layer uint8, col core.Color) {
	if m == nil {
		return
	}
	for y := range m.Height() {
		for x := range m.Width() {
			if m.Opaque(x, y) {
				c.plotField(t.Apply(sim.V(float64(x)+0.5, float64(y)+0.5)), layer, col)
			}
		}
	}
}

func (c *canvas) flush(dst *core.Screen, top int) {
	for y := range c.rows {
		for x := range c.cols {
			i := y*c.cols + x
			switch {
			case c.glyph[i] != 0:
				dst.SetColored(x, y+top, c.glyph[i], c.color[i])
			case c.bits[i] != 0:
				dst.SetColored(x, y+top, quadrants[c.bits[i]], c.color[i])
			}
		}
	}
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	if g.world == nil {
		msg := "artillery: no round running"
		if g.err != nil {
			msg = fmt.Sprintf("artillery: %v", g.err)
		}
		lines := wrapText(msg, w)
		top := max(h/2-len(lines)/2, 0)
		for i, line := range lines {
			dst.DrawTextCentered(top+i, line)
		}
		return
	}
	if h <= hudRows {
		return
	}

	f := g.world.Frame()
	if f.Terrain != nil {
		g.terrain = f.Terrain
	} else if g.terrain == nil {
		g.world.RefreshTerrain()
		g.terrain = g.world.Frame().Terrain
	}

	p := g.world.Params()
	lib := g.world.Library()
	cv := newCanvas(w, h-hudRows, p.Width, p.Height)
	cv.terrain(g.terrain)

	for _, s := range f.Smoke {
		cv.mark(s, layerSmoke, smokeChar, core.ColorGray)
	}
	for _, c := range f.Combatants {
		col := TagColor(c.Color)
		cv.sprite(lib.Mask(sim.SpriteBody), c.Body, layerCannon, col)
		cv.sprite(lib.Mask(sim.SpriteGun), c.Gun, layerCannon, col)
	}
	if f.Projectile != nil {
		cv.sprite(lib.Mask(sim.SpriteRocket), f.Projectile.Transform, layerRocket, core.ColorBrightWhite)
		cv.plotField(f.Projectile.Pos, layerRocket, core.ColorBrightWhite)
	}
	for _, pt := range f.Particles {
		r := emberChar
		if pt.Scale > 0.5 {
			r = sparkChar
		}
		cv.mark(pt.Pos, layerParticle, r, particleColor(pt))
	}
	cv.flush(dst, hudRows)

	g.drawHUD(dst, f)

	switch {
	case f.Phase == sim.PhaseRoundOver:
		title := "NO SURVIVORS"
		if res := g.world.Result(); res.Winner >= 0 {
			title = strings.ToUpper(res.Color.String()) + " WINS"
		}
		g.drawCenteredMessage(dst, title, "R: next round   Q: quit")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHUD(dst *core.Screen, f sim.Frame) {
	if f.Phase == sim.PhaseRoundOver {
		dst.DrawText(0, 0, "Round over")
	} else {
		label := fmt.Sprintf("P%d %s", f.HUD.Player+1, f.HUD)
		if g.IsBot(f.HUD.Player) {
			label += "  [CPU]"
		}
		dst.DrawTextColored(0, 0, label, TagColor(f.HUD.Color))
	}

	status := fmt.Sprintf("shots %d  alive %d", g.world.Result().Shots, sim.AliveCount(g.world.Combatants()))
	if f.Phase == sim.PhaseLaunched {
		status = "in flight  " + status
	}
	dst.DrawText(dst.Width()-len(status), 0, status)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// particleColor fades a particle from yellow through orange to red.
func particleColor(p sim.Particle) core.Color {
	switch {
	case p.Color.A > 170:
		return core.ColorBrightYellow
	case p.Color.A > 85:
		return core.ColorOrange
	default:
		return core.ColorRed
	}
}

// TagColor maps a combatant colour to a terminal colour.
func TagColor(c sim.ColorTag) core.Color {
	switch c {
	case sim.Red:
		return core.ColorRed
	case sim.Green:
		return core.ColorGreen
	case sim.Blue:
		return core.ColorBlue
	case sim.Purple:
		return core.ColorPurple
	case sim.Orange:
		return core.ColorOrange
	case sim.Indigo:
		return core.ColorIndigo
	case sim.Yellow:
		return core.ColorYellow
	case sim.SaddleBrown:
		return core.ColorBrown
	case sim.Tomato:
		return core.ColorTomato
	case sim.Turquoise:
		return core.ColorTurquoise
	default:
		return core.ColorWhite
	}
}

// wrapText breaks s into lines of at most width runes, at spaces where it
// can and mid-word otherwise. Paths in error messages have no spaces.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		r := []rune(word)
		if len(cur) > 0 && len(cur)+1+len(r) <= width {
			cur = append(append(cur, ' '), r...)
			continue
		}
		if len(cur) > 0 {
			lines = append(lines, string(cur))
			cur = nil
		}
		for len(r) > width {
			lines = append(lines, string(r[:width]))
			r = r[width:]
		}
		cur = r
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
