package views

import (
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/NamesAreOverrated/pattern-timer/pkg/engine"
	"github.com/NamesAreOverrated/pattern-timer/pkg/pattern"
	"github.com/NamesAreOverrated/pattern-timer/pkg/theme"
)

// Circle geometry. Terminal cells are roughly twice as tall as wide, so
// the x axis is sampled at double resolution.
const (
	circleMaxRadius = 4
	circleRows      = 2*circleMaxRadius + 1
)

// breathCircle animates a disc whose radius follows the breath: it grows
// toward full on inhale, shrinks on exhale, and holds in place on hold
// phases. A damped spring smooths the motion between targets.
type breathCircle struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
	kind   pattern.Kind
}

func newBreathCircle() *breathCircle {
	return &breathCircle{
		spring: harmonica.NewSpring(harmonica.FPS(1), 1.2, 1.0),
		pos:    0.5,
		target: 0.5,
	}
}

// step retargets the spring from the engine snapshot and advances one
// tick. Outside a running breathing pattern the circle relaxes to rest.
func (c *breathCircle) step(snap engine.Snapshot) {
	if snap.Visualization != pattern.VisualizationBreathing ||
		snap.Status != engine.StatusRunning {
		c.target = 0.5
	} else {
		c.kind = snap.PhaseKind
		switch snap.PhaseKind {
		case pattern.KindInhale:
			c.target = 1.0
		case pattern.KindExhale:
			c.target = 0.0
		case pattern.KindHold:
			// Hold keeps whatever size the breath reached.
		default:
			c.target = 0.5
		}
	}
	c.pos, c.vel = c.spring.Update(c.pos, c.vel, c.target)
}

// render draws the disc at its current radius, colored by phase kind.
func (c *breathCircle) render(th theme.Theme) string {
	r := 1.0 + c.pos*(circleMaxRadius-1)
	r2 := r * r

	var b strings.Builder
	for y := -circleMaxRadius; y <= circleMaxRadius; y++ {
		for x := -2 * circleMaxRadius; x <= 2*circleMaxRadius; x++ {
			fx := float64(x) / 2
			if fx*fx+float64(y*y) <= r2 {
				b.WriteByte('*')
			} else {
				b.WriteByte(' ')
			}
		}
		if y < circleMaxRadius {
			b.WriteByte('\n')
		}
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(th.KindColor(string(c.kind))))
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
