// Package transition gives every top-level page the same enter and exit
// treatment: a short fade with a slight scale and blur.
//
// The animation itself belongs to whatever runtime draws the page. This
// package only describes the states and hands them to a [Runtime]; without
// one, content is shown at rest.
package transition

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Style is one visual state of the wrapped content.
type Style struct {
	Opacity float64
	Scale   float64
	BlurPx  float64
}

// CSS renders the style as declarations.
func (s Style) CSS() string {
	return fmt.Sprintf("opacity:%s;transform:scale(%s);filter:blur(%spx)",
		num(s.Opacity), num(s.Scale), num(s.BlurPx))
}

// Easing is a cubic-bezier timing curve through (0,0) and (1,1).
type Easing struct {
	X1, Y1, X2, Y2 float64
}

// CSS renders the curve as a cubic-bezier() timing function.
func (e Easing) CSS() string {
	return fmt.Sprintf("cubic-bezier(%s, %s, %s, %s)", num(e.X1), num(e.Y1), num(e.X2), num(e.Y2))
}

// At returns the eased progress for linear progress p in [0,1].
func (e Easing) At(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}

	cx := 3 * e.X1
	bx := 3*(e.X2-e.X1) - cx
	ax := 1 - cx - bx
	cy := 3 * e.Y1
	by := 3*(e.Y2-e.Y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }

	// Newton first, bisection when the slope flattens out.
	t := p
	for range 8 {
		x := sampleX(t) - p
		if math.Abs(x) < 1e-7 {
			return sampleY(t)
		}
		d := slopeX(t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= x / d
	}

	lo, hi := 0.0, 1.0
	t = p
	for range 50 {
		x := sampleX(t)
		if math.Abs(x-p) < 1e-7 {
			break
		}
		if x < p {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return sampleY(t)
}

// Transition moves content from one style to another.
type Transition struct {
	From     Style
	To       Style
	Duration time.Duration
	Easing   Easing
}

// Sample returns the style at linear progress p, clamped to [0,1].
func (t Transition) Sample(p float64) Style {
	e := t.Easing.At(math.Max(0, math.Min(1, p)))
	return Style{
		Opacity: lerp(t.From.Opacity, t.To.Opacity, e),
		Scale:   lerp(t.From.Scale, t.To.Scale, e),
		BlurPx:  lerp(t.From.BlurPx, t.To.BlurPx, e),
	}
}

// Definition is the full enter/rest/exit description of a page transition.
// ExitStyle is where content ends up when it leaves.
type Definition struct {
	Initial   Style
	Animate   Style
	ExitStyle Style
	Duration  time.Duration
	Easing    Easing
}

// Page is the transition applied when swapping top-level views.
var Page = Definition{
	Initial:   Style{Opacity: 0, Scale: 0.98, BlurPx: 4},
	Animate:   Style{Opacity: 1, Scale: 1, BlurPx: 0},
	ExitStyle: Style{Opacity: 0, Scale: 1.02, BlurPx: 2},
	Duration:  500 * time.Millisecond,
	Easing:    Easing{X1: 0.22, Y1: 1, X2: 0.36, Y2: 1},
}

// Enter is the mount transition.
func (d Definition) Enter() Transition {
	return Transition{From: d.Initial, To: d.Animate, Duration: d.Duration, Easing: d.Easing}
}

// Exit is the unmount transition, starting from the resting state.
func (d Definition) Exit() Transition {
	return Transition{From: d.Animate, To: d.ExitStyle, Duration: d.Duration, Easing: d.Easing}
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
