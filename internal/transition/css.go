package transition

import (
	"fmt"
	"html/template"
	"strings"
)

// CSSRuntime animates server-rendered pages with CSS keyframes. The enter
// animation plays on load; the exit animation plays once client script sets
// data-state="exit" on the container. Use one per render.
type CSSRuntime struct {
	enter *Transition
	exit  *Transition
}

// NewCSSRuntime returns an empty CSS runtime.
func NewCSSRuntime() *CSSRuntime {
	return &CSSRuntime{}
}

func (r *CSSRuntime) OnEnter(t Transition) { r.enter = &t }

func (r *CSSRuntime) OnExit(t Transition) { r.exit = &t }

// Stylesheet returns keyframes for the recorded enter transition and for
// the exit transition. A recorded exit takes precedence over the declared one.
func (r *CSSRuntime) Stylesheet(exit Transition) template.CSS {
	var b strings.Builder
	if r.enter != nil {
		writeAnimation(&b, "pt-enter", `.page-transition[data-state="enter"]`, *r.enter)
	}
	if r.exit != nil {
		exit = *r.exit
	}
	writeAnimation(&b, "pt-exit", `.page-transition[data-state="exit"]`, exit)
	return template.CSS(b.String())
}

func writeAnimation(b *strings.Builder, name, selector string, t Transition) {
	fmt.Fprintf(b, "@keyframes %s{from{%s}to{%s}}", name, t.From.CSS(), t.To.CSS())
	fmt.Fprintf(b, "%s{animation:%s %dms %s both}", selector, name, t.Duration.Milliseconds(), t.Easing.CSS())
}
