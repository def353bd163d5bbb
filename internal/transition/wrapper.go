package transition

import (
	"html/template"
	"io"
	"log/slog"
)

// Runtime animates style transitions. How it does so is up to the
// implementation; CSSRuntime emits keyframes.
type Runtime interface {
	OnEnter(Transition)
	OnExit(Transition)
}

// Stylesheeter is implemented by runtimes that animate through CSS emitted
// alongside the content. Unmount happens in the browser for such runtimes,
// so the exit transition is declared up front.
type Stylesheeter interface {
	Stylesheet(exit Transition) template.CSS
}

// Wrapper applies a Definition to arbitrary content.
type Wrapper struct {
	def     Definition
	runtime Runtime
	logger  *slog.Logger
}

// New wraps content with the Page transition. A nil runtime renders content
// statically.
func New(runtime Runtime, logger *slog.Logger) *Wrapper {
	return NewWithDefinition(Page, runtime, logger)
}

// NewWithDefinition wraps content with a custom definition. A nil logger
// discards runtime failures.
func NewWithDefinition(def Definition, runtime Runtime, logger *slog.Logger) *Wrapper {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Wrapper{def: def, runtime: runtime, logger: logger}
}

// Mount starts the enter transition. It reports false when the content is
// shown without animation.
func (w *Wrapper) Mount() (animated bool) {
	if w.runtime == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			w.logger.Warn("page transition runtime failed, rendering static", "phase", "enter", "panic", r)
			animated = false
		}
	}()
	w.runtime.OnEnter(w.def.Enter())
	return true
}

// Unmount starts the exit transition.
func (w *Wrapper) Unmount() {
	if w.runtime == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			w.logger.Warn("page transition runtime failed", "phase", "exit", "panic", r)
		}
	}()
	w.runtime.OnExit(w.def.Exit())
}

var wrapperTmpl = template.Must(template.New("page-transition").Parse(
	`{{if .Stylesheet}}<style>{{.Stylesheet}}</style>{{end}}` +
		`<div class="page-transition" data-state="{{.State}}" style="width:100%;height:100%">{{.Content}}</div>`))

type wrapperView struct {
	Stylesheet template.CSS
	State      string
	Content    template.HTML
}

// Render mounts the wrapper and writes the content inside a full-size
// container. Content is trusted markup and is not escaped.
func (w *Wrapper) Render(out io.Writer, content template.HTML) (animated bool, err error) {
	view := wrapperView{State: "static", Content: content}

	if w.Mount() {
		animated = true
		view.State = "enter"
		if s, ok := w.runtime.(Stylesheeter); ok {
			view.Stylesheet = w.stylesheet(s)
		}
	}

	return animated, wrapperTmpl.Execute(out, view)
}

func (w *Wrapper) stylesheet(s Stylesheeter) (css template.CSS) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Warn("page transition stylesheet failed", "panic", r)
			css = ""
		}
	}()
	return s.Stylesheet(w.def.Exit())
}
