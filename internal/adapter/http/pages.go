package http

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/couchcryptid/storm-data-web/internal/transition"
)

var layoutTmpl = template.Must(template.New("layout").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>html,body{margin:0;height:100%}</style>
</head>
<body>{{.Body}}
<script>
document.addEventListener("DOMContentLoaded", function () {
  var unread = document.getElementById("unread");
  if (unread) {
    fetch(unread.dataset.src).then(function (r) {
      return r.ok ? r.json() : null;
    }).then(function (v) {
      if (v === null || v === undefined) return;
      unread.textContent = typeof v === "object" && "count" in v ? v.count : v;
    }).catch(function () {});
  }
  document.querySelectorAll("form").forEach(function (form) {
    form.addEventListener("submit", function (e) {
      var page = document.querySelector(".page-transition[data-state=enter]");
      if (!page) return;
      e.preventDefault();
      page.dataset.state = "exit";
      setTimeout(function () { form.submit(); }, {{.ExitMs}});
    });
  });
});
</script>
</body>
</html>
`))

var homeTmpl = template.Must(template.New("home").Parse(`<main>
<h1>Storm Data</h1>
<p>Unread notifications: <span id="unread" data-src="/api/notifications/unread-count">&hellip;</span></p>
<form action="/navigate" method="get">
<label>Name <input name="name"></label>
<label>Address <input name="address"></label>
<label>Lat <input name="lat" inputmode="decimal"></label>
<label>Lng <input name="lng" inputmode="decimal"></label>
<button type="submit">Open in Maps</button>
</form>
</main>`))

// layoutView feeds the layout. The layout script fills #unread from the API
// and, on animated pages, plays the exit transition for ExitMs before a form
// navigates away.
type layoutView struct {
	Title  string
	Body   template.HTML
	ExitMs int64
}

// handleHome renders the landing page inside the page transition. Clients
// asking for reduced motion (?motion=reduce) get the static rendering.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	var content bytes.Buffer
	if err := homeTmpl.Execute(&content, nil); err != nil {
		s.logger.Error("render home content", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	var runtime transition.Runtime
	if r.URL.Query().Get("motion") != "reduce" {
		runtime = transition.NewCSSRuntime()
	}

	var wrapped bytes.Buffer
	animated, err := transition.New(runtime, s.logger).Render(&wrapped, template.HTML(content.String())) //nolint:gosec // content comes from our own template
	if err != nil {
		s.logger.Error("render page transition", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if animated {
		s.metrics.PageRenders.WithLabelValues("animated").Inc()
	} else {
		s.metrics.PageRenders.WithLabelValues("static").Inc()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := layoutTmpl.Execute(w, layoutView{
		Title:  "Storm Data",
		Body:   template.HTML(wrapped.String()), //nolint:gosec // wrapper output is escaped by its own template
		ExitMs: transition.Page.Exit().Duration.Milliseconds(),
	}); err != nil {
		s.logger.Error("render layout", "error", err)
	}
}
